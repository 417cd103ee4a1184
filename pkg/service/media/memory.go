package media

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// Memory is an in-process MediaStore. Previews are held in a map keyed
// by handle and persisted objects get synthetic mem:// URLs. Intended
// for local development and tests.
type Memory struct {
	mu       sync.RWMutex
	previews map[types.PreviewHandle]model.FileRef
	objects  map[string][]byte
}

var _ interfaces.MediaStore = &Memory{}

// NewMemory creates an empty in-memory media store
func NewMemory() *Memory {
	return &Memory{
		previews: make(map[types.PreviewHandle]model.FileRef),
		objects:  make(map[string][]byte),
	}
}

func (m *Memory) Acquire(_ context.Context, file model.FileRef) (types.PreviewHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	handle := types.PreviewHandle(uuid.New().String())
	m.previews[handle] = file
	return handle, nil
}

func (m *Memory) Release(_ context.Context, handle types.PreviewHandle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.previews, handle)
	return nil
}

func (m *Memory) Persist(_ context.Context, vendorID types.VendorID, slotID string, files []model.FileRef) ([]model.MediaObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	objects := make([]model.MediaObject, len(files))
	for i, file := range files {
		key := fmt.Sprintf("%s/%s/%d-%s", vendorID, slotID, i, file.Name)
		m.objects[key] = append([]byte(nil), file.Content...)
		objects[i] = model.MediaObject{
			Name:        file.Name,
			ContentType: file.ContentType,
			Size:        file.Size,
			URL:         "mem://" + key,
		}
	}
	return objects, nil
}

func (m *Memory) Remove(_ context.Context, vendorID types.VendorID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefix := string(vendorID) + "/"
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			delete(m.objects, key)
		}
	}
	return nil
}

// PreviewCount returns the number of live preview handles. Used by tests
// to verify release discipline.
func (m *Memory) PreviewCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.previews)
}

// ObjectCount returns the number of persisted media objects
func (m *Memory) ObjectCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// HasPreview reports whether the handle is still live
func (m *Memory) HasPreview(handle types.PreviewHandle) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.previews[handle]
	return ok
}
