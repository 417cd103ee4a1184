package model

import (
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// FileRef is a reference to a file selected through the platform file
// picker. The slot manager only holds references; upload transport is
// outside this core.
type FileRef struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// MediaEntry pairs a file reference with its ephemeral preview handle.
// Every file in a slot has exactly one handle at the same position.
type MediaEntry struct {
	File    FileRef
	Preview types.PreviewHandle
}

// MediaSlot tracks the file references of one named upload slot. Released
// preview handles are returned to the caller, which must hand them back
// to the media store.
type MediaSlot struct {
	def     *config.MediaSlotDefinition
	entries []MediaEntry
}

// NewMediaSlot creates an empty MediaSlot for the given definition
func NewMediaSlot(def *config.MediaSlotDefinition) *MediaSlot {
	return &MediaSlot{def: def}
}

// Definition returns the slot's schema definition
func (s *MediaSlot) Definition() *config.MediaSlotDefinition {
	return s.def
}

// ApplyCap truncates the file list to the slot's cap. A single slot keeps
// at most one file.
func (s *MediaSlot) ApplyCap(files []FileRef) []FileRef {
	limit := s.def.Cap
	if s.def.Cardinality == types.SlotCardinalitySingle {
		limit = 1
	}
	if limit > 0 && len(files) > limit {
		return files[:limit]
	}
	return files
}

// SetSingle replaces the slot's file. Returns the preview handles
// released by the replacement.
func (s *MediaSlot) SetSingle(entry MediaEntry) []types.PreviewHandle {
	released := s.handles()
	s.entries = []MediaEntry{entry}
	return released
}

// SetMany replaces the slot's entire file list. The caller is expected to
// have applied the slot cap before acquiring preview handles. Returns the
// handles released by the replacement.
func (s *MediaSlot) SetMany(entries []MediaEntry) []types.PreviewHandle {
	released := s.handles()
	s.entries = append([]MediaEntry(nil), entries...)
	return released
}

// RemoveAt removes one element of a multi-file slot, keeping remaining
// files and previews aligned. Returns the released handle.
func (s *MediaSlot) RemoveAt(index int) (types.PreviewHandle, bool) {
	if index < 0 || index >= len(s.entries) {
		return "", false
	}
	handle := s.entries[index].Preview
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return handle, true
}

// Clear removes all files from the slot and returns the released handles
func (s *MediaSlot) Clear() []types.PreviewHandle {
	released := s.handles()
	s.entries = nil
	return released
}

// Files returns the slot's file references in order
func (s *MediaSlot) Files() []FileRef {
	files := make([]FileRef, len(s.entries))
	for i, e := range s.entries {
		files[i] = e.File
	}
	return files
}

// Previews returns the slot's preview handles, aligned with Files
func (s *MediaSlot) Previews() []types.PreviewHandle {
	return s.handles()
}

// Len returns the number of files in the slot
func (s *MediaSlot) Len() int {
	return len(s.entries)
}

func (s *MediaSlot) handles() []types.PreviewHandle {
	if len(s.entries) == 0 {
		return nil
	}
	handles := make([]types.PreviewHandle, len(s.entries))
	for i, e := range s.entries {
		handles[i] = e.Preview
	}
	return handles
}
