package media

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/utils/safe"
	"google.golang.org/api/iterator"
)

// GCS is a MediaStore backed by Google Cloud Storage. Preview data is
// uploaded under previews/ and removed on Release; persisted objects go
// under vendors/<id>/<slot>/ and are addressed by their public URL.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.MediaStore = &GCS{}

// GCSOption is a functional option for GCS store configuration
type GCSOption func(*GCS)

// WithObjectPrefix prepends a path prefix to every object name
func WithObjectPrefix(prefix string) GCSOption {
	return func(g *GCS) {
		g.prefix = prefix
	}
}

// NewGCS creates a MediaStore on the given bucket
func NewGCS(ctx context.Context, bucket string, opts ...GCSOption) (*GCS, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	g := &GCS{
		client: client,
		bucket: bucket,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GCS) objectName(parts ...any) string {
	name := g.prefix
	for _, p := range parts {
		if name != "" {
			name += "/"
		}
		name += fmt.Sprint(p)
	}
	return name
}

func (g *GCS) upload(ctx context.Context, name string, file model.FileRef) error {
	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = file.ContentType
	if _, err := w.Write(file.Content); err != nil {
		safe.Close(ctx, w)
		return goerr.Wrap(err, "failed to write object", goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object", goerr.V("object", name))
	}
	return nil
}

func (g *GCS) Acquire(ctx context.Context, file model.FileRef) (types.PreviewHandle, error) {
	handle := types.PreviewHandle(uuid.New().String())
	name := g.objectName("previews", handle)

	if err := g.upload(ctx, name, file); err != nil {
		return "", err
	}
	return handle, nil
}

func (g *GCS) Release(ctx context.Context, handle types.PreviewHandle) error {
	if handle == "" {
		return nil
	}

	name := g.objectName("previews", handle)
	if err := g.client.Bucket(g.bucket).Object(name).Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return nil
		}
		return goerr.Wrap(err, "failed to delete preview object", goerr.V("object", name))
	}
	return nil
}

func (g *GCS) Persist(ctx context.Context, vendorID types.VendorID, slotID string, files []model.FileRef) ([]model.MediaObject, error) {
	objects := make([]model.MediaObject, len(files))
	for i, file := range files {
		name := g.objectName("vendors", vendorID, slotID, uuid.New().String()+"-"+file.Name)
		if err := g.upload(ctx, name, file); err != nil {
			return nil, err
		}

		objects[i] = model.MediaObject{
			Name:        file.Name,
			ContentType: file.ContentType,
			Size:        file.Size,
			URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, name),
		}
	}
	return objects, nil
}

func (g *GCS) Remove(ctx context.Context, vendorID types.VendorID) error {
	bucket := g.client.Bucket(g.bucket)
	it := bucket.Objects(ctx, &storage.Query{
		Prefix: g.objectName("vendors", vendorID) + "/",
	})

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to list vendor media", goerr.V("vendor_id", vendorID))
		}
		if err := bucket.Object(attrs.Name).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
			return goerr.Wrap(err, "failed to delete media object", goerr.V("object", attrs.Name))
		}
	}
}

// Close releases the underlying storage client
func (g *GCS) Close() error {
	return g.client.Close()
}
