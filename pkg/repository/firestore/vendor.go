package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type vendorRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newVendorRepository(client *firestore.Client) *vendorRepository {
	return &vendorRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *vendorRepository) vendorsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_vendors"
	}
	return "vendors"
}

// vendorDoc is the Firestore document shape of a vendor. Repeatable
// group records are flattened because Firestore cannot store nested
// arrays of maps with non-uniform shapes reliably across clients.
type vendorDoc struct {
	ID         string                         `firestore:"id"`
	Category   string                         `firestore:"category"`
	Name       string                         `firestore:"name"`
	Contact    string                         `firestore:"contact"`
	Location   string                         `firestore:"location"`
	Status     string                         `firestore:"status"`
	Fields     map[string]any                 `firestore:"fields"`
	Selections map[string][]string            `firestore:"selections"`
	Groups     map[string][]map[string]string `firestore:"groups"`
	Media      map[string][]mediaObjectDoc    `firestore:"media"`
	CreatedAt  time.Time                      `firestore:"created_at"`
	UpdatedAt  time.Time                      `firestore:"updated_at"`
}

type mediaObjectDoc struct {
	Name        string `firestore:"name"`
	ContentType string `firestore:"content_type"`
	Size        int64  `firestore:"size"`
	URL         string `firestore:"url"`
}

func toVendorDoc(v *model.Vendor) *vendorDoc {
	doc := &vendorDoc{
		ID:         v.ID.String(),
		Category:   v.Category.String(),
		Name:       v.Name,
		Contact:    v.Contact,
		Location:   v.Location,
		Status:     v.Status.Normalize().String(),
		Fields:     v.Fields,
		Selections: v.Selections,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
	if v.Groups != nil {
		doc.Groups = make(map[string][]map[string]string, len(v.Groups))
		for id, records := range v.Groups {
			flat := make([]map[string]string, len(records))
			for i, rec := range records {
				flat[i] = rec.Fields
			}
			doc.Groups[id] = flat
		}
	}
	if v.Media != nil {
		doc.Media = make(map[string][]mediaObjectDoc, len(v.Media))
		for id, objs := range v.Media {
			docs := make([]mediaObjectDoc, len(objs))
			for i, obj := range objs {
				docs[i] = mediaObjectDoc(obj)
			}
			doc.Media[id] = docs
		}
	}
	return doc
}

func (d *vendorDoc) toModel() *model.Vendor {
	v := &model.Vendor{
		ID:         types.VendorID(d.ID),
		Category:   types.CategoryID(d.Category),
		Name:       d.Name,
		Contact:    d.Contact,
		Location:   d.Location,
		Status:     types.VendorStatus(d.Status).Normalize(),
		Fields:     d.Fields,
		Selections: d.Selections,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.Groups != nil {
		v.Groups = make(map[string][]model.GroupRecordData, len(d.Groups))
		for id, records := range d.Groups {
			data := make([]model.GroupRecordData, len(records))
			for i, fields := range records {
				data[i] = model.GroupRecordData{Fields: fields}
			}
			v.Groups[id] = data
		}
	}
	if d.Media != nil {
		v.Media = make(map[string][]model.MediaObject, len(d.Media))
		for id, docs := range d.Media {
			objs := make([]model.MediaObject, len(docs))
			for i, doc := range docs {
				objs[i] = model.MediaObject(doc)
			}
			v.Media[id] = objs
		}
	}
	return v
}

func (r *vendorRepository) Create(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	created := model.CloneVendor(v)
	if created.ID == "" {
		created.ID = types.NewVendorID()
	}
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Status = created.Status.Normalize()

	doc := toVendorDoc(created)
	_, err := r.client.Collection(r.vendorsCollection()).Doc(doc.ID).Set(ctx, doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create vendor", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *vendorRepository) Get(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	docSnap, err := r.client.Collection(r.vendorsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "vendor not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get vendor", goerr.V("id", id))
	}

	var doc vendorDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode vendor", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *vendorRepository) List(ctx context.Context, category types.CategoryID, opts ...interfaces.ListVendorOption) ([]*model.Vendor, error) {
	cfg := interfaces.BuildListVendorConfig(opts...)

	query := r.client.Collection(r.vendorsCollection()).
		Query.Where("category", "==", category.String())
	if cfg.Status() != nil {
		query = query.Where("status", "==", cfg.Status().String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var vendors []*model.Vendor
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate vendors", goerr.V("category", category))
		}

		var doc vendorDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode vendor", goerr.V("doc_id", docSnap.Ref.ID))
		}
		vendors = append(vendors, doc.toModel())
	}

	// Sorted in memory instead of OrderBy to avoid a composite index on
	// every status/category combination.
	sort.Slice(vendors, func(i, j int) bool {
		if vendors[i].CreatedAt.Equal(vendors[j].CreatedAt) {
			return vendors[i].ID < vendors[j].ID
		}
		return vendors[i].CreatedAt.After(vendors[j].CreatedAt)
	})

	return vendors, nil
}

func (r *vendorRepository) Update(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	docRef := r.client.Collection(r.vendorsCollection()).Doc(v.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "vendor not found", goerr.V("id", v.ID))
		}
		return nil, goerr.Wrap(err, "failed to get vendor for update", goerr.V("id", v.ID))
	}

	var existing vendorDoc
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode vendor", goerr.V("id", v.ID))
	}

	updated := model.CloneVendor(v)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.Status = updated.Status.Normalize()

	doc := toVendorDoc(updated)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update vendor", goerr.V("id", v.ID))
	}

	return updated, nil
}

func (r *vendorRepository) Delete(ctx context.Context, id types.VendorID) error {
	docRef := r.client.Collection(r.vendorsCollection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "vendor not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get vendor for delete", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete vendor", goerr.V("id", id))
	}
	return nil
}
