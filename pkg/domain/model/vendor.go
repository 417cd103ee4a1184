package model

import (
	"strings"
	"time"

	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// Well-known field IDs that every category schema declares. The shared
// Vendor shape is projected from these; everything else is a
// category-specific extension carried in Fields/Selections/Groups.
const (
	FieldName          = "name"
	FieldContactPerson = "contact-person"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldDescription   = "description"
	SelectionLocations = "locations"
)

// MediaObject is a persisted file reference in a vendor's media slot
type MediaObject struct {
	Name        string
	ContentType string
	Size        int64
	URL         string
}

// GroupRecordData is one persisted record of a repeatable group
type GroupRecordData struct {
	Fields map[string]string
}

// Vendor represents a persisted vendor listing
type Vendor struct {
	ID         types.VendorID
	Category   types.CategoryID
	Name       string
	Contact    string
	Location   string
	Status     types.VendorStatus
	Fields     map[string]any      // key = FieldDefinition.ID
	Selections map[string][]string // key = FieldDefinition.ID, ordered
	Groups     map[string][]GroupRecordData
	Media      map[string][]MediaObject // key = MediaSlotDefinition.ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Matches reports whether the vendor matches a search query with a
// case-insensitive substring match against name, contact and location.
// A vendor matches if any of the three fields contains the query.
func (v *Vendor) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Contact), q) ||
		strings.Contains(strings.ToLower(v.Location), q)
}

// CloneVendor returns a deep copy of the vendor
func CloneVendor(v *Vendor) *Vendor {
	if v == nil {
		return nil
	}
	copied := &Vendor{
		ID:        v.ID,
		Category:  v.Category,
		Name:      v.Name,
		Contact:   v.Contact,
		Location:  v.Location,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.Fields != nil {
		copied.Fields = make(map[string]any, len(v.Fields))
		for k, val := range v.Fields {
			copied.Fields[k] = val
		}
	}
	if v.Selections != nil {
		copied.Selections = make(map[string][]string, len(v.Selections))
		for k, vals := range v.Selections {
			copied.Selections[k] = append([]string(nil), vals...)
		}
	}
	if v.Groups != nil {
		copied.Groups = make(map[string][]GroupRecordData, len(v.Groups))
		for k, records := range v.Groups {
			cloned := make([]GroupRecordData, len(records))
			for i, rec := range records {
				fields := make(map[string]string, len(rec.Fields))
				for fk, fv := range rec.Fields {
					fields[fk] = fv
				}
				cloned[i] = GroupRecordData{Fields: fields}
			}
			copied.Groups[k] = cloned
		}
	}
	if v.Media != nil {
		copied.Media = make(map[string][]MediaObject, len(v.Media))
		for k, objs := range v.Media {
			copied.Media[k] = append([]MediaObject(nil), objs...)
		}
	}
	return copied
}
