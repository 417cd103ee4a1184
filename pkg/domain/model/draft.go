package model

import (
	"time"

	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// VendorDraft is the mutable state of one form instance while it is
// being edited. A draft is exclusively owned by the editing flow that
// opened it and is discarded on successful submit, successful delete or
// explicit back.
type VendorDraft struct {
	ID       types.DraftID
	Category types.CategoryID
	Mode     types.DraftMode
	// VendorID is the edit target; empty in Add mode.
	VendorID types.VendorID

	Fields     map[string]any        // scalar values, key = FieldDefinition.ID
	Selections map[string]*Selection // key = FieldDefinition.ID
	Groups     map[string]*RecordList
	Media      map[string]*MediaSlot // key = MediaSlotDefinition.ID
	Errors     map[string]string     // key = field/group/slot ID

	// Submitting guards against duplicate submission while the
	// persistence call is in flight.
	Submitting bool

	CreatedAt time.Time
}

// NewDraft creates an empty Add-mode draft for the given category schema
func NewDraft(schema *config.CategorySchema) *VendorDraft {
	d := &VendorDraft{
		ID:         types.NewDraftID(),
		Category:   schema.Category,
		Mode:       types.DraftModeAdd,
		Fields:     make(map[string]any),
		Selections: make(map[string]*Selection),
		Groups:     make(map[string]*RecordList),
		Media:      make(map[string]*MediaSlot),
		Errors:     make(map[string]string),
		CreatedAt:  time.Now().UTC(),
	}
	for i := range schema.Fields {
		fd := &schema.Fields[i]
		if fd.Kind.IsScalar() {
			d.Fields[fd.ID] = ""
		} else {
			d.Selections[fd.ID] = NewSelection()
		}
	}
	for i := range schema.Groups {
		gd := &schema.Groups[i]
		d.Groups[gd.ID] = NewRecordList(gd)
	}
	for i := range schema.MediaSlots {
		ms := &schema.MediaSlots[i]
		d.Media[ms.ID] = NewMediaSlot(ms)
	}
	return d
}

// SeedDraft creates an Edit-mode draft pre-populated from a persisted
// vendor. Unknown vendor fields are dropped and missing schema fields are
// defaulted, instead of leaking loose shapes into the draft. Media slots
// start empty: server-side media survives an edit unless the slot is
// touched.
func SeedDraft(schema *config.CategorySchema, vendor *Vendor) *VendorDraft {
	d := NewDraft(schema)
	d.Mode = types.DraftModeEdit
	d.VendorID = vendor.ID

	for i := range schema.Fields {
		fd := &schema.Fields[i]
		if fd.Kind.IsScalar() {
			if v, ok := vendor.Fields[fd.ID]; ok {
				d.Fields[fd.ID] = v
			}
		} else {
			if values, ok := vendor.Selections[fd.ID]; ok {
				d.Selections[fd.ID] = NewSelection(values...)
			}
		}
	}
	for i := range schema.Groups {
		gd := &schema.Groups[i]
		d.Groups[gd.ID].Seed(vendor.Groups[gd.ID])
	}
	return d
}

// SetField normalizes and stores a scalar field value, clearing that
// field's error only. Clearing never re-validates other fields.
func (d *VendorDraft) SetField(fd *config.FieldDefinition, raw string) {
	d.Fields[fd.ID] = NormalizeValue(fd.Kind, raw)
	d.ClearError(fd.ID)
}

// ClearError drops the error for one field, leaving all others intact
func (d *VendorDraft) ClearError(fieldID string) {
	delete(d.Errors, fieldID)
}

// ReplaceErrors discards the previous error map entirely and installs the
// given one. Stale errors for now-valid fields never linger.
func (d *VendorDraft) ReplaceErrors(errs map[string]string) {
	if errs == nil {
		errs = make(map[string]string)
	}
	d.Errors = errs
}

// Selection returns the selection state for a multi-select field, or nil
func (d *VendorDraft) Selection(fieldID string) *Selection {
	return d.Selections[fieldID]
}

// Group returns the record list for a repeatable group, or nil
func (d *VendorDraft) Group(groupID string) *RecordList {
	return d.Groups[groupID]
}

// MediaSlot returns the media slot state, or nil
func (d *VendorDraft) MediaSlot(slotID string) *MediaSlot {
	return d.Media[slotID]
}

// ReleaseAll collects every preview handle currently held by the draft's
// media slots, clearing the slots. Used when the draft is discarded.
func (d *VendorDraft) ReleaseAll() []types.PreviewHandle {
	var handles []types.PreviewHandle
	for _, slot := range d.Media {
		handles = append(handles, slot.Clear()...)
	}
	return handles
}

// Snapshot returns a detached deep copy of the draft's persistable
// state. The submit flow projects the vendor record from the snapshot,
// so edits arriving while the persistence call is in flight touch only
// the live draft. Media and error state are not carried: files are
// snapshotted separately and errors never reach the vendor record.
func (d *VendorDraft) Snapshot() *VendorDraft {
	s := &VendorDraft{
		ID:         d.ID,
		Category:   d.Category,
		Mode:       d.Mode,
		VendorID:   d.VendorID,
		Fields:     make(map[string]any, len(d.Fields)),
		Selections: make(map[string]*Selection, len(d.Selections)),
		Groups:     make(map[string]*RecordList, len(d.Groups)),
		CreatedAt:  d.CreatedAt,
	}
	for id, val := range d.Fields {
		s.Fields[id] = val
	}
	for id, sel := range d.Selections {
		s.Selections[id] = NewSelection(sel.Values()...)
	}
	for id, list := range d.Groups {
		s.Groups[id] = list.Clone()
	}
	return s
}

func (d *VendorDraft) scalarString(fieldID string) string {
	if v, ok := d.Fields[fieldID].(string); ok {
		return v
	}
	return ""
}

// BuildVendor projects the draft into a persistable Vendor record. For
// Edit-mode drafts, existing is the currently persisted vendor whose
// untouched media slots are carried over.
func (d *VendorDraft) BuildVendor(schema *config.CategorySchema, existing *Vendor, uploaded map[string][]MediaObject) *Vendor {
	v := &Vendor{
		Category:   d.Category,
		Status:     types.VendorStatusActive,
		Fields:     make(map[string]any, len(d.Fields)),
		Selections: make(map[string][]string, len(d.Selections)),
		Groups:     make(map[string][]GroupRecordData, len(d.Groups)),
		Media:      make(map[string][]MediaObject),
	}
	if existing != nil {
		v.ID = existing.ID
		v.Status = existing.Status.Normalize()
		v.CreatedAt = existing.CreatedAt
	}

	for id, val := range d.Fields {
		v.Fields[id] = val
	}
	for id, sel := range d.Selections {
		v.Selections[id] = sel.Values()
	}
	for id, list := range d.Groups {
		v.Groups[id] = list.Export()
	}

	for i := range schema.MediaSlots {
		slotID := schema.MediaSlots[i].ID
		if objs, ok := uploaded[slotID]; ok && len(objs) > 0 {
			v.Media[slotID] = objs
		} else if existing != nil {
			if objs, ok := existing.Media[slotID]; ok {
				v.Media[slotID] = append([]MediaObject(nil), objs...)
			}
		}
	}

	v.Name = d.scalarString(FieldName)
	v.Contact = d.scalarString(FieldPhone)
	if v.Contact == "" {
		v.Contact = d.scalarString(FieldContactPerson)
	}
	if sel := d.Selections[SelectionLocations]; sel != nil && sel.Count() > 0 {
		v.Location = sel.Values()[0]
	}
	return v
}
