package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/utils/errutil"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
)

// DraftUseCase owns draft session lifecycles and every mutation entry
// point of the editing form: scalar fields, multi-select state,
// repeatable group records and media slots.
type DraftUseCase struct {
	repo     interfaces.Repository
	registry *model.CategoryRegistry
	media    interfaces.MediaStore
	store    *draftStore
}

func NewDraftUseCase(repo interfaces.Repository, registry *model.CategoryRegistry, mediaStore interfaces.MediaStore, store *draftStore) *DraftUseCase {
	return &DraftUseCase{
		repo:     repo,
		registry: registry,
		media:    mediaStore,
		store:    store,
	}
}

// OpenAdd starts a new Add-mode draft for a category
func (uc *DraftUseCase) OpenAdd(ctx context.Context, category types.CategoryID) (*model.VendorDraft, error) {
	schema, err := uc.registry.Get(category)
	if err != nil {
		return nil, err
	}

	draft := model.NewDraft(schema)

	uc.store.mu.Lock()
	uc.store.drafts[draft.ID] = draft
	uc.store.mu.Unlock()

	logging.From(ctx).Debug("opened draft", "draft_id", draft.ID, "category", category, "mode", draft.Mode)
	return draft, nil
}

// OpenEdit starts an Edit-mode draft seeded from a persisted vendor
func (uc *DraftUseCase) OpenEdit(ctx context.Context, category types.CategoryID, vendorID types.VendorID) (*model.VendorDraft, error) {
	schema, err := uc.registry.Get(category)
	if err != nil {
		return nil, err
	}

	vendor, err := uc.repo.Vendor().Get(ctx, vendorID)
	if err != nil {
		return nil, goerr.Wrap(ErrVendorNotFound, "edit target not found", goerr.V(VendorIDKey, vendorID))
	}
	if vendor.Category != category {
		return nil, goerr.Wrap(ErrVendorNotFound, "vendor belongs to another category",
			goerr.V(VendorIDKey, vendorID), goerr.V("category", category))
	}

	draft := model.SeedDraft(schema, vendor)

	uc.store.mu.Lock()
	uc.store.drafts[draft.ID] = draft
	uc.store.mu.Unlock()

	logging.From(ctx).Debug("opened draft", "draft_id", draft.ID, "category", category, "mode", draft.Mode)
	return draft, nil
}

// Get returns a live draft session
func (uc *DraftUseCase) Get(ctx context.Context, draftID types.DraftID) (*model.VendorDraft, error) {
	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()
	return uc.lookup(draftID)
}

// lookup must be called with the store mutex held
func (uc *DraftUseCase) lookup(draftID types.DraftID) (*model.VendorDraft, error) {
	draft, ok := uc.store.drafts[draftID]
	if !ok {
		return nil, goerr.Wrap(ErrDraftNotFound, "no such draft session", goerr.V(DraftIDKey, draftID))
	}
	return draft, nil
}

func (uc *DraftUseCase) withDraft(draftID types.DraftID, fn func(draft *model.VendorDraft, schema *config.CategorySchema) error) error {
	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()

	draft, err := uc.lookup(draftID)
	if err != nil {
		return err
	}
	schema, err := uc.registry.Get(draft.Category)
	if err != nil {
		return err
	}
	return fn(draft, schema)
}

// SetField normalizes and stores one scalar field value. Only that
// field's error is cleared.
func (uc *DraftUseCase) SetField(ctx context.Context, draftID types.DraftID, fieldID, raw string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		fd := schema.Field(fieldID)
		if fd == nil || !fd.Kind.IsScalar() {
			return goerr.Wrap(ErrUnknownField, "not a scalar field", goerr.V(FieldIDKey, fieldID))
		}
		draft.SetField(fd, raw)
		return nil
	})
}

func (uc *DraftUseCase) selection(draft *model.VendorDraft, schema *config.CategorySchema, fieldID string) (*model.Selection, *config.FieldDefinition, error) {
	fd := schema.Field(fieldID)
	if fd == nil || fd.Kind.IsScalar() {
		return nil, nil, goerr.Wrap(ErrUnknownField, "not a select field", goerr.V(FieldIDKey, fieldID))
	}
	sel := draft.Selection(fieldID)
	if sel == nil {
		return nil, nil, goerr.Wrap(ErrUnknownField, "selection state missing", goerr.V(FieldIDKey, fieldID))
	}
	return sel, fd, nil
}

// ToggleOption toggles a predefined option in a multi-select. On a
// single-select field the picked option displaces the previous one.
func (uc *DraftUseCase) ToggleOption(ctx context.Context, draftID types.DraftID, fieldID, value string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		sel, fd, err := uc.selection(draft, schema, fieldID)
		if err != nil {
			return err
		}
		if fd.Kind == types.FieldKindSelect {
			sel.SetOnly(value)
		} else {
			sel.Toggle(value)
		}
		draft.ClearError(fieldID)
		return nil
	})
}

// AddCustomValue adds a free-text value to a multi-select that allows it
func (uc *DraftUseCase) AddCustomValue(ctx context.Context, draftID types.DraftID, fieldID, text string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		sel, fd, err := uc.selection(draft, schema, fieldID)
		if err != nil {
			return err
		}
		if !fd.AllowCustom {
			return goerr.Wrap(ErrUnknownField, "custom values not allowed", goerr.V(FieldIDKey, fieldID))
		}
		if sel.AddCustom(text) {
			draft.ClearError(fieldID)
		}
		return nil
	})
}

// RemoveValue removes one selected value (chip dismiss)
func (uc *DraftUseCase) RemoveValue(ctx context.Context, draftID types.DraftID, fieldID, value string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		sel, _, err := uc.selection(draft, schema, fieldID)
		if err != nil {
			return err
		}
		if sel.Remove(value) {
			draft.ClearError(fieldID)
		}
		return nil
	})
}

// ToggleDropdown flips the open/closed state of a multi-select dropdown
func (uc *DraftUseCase) ToggleDropdown(ctx context.Context, draftID types.DraftID, fieldID string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		sel, _, err := uc.selection(draft, schema, fieldID)
		if err != nil {
			return err
		}
		sel.ToggleOpen()
		return nil
	})
}

// DismissDropdown closes a multi-select dropdown and clears its query
func (uc *DraftUseCase) DismissDropdown(ctx context.Context, draftID types.DraftID, fieldID string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		sel, _, err := uc.selection(draft, schema, fieldID)
		if err != nil {
			return err
		}
		sel.Dismiss()
		return nil
	})
}

// SearchOptions stores the dropdown query and returns the matching
// predefined options. The selection itself is never changed by search.
func (uc *DraftUseCase) SearchOptions(ctx context.Context, draftID types.DraftID, fieldID, query string) ([]config.FieldOption, error) {
	var matched []config.FieldOption
	err := uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		sel, fd, err := uc.selection(draft, schema, fieldID)
		if err != nil {
			return err
		}
		sel.Search(query)
		matched = model.FilterOptions(fd.Options, query)
		return nil
	})
	return matched, err
}

// AddRecord appends an empty record to a repeatable group
func (uc *DraftUseCase) AddRecord(ctx context.Context, draftID types.DraftID, groupID string) (*model.GroupRecord, error) {
	var record *model.GroupRecord
	err := uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		list := draft.Group(groupID)
		if list == nil {
			return goerr.Wrap(ErrUnknownGroup, "no such group", goerr.V("group_id", groupID))
		}
		record = list.Add()
		return nil
	})
	return record, err
}

// RemoveRecord removes one group record. Removing the last remaining
// record is a structural no-op.
func (uc *DraftUseCase) RemoveRecord(ctx context.Context, draftID types.DraftID, groupID string, recordID types.RecordID) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		list := draft.Group(groupID)
		if list == nil {
			return goerr.Wrap(ErrUnknownGroup, "no such group", goerr.V("group_id", groupID))
		}
		list.Remove(recordID)
		return nil
	})
}

// UpdateRecordField sets one sub-field of a group record
func (uc *DraftUseCase) UpdateRecordField(ctx context.Context, draftID types.DraftID, groupID string, recordID types.RecordID, field, value string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		list := draft.Group(groupID)
		if list == nil {
			return goerr.Wrap(ErrUnknownGroup, "no such group", goerr.V("group_id", groupID))
		}
		if list.UpdateField(recordID, field, value) {
			draft.ClearError(groupID)
		}
		return nil
	})
}

func (uc *DraftUseCase) mediaSlot(draft *model.VendorDraft, slotID string) (*model.MediaSlot, error) {
	slot := draft.MediaSlot(slotID)
	if slot == nil {
		return nil, goerr.Wrap(ErrUnknownSlot, "no such media slot", goerr.V(SlotIDKey, slotID))
	}
	return slot, nil
}

// PutMediaSingle replaces the file of a single-cardinality slot. The
// previous file's preview handle is released.
func (uc *DraftUseCase) PutMediaSingle(ctx context.Context, draftID types.DraftID, slotID string, file model.FileRef) error {
	handle, err := uc.media.Acquire(ctx, file)
	if err != nil {
		return goerr.Wrap(err, "failed to acquire preview", goerr.V(SlotIDKey, slotID))
	}

	err = uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		slot, err := uc.mediaSlot(draft, slotID)
		if err != nil {
			return err
		}
		released := slot.SetSingle(model.MediaEntry{File: file, Preview: handle})
		uc.releaseHandles(ctx, released)
		draft.ClearError(slotID)
		return nil
	})
	if err != nil {
		// The slot never took ownership of the new handle
		uc.releaseHandles(ctx, []types.PreviewHandle{handle})
		return err
	}
	return nil
}

// PutMediaMany replaces the whole file list of a many-cardinality slot.
// Input beyond the slot cap is dropped; every replaced preview handle is
// released.
func (uc *DraftUseCase) PutMediaMany(ctx context.Context, draftID types.DraftID, slotID string, files []model.FileRef) error {
	uc.store.mu.Lock()
	draft, err := uc.lookup(draftID)
	if err != nil {
		uc.store.mu.Unlock()
		return err
	}
	slot, err := uc.mediaSlot(draft, slotID)
	if err != nil {
		uc.store.mu.Unlock()
		return err
	}
	capped := slot.ApplyCap(files)
	uc.store.mu.Unlock()

	// Previews are acquired outside the store lock: the media store may
	// do network IO.
	entries := make([]model.MediaEntry, 0, len(capped))
	for _, file := range capped {
		handle, err := uc.media.Acquire(ctx, file)
		if err != nil {
			for _, e := range entries {
				uc.releaseHandles(ctx, []types.PreviewHandle{e.Preview})
			}
			return goerr.Wrap(err, "failed to acquire preview", goerr.V(SlotIDKey, slotID))
		}
		entries = append(entries, model.MediaEntry{File: file, Preview: handle})
	}

	uc.store.mu.Lock()
	defer uc.store.mu.Unlock()

	draft, err = uc.lookup(draftID)
	if err != nil {
		for _, e := range entries {
			uc.releaseHandles(ctx, []types.PreviewHandle{e.Preview})
		}
		return err
	}
	released := slot.SetMany(entries)
	uc.releaseHandles(ctx, released)
	draft.ClearError(slotID)
	return nil
}

// RemoveMediaAt removes the file at an index, releasing its preview
func (uc *DraftUseCase) RemoveMediaAt(ctx context.Context, draftID types.DraftID, slotID string, index int) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		slot, err := uc.mediaSlot(draft, slotID)
		if err != nil {
			return err
		}
		if handle, ok := slot.RemoveAt(index); ok {
			uc.releaseHandles(ctx, []types.PreviewHandle{handle})
			draft.ClearError(slotID)
		}
		return nil
	})
}

// ClearMedia empties a slot, releasing every preview it held
func (uc *DraftUseCase) ClearMedia(ctx context.Context, draftID types.DraftID, slotID string) error {
	return uc.withDraft(draftID, func(draft *model.VendorDraft, schema *config.CategorySchema) error {
		slot, err := uc.mediaSlot(draft, slotID)
		if err != nil {
			return err
		}
		uc.releaseHandles(ctx, slot.Clear())
		draft.ClearError(slotID)
		return nil
	})
}

// Discard drops a draft session and releases every preview handle it
// still holds. This is the "back" action; nothing is persisted.
func (uc *DraftUseCase) Discard(ctx context.Context, draftID types.DraftID) error {
	uc.store.mu.Lock()
	draft, err := uc.lookup(draftID)
	if err != nil {
		uc.store.mu.Unlock()
		return err
	}
	handles := draft.ReleaseAll()
	delete(uc.store.drafts, draftID)
	uc.store.mu.Unlock()

	uc.releaseHandles(ctx, handles)
	logging.From(ctx).Debug("discarded draft", "draft_id", draftID, "released", len(handles))
	return nil
}

func (uc *DraftUseCase) releaseHandles(ctx context.Context, handles []types.PreviewHandle) {
	for _, handle := range handles {
		if err := uc.media.Release(ctx, handle); err != nil {
			_ = errutil.Handle(ctx, err, "failed to release preview handle")
		}
	}
}
