package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/utils/async"
	"github.com/mandap-labs/vivaha/pkg/utils/errutil"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
)

// SubmitUseCase drives the Idle -> Submitting -> Idle state machine of a
// draft. Validation failure never reaches the repository; persistence
// success is the only thing that ends the editing flow.
type SubmitUseCase struct {
	repo     interfaces.Repository
	registry *model.CategoryRegistry
	media    interfaces.MediaStore
	store    *draftStore
}

func NewSubmitUseCase(repo interfaces.Repository, registry *model.CategoryRegistry, mediaStore interfaces.MediaStore, store *draftStore) *SubmitUseCase {
	return &SubmitUseCase{
		repo:     repo,
		registry: registry,
		media:    mediaStore,
		store:    store,
	}
}

// SubmitResult reports the outcome of a Submit or Delete call
type SubmitResult struct {
	Valid bool
	// Errors is the draft's new error map when Valid is false
	Errors map[string]string
	// NavigateBack is set only after a successful persistence call
	NavigateBack bool
	Vendor       *model.Vendor
}

// Submit validates the draft and, when valid, persists it. Invalid
// drafts get their error map replaced and the repository is never
// touched. A draft already submitting rejects the duplicate call.
func (uc *SubmitUseCase) Submit(ctx context.Context, draftID types.DraftID) (*SubmitResult, error) {
	uc.store.mu.Lock()
	draft, ok := uc.store.drafts[draftID]
	if !ok {
		uc.store.mu.Unlock()
		return nil, goerr.Wrap(ErrDraftNotFound, "no such draft session", goerr.V(DraftIDKey, draftID))
	}
	if draft.Submitting {
		uc.store.mu.Unlock()
		return nil, goerr.Wrap(ErrSubmitInFlight, "duplicate submit rejected", goerr.V(DraftIDKey, draftID))
	}

	schema, err := uc.registry.Get(draft.Category)
	if err != nil {
		uc.store.mu.Unlock()
		return nil, err
	}

	result := model.NewDraftValidator(schema).Validate(draft)
	draft.ReplaceErrors(result.Errors)
	if !result.Valid {
		uc.store.mu.Unlock()
		return &SubmitResult{Valid: false, Errors: result.Errors}, nil
	}

	draft.Submitting = true
	// Persist from a detached snapshot: edits arriving while the
	// persistence call is in flight must not race the projection.
	snapshot := draft.Snapshot()
	files := make(map[string][]model.FileRef, len(draft.Media))
	for slotID, slot := range draft.Media {
		if slot.Len() > 0 {
			files[slotID] = slot.Files()
		}
	}
	uc.store.mu.Unlock()

	vendor, err := uc.persist(ctx, snapshot, schema, files)

	uc.store.mu.Lock()
	draft.Submitting = false
	if err == nil {
		handles := draft.ReleaseAll()
		delete(uc.store.drafts, draftID)
		uc.store.mu.Unlock()
		uc.releaseHandles(ctx, handles)
		logging.From(ctx).Info("vendor saved", "vendor_id", vendor.ID, "category", vendor.Category, "mode", draft.Mode)
		return &SubmitResult{Valid: true, NavigateBack: true, Vendor: vendor}, nil
	}
	uc.store.mu.Unlock()

	// Persistence failed: the draft survives with its state intact
	return nil, errutil.Handle(ctx, err, "failed to persist vendor")
}

func (uc *SubmitUseCase) persist(ctx context.Context, draft *model.VendorDraft, schema *config.CategorySchema, files map[string][]model.FileRef) (*model.Vendor, error) {
	var existing *model.Vendor
	vendorID := draft.VendorID
	if draft.Mode == types.DraftModeEdit {
		v, err := uc.repo.Vendor().Get(ctx, vendorID)
		if err != nil {
			return nil, goerr.Wrap(err, "edit target disappeared", goerr.V(VendorIDKey, vendorID))
		}
		existing = v
	} else {
		vendorID = types.NewVendorID()
	}

	uploaded := make(map[string][]model.MediaObject, len(files))
	for slotID, refs := range files {
		objs, err := uc.media.Persist(ctx, vendorID, slotID, refs)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to persist media", goerr.V(SlotIDKey, slotID))
		}
		uploaded[slotID] = objs
	}

	vendor := draft.BuildVendor(schema, existing, uploaded)
	if draft.Mode == types.DraftModeEdit {
		return uc.repo.Vendor().Update(ctx, vendor)
	}
	vendor.ID = vendorID
	return uc.repo.Vendor().Create(ctx, vendor)
}

// Delete removes the vendor behind an Edit-mode draft. It demands an
// explicit confirmation and runs through the same busy state as Submit.
func (uc *SubmitUseCase) Delete(ctx context.Context, draftID types.DraftID, confirmed bool) (*SubmitResult, error) {
	if !confirmed {
		return nil, goerr.Wrap(ErrDeleteNotConfirmed, "deletion aborted", goerr.V(DraftIDKey, draftID))
	}

	uc.store.mu.Lock()
	draft, ok := uc.store.drafts[draftID]
	if !ok {
		uc.store.mu.Unlock()
		return nil, goerr.Wrap(ErrDraftNotFound, "no such draft session", goerr.V(DraftIDKey, draftID))
	}
	if draft.Mode != types.DraftModeEdit {
		uc.store.mu.Unlock()
		return nil, goerr.Wrap(ErrDeleteNotInEditMode, "nothing to delete", goerr.V(DraftIDKey, draftID))
	}
	if draft.Submitting {
		uc.store.mu.Unlock()
		return nil, goerr.Wrap(ErrSubmitInFlight, "duplicate request rejected", goerr.V(DraftIDKey, draftID))
	}
	draft.Submitting = true
	vendorID := draft.VendorID
	uc.store.mu.Unlock()

	err := uc.repo.Vendor().Delete(ctx, vendorID)

	uc.store.mu.Lock()
	draft.Submitting = false
	if err == nil {
		handles := draft.ReleaseAll()
		delete(uc.store.drafts, draftID)
		uc.store.mu.Unlock()
		uc.releaseHandles(ctx, handles)
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.media.Remove(ctx, vendorID)
		})
		logging.From(ctx).Info("vendor deleted", "vendor_id", vendorID)
		return &SubmitResult{Valid: true, NavigateBack: true}, nil
	}
	uc.store.mu.Unlock()

	return nil, errutil.Handle(ctx, err, "failed to delete vendor")
}

func (uc *SubmitUseCase) releaseHandles(ctx context.Context, handles []types.PreviewHandle) {
	for _, handle := range handles {
		if err := uc.media.Release(ctx, handle); err != nil {
			_ = errutil.Handle(ctx, err, "failed to release preview handle")
		}
	}
}
