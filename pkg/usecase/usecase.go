package usecase

import (
	"sync"

	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/service/media"
)

type UseCases struct {
	repo     interfaces.Repository
	registry *model.CategoryRegistry
	media    interfaces.MediaStore

	Draft   *DraftUseCase
	Submit  *SubmitUseCase
	Listing *ListingUseCase
}

type Option func(*UseCases)

// WithMediaStore overrides the default in-memory preview store
func WithMediaStore(store interfaces.MediaStore) Option {
	return func(uc *UseCases) {
		uc.media = store
	}
}

func New(repo interfaces.Repository, registry *model.CategoryRegistry, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		registry: registry,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.media == nil {
		uc.media = media.NewMemory()
	}

	store := newDraftStore()
	uc.Draft = NewDraftUseCase(repo, registry, uc.media, store)
	uc.Submit = NewSubmitUseCase(repo, registry, uc.media, store)
	uc.Listing = NewListingUseCase(repo, registry)

	return uc
}

// draftStore holds the live draft sessions. One editing flow owns one
// draft; the store mutex serializes all session access.
type draftStore struct {
	mu     sync.Mutex
	drafts map[types.DraftID]*model.VendorDraft
}

func newDraftStore() *draftStore {
	return &draftStore{
		drafts: make(map[types.DraftID]*model.VendorDraft),
	}
}
