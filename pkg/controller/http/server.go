package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/usecase"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	registry *model.CategoryRegistry
	// maxUploadBytes bounds multipart intake per request
	maxUploadBytes int64
}

type Options func(*Server)

// WithMaxUploadBytes overrides the multipart intake limit
func WithMaxUploadBytes(n int64) Options {
	return func(s *Server) {
		s.maxUploadBytes = n
	}
}

func New(uc *usecase.UseCases, registry *model.CategoryRegistry, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:         r,
		uc:             uc,
		registry:       registry,
		maxUploadBytes: 32 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Route("/categories/{category}", func(r chi.Router) {
			r.Get("/schema", s.handleSchema)
			r.Get("/vendors", s.handleListVendors)
			r.Post("/drafts", s.handleOpenDraft)
		})

		r.Route("/vendors/{vendorID}", func(r chi.Router) {
			r.Get("/", s.handleGetVendor)
			r.Post("/status", s.handleSetStatus)
		})

		r.Route("/drafts/{draftID}", func(r chi.Router) {
			r.Get("/", s.handleGetDraft)
			r.Delete("/", s.handleDiscardDraft)
			r.Post("/submit", s.handleSubmit)
			r.Post("/delete", s.handleDelete)

			r.Post("/fields/{fieldID}", s.handleSetField)

			r.Route("/selections/{fieldID}", func(r chi.Router) {
				r.Post("/toggle", s.handleToggleOption)
				r.Post("/custom", s.handleAddCustomValue)
				r.Post("/remove", s.handleRemoveValue)
				r.Post("/dropdown", s.handleToggleDropdown)
				r.Post("/dismiss", s.handleDismissDropdown)
				r.Get("/options", s.handleSearchOptions)
			})

			r.Route("/groups/{groupID}/records", func(r chi.Router) {
				r.Post("/", s.handleAddRecord)
				r.Post("/{recordID}", s.handleUpdateRecordField)
				r.Delete("/{recordID}", s.handleRemoveRecord)
			})

			r.Route("/media/{slotID}", func(r chi.Router) {
				r.Put("/", s.handlePutMedia)
				r.Delete("/", s.handleClearMedia)
				r.Delete("/{index}", s.handleRemoveMediaAt)
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
