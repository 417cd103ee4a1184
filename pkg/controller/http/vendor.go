package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mandap-labs/vivaha/pkg/domain/interfaces"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/utils/errutil"
)

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	type categoryView struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	categories := s.uc.Listing.Categories()
	views := make([]categoryView, len(categories))
	for i, c := range categories {
		views[i] = categoryView{ID: c.ID.String(), Name: c.Name}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"categories": views})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	category := types.CategoryID(chi.URLParam(r, "category"))
	schema, err := s.registry.Get(category)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toSchemaView(schema))
}

type fieldView struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Kind        string       `json:"kind"`
	Required    bool         `json:"required"`
	Description string       `json:"description,omitempty"`
	Options     []optionView `json:"options,omitempty"`
	AllowCustom bool         `json:"allow_custom,omitempty"`
}

type subFieldView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

type groupView struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Fields   []subFieldView `json:"fields"`
	Required bool           `json:"required"`
}

type mediaSlotView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Cardinality string `json:"cardinality"`
	Cap         int    `json:"cap,omitempty"`
	MinCount    int    `json:"min_count,omitempty"`
	ExactCount  int    `json:"exact_count,omitempty"`
}

type schemaView struct {
	Category   string          `json:"category"`
	Name       string          `json:"name"`
	Fields     []fieldView     `json:"fields"`
	Groups     []groupView     `json:"groups"`
	MediaSlots []mediaSlotView `json:"media_slots"`
}

func toSchemaView(schema *config.CategorySchema) schemaView {
	view := schemaView{
		Category:   schema.Category.String(),
		Name:       schema.Name,
		Fields:     make([]fieldView, len(schema.Fields)),
		Groups:     make([]groupView, len(schema.Groups)),
		MediaSlots: make([]mediaSlotView, len(schema.MediaSlots)),
	}
	for i, fd := range schema.Fields {
		view.Fields[i] = fieldView{
			ID:          fd.ID,
			Label:       fd.Label,
			Kind:        fd.Kind.String(),
			Required:    fd.Required,
			Description: fd.Description,
			Options:     toOptionViews(fd.Options),
			AllowCustom: fd.AllowCustom,
		}
	}
	for i, gd := range schema.Groups {
		subs := make([]subFieldView, len(gd.Fields))
		for j, sf := range gd.Fields {
			subs[j] = subFieldView(sf)
		}
		view.Groups[i] = groupView{ID: gd.ID, Label: gd.Label, Fields: subs, Required: gd.Required}
	}
	for i, ms := range schema.MediaSlots {
		view.MediaSlots[i] = mediaSlotView{
			ID:          ms.ID,
			Label:       ms.Label,
			Cardinality: ms.Cardinality.String(),
			Cap:         ms.Cap,
			MinCount:    ms.MinCount,
			ExactCount:  ms.ExactCount,
		}
	}
	return view
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	category := types.CategoryID(chi.URLParam(r, "category"))
	query := r.URL.Query().Get("q")

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	var opts []interfaces.ListVendorOption
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := types.ParseVendorStatus(raw)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		opts = append(opts, interfaces.WithStatus(status))
	}

	result, err := s.uc.Listing.List(r.Context(), category, query, page, opts...)
	if err != nil {
		respondError(w, r, err)
		return
	}

	vendors := make([]vendorView, len(result.Vendors))
	for i, v := range result.Vendors {
		vendors[i] = toVendorView(v)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"vendors":     vendors,
		"page":        result.Page,
		"total_pages": result.TotalPages,
		"total_count": result.TotalCount,
		"query":       result.Query,
	})
}

func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := types.VendorID(chi.URLParam(r, "vendorID"))
	vendor, err := s.uc.Listing.GetVendor(r.Context(), vendorID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toVendorView(vendor))
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	vendorID := types.VendorID(chi.URLParam(r, "vendorID"))

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	status, err := types.ParseVendorStatus(req.Status)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	vendor, err := s.uc.Listing.SetStatus(r.Context(), vendorID, status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toVendorView(vendor))
}
