package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/usecase"
	"github.com/mandap-labs/vivaha/pkg/utils/errutil"
	"github.com/mandap-labs/vivaha/pkg/utils/safe"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound),
		errors.Is(err, usecase.ErrVendorNotFound),
		errors.Is(err, model.ErrCategoryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrUnknownField),
		errors.Is(err, usecase.ErrUnknownGroup),
		errors.Is(err, usecase.ErrUnknownSlot),
		errors.Is(err, usecase.ErrDeleteNotConfirmed),
		errors.Is(err, usecase.ErrDeleteNotInEditMode):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrSubmitInFlight):
		status = http.StatusConflict
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(usecase.ErrUnknownField, "invalid request body")
	}
	return nil
}

type vendorView struct {
	ID         string                         `json:"id"`
	Category   string                         `json:"category"`
	Name       string                         `json:"name"`
	Contact    string                         `json:"contact"`
	Location   string                         `json:"location"`
	Status     string                         `json:"status"`
	Fields     map[string]any                 `json:"fields"`
	Selections map[string][]string            `json:"selections"`
	Groups     map[string][]map[string]string `json:"groups"`
	Media      map[string][]mediaObjectView   `json:"media"`
	CreatedAt  string                         `json:"created_at"`
	UpdatedAt  string                         `json:"updated_at"`
}

type mediaObjectView struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

func toVendorView(v *model.Vendor) vendorView {
	view := vendorView{
		ID:         v.ID.String(),
		Category:   v.Category.String(),
		Name:       v.Name,
		Contact:    v.Contact,
		Location:   v.Location,
		Status:     v.Status.Normalize().String(),
		Fields:     v.Fields,
		Selections: v.Selections,
		Groups:     make(map[string][]map[string]string, len(v.Groups)),
		Media:      make(map[string][]mediaObjectView, len(v.Media)),
		CreatedAt:  v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for id, records := range v.Groups {
		rows := make([]map[string]string, len(records))
		for i, rec := range records {
			rows[i] = rec.Fields
		}
		view.Groups[id] = rows
	}
	for id, objs := range v.Media {
		views := make([]mediaObjectView, len(objs))
		for i, obj := range objs {
			views[i] = mediaObjectView(obj)
		}
		view.Media[id] = views
	}
	return view
}

type selectionView struct {
	Values []string `json:"values"`
	Open   bool     `json:"open"`
	Query  string   `json:"query"`
}

type groupRecordView struct {
	ID     int64             `json:"id"`
	Fields map[string]string `json:"fields"`
}

type mediaEntryView struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Preview     string `json:"preview"`
}

type draftView struct {
	ID         string                       `json:"id"`
	Category   string                       `json:"category"`
	Mode       string                       `json:"mode"`
	VendorID   string                       `json:"vendor_id,omitempty"`
	Fields     map[string]any               `json:"fields"`
	Selections map[string]selectionView     `json:"selections"`
	Groups     map[string][]groupRecordView `json:"groups"`
	Media      map[string][]mediaEntryView  `json:"media"`
	Errors     map[string]string            `json:"errors"`
	Submitting bool                         `json:"submitting"`
}

func toDraftView(d *model.VendorDraft) draftView {
	view := draftView{
		ID:         d.ID.String(),
		Category:   d.Category.String(),
		Mode:       d.Mode.String(),
		VendorID:   d.VendorID.String(),
		Fields:     d.Fields,
		Selections: make(map[string]selectionView, len(d.Selections)),
		Groups:     make(map[string][]groupRecordView, len(d.Groups)),
		Media:      make(map[string][]mediaEntryView, len(d.Media)),
		Errors:     d.Errors,
		Submitting: d.Submitting,
	}
	for id, sel := range d.Selections {
		view.Selections[id] = selectionView{
			Values: sel.Values(),
			Open:   sel.IsOpen(),
			Query:  sel.Query(),
		}
	}
	for id, list := range d.Groups {
		records := list.Records()
		rows := make([]groupRecordView, len(records))
		for i, rec := range records {
			rows[i] = groupRecordView{ID: int64(rec.ID), Fields: rec.Fields}
		}
		view.Groups[id] = rows
	}
	for id, slot := range d.Media {
		files := slot.Files()
		previews := slot.Previews()
		entries := make([]mediaEntryView, len(files))
		for i, f := range files {
			entries[i] = mediaEntryView{
				Name:        f.Name,
				ContentType: f.ContentType,
				Size:        f.Size,
				Preview:     previews[i].String(),
			}
		}
		view.Media[id] = entries
	}
	return view
}

type optionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toOptionViews(options []config.FieldOption) []optionView {
	views := make([]optionView, len(options))
	for i, opt := range options {
		views[i] = optionView(opt)
	}
	return views
}
