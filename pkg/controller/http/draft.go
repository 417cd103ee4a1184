package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/domain/model"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
	"github.com/mandap-labs/vivaha/pkg/usecase"
	"github.com/mandap-labs/vivaha/pkg/utils/errutil"
	"github.com/mandap-labs/vivaha/pkg/utils/safe"
)

func (s *Server) handleOpenDraft(w http.ResponseWriter, r *http.Request) {
	category := types.CategoryID(chi.URLParam(r, "category"))

	var req struct {
		Mode     string `json:"mode"`
		VendorID string `json:"vendor_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	var draft *model.VendorDraft
	var err error
	switch types.DraftMode(req.Mode) {
	case types.DraftModeEdit:
		draft, err = s.uc.Draft.OpenEdit(r.Context(), category, types.VendorID(req.VendorID))
	case types.DraftModeAdd, "":
		draft, err = s.uc.Draft.OpenAdd(r.Context(), category)
	default:
		errutil.HandleHTTP(r.Context(), w, goerr.New("invalid draft mode", goerr.V("mode", req.Mode)), http.StatusBadRequest)
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toDraftView(draft))
}

func (s *Server) draftID(r *http.Request) types.DraftID {
	return types.DraftID(chi.URLParam(r, "draftID"))
}

// respondDraft writes the draft's current state; every mutation handler
// ends here so the client always sees the full form state.
func (s *Server) respondDraft(w http.ResponseWriter, r *http.Request, draftID types.DraftID) {
	draft, err := s.uc.Draft.Get(r.Context(), draftID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toDraftView(draft))
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	s.respondDraft(w, r, s.draftID(r))
}

func (s *Server) handleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Draft.Discard(r.Context(), s.draftID(r)); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"discarded": true})
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.SetField(r.Context(), draftID, chi.URLParam(r, "fieldID"), req.Value); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleToggleOption(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.ToggleOption(r.Context(), draftID, chi.URLParam(r, "fieldID"), req.Value); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleAddCustomValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.AddCustomValue(r.Context(), draftID, chi.URLParam(r, "fieldID"), req.Text); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleRemoveValue(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.RemoveValue(r.Context(), draftID, chi.URLParam(r, "fieldID"), req.Value); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleToggleDropdown(w http.ResponseWriter, r *http.Request) {
	draftID := s.draftID(r)
	if err := s.uc.Draft.ToggleDropdown(r.Context(), draftID, chi.URLParam(r, "fieldID")); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleDismissDropdown(w http.ResponseWriter, r *http.Request) {
	draftID := s.draftID(r)
	if err := s.uc.Draft.DismissDropdown(r.Context(), draftID, chi.URLParam(r, "fieldID")); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleSearchOptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	options, err := s.uc.Draft.SearchOptions(r.Context(), s.draftID(r), chi.URLParam(r, "fieldID"), query)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"options": toOptionViews(options)})
}

func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	draftID := s.draftID(r)
	if _, err := s.uc.Draft.AddRecord(r.Context(), draftID, chi.URLParam(r, "groupID")); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) recordID(r *http.Request) (types.RecordID, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid record id")
	}
	return types.RecordID(n), nil
}

func (s *Server) handleUpdateRecordField(w http.ResponseWriter, r *http.Request) {
	recordID, err := s.recordID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.UpdateRecordField(r.Context(), draftID, chi.URLParam(r, "groupID"), recordID, req.Field, req.Value); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleRemoveRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := s.recordID(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.RemoveRecord(r.Context(), draftID, chi.URLParam(r, "groupID"), recordID); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func fileRef(r *http.Request, fh *multipart.FileHeader) (model.FileRef, error) {
	f, err := fh.Open()
	if err != nil {
		return model.FileRef{}, goerr.Wrap(err, "failed to open uploaded file", goerr.V("name", fh.Filename))
	}
	defer safe.Close(r.Context(), f)

	content, err := io.ReadAll(f)
	if err != nil {
		return model.FileRef{}, goerr.Wrap(err, "failed to read uploaded file", goerr.V("name", fh.Filename))
	}

	return model.FileRef{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     content,
	}, nil
}

// handlePutMedia replaces the contents of a media slot from multipart
// form files under the "files" key. Single-cardinality slots take the
// first file.
func (s *Server) handlePutMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid multipart body"), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		errutil.HandleHTTP(r.Context(), w, goerr.New("no files in request"), http.StatusBadRequest)
		return
	}

	files := make([]model.FileRef, 0, len(headers))
	for _, fh := range headers {
		ref, err := fileRef(r, fh)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		files = append(files, ref)
	}

	draftID := s.draftID(r)
	slotID := chi.URLParam(r, "slotID")

	draft, err := s.uc.Draft.Get(r.Context(), draftID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	slot := draft.MediaSlot(slotID)
	if slot == nil {
		respondError(w, r, goerr.Wrap(usecase.ErrUnknownSlot, "no such media slot", goerr.V("slot_id", slotID)))
		return
	}

	if slot.Definition().Cardinality == types.SlotCardinalitySingle {
		err = s.uc.Draft.PutMediaSingle(r.Context(), draftID, slotID, files[0])
	} else {
		err = s.uc.Draft.PutMediaMany(r.Context(), draftID, slotID, files)
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleRemoveMediaAt(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid media index"), http.StatusBadRequest)
		return
	}

	draftID := s.draftID(r)
	if err := s.uc.Draft.RemoveMediaAt(r.Context(), draftID, chi.URLParam(r, "slotID"), index); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleClearMedia(w http.ResponseWriter, r *http.Request) {
	draftID := s.draftID(r)
	if err := s.uc.Draft.ClearMedia(r.Context(), draftID, chi.URLParam(r, "slotID")); err != nil {
		respondError(w, r, err)
		return
	}
	s.respondDraft(w, r, draftID)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	draftID := s.draftID(r)
	result, err := s.uc.Submit.Submit(r.Context(), draftID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if !result.Valid {
		respondJSON(w, r, http.StatusUnprocessableEntity, map[string]any{
			"valid":  false,
			"errors": result.Errors,
		})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"valid":         true,
		"navigate_back": result.NavigateBack,
		"vendor":        toVendorView(result.Vendor),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.uc.Submit.Delete(r.Context(), s.draftID(r), req.Confirmed)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"navigate_back": result.NavigateBack,
	})
}
