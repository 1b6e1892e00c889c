package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
	"github.com/username/sellerprofit/src/security/validation"
	"github.com/username/sellerprofit/src/services"
	"github.com/username/sellerprofit/src/utils"
)

const (
	fieldVariant      = "variant"
	fieldTransactions = "transactions"
	fieldCosts        = "costs"
)

type SessionHandler struct {
	sessionService services.SessionService
	maxUploadBytes int64
}

func NewSessionHandler(service services.SessionService, maxUploadBytes int64) *SessionHandler {
	return &SessionHandler{sessionService: service, maxUploadBytes: maxUploadBytes}
}

// HandleCreateSession accepts a multipart form with a variant name, one transactions file
// and one or more cost files, and answers with the first reconciliation result.
func (h *SessionHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		log.Warn("Failed to parse multipart form or request too large", "error", err, "limit", h.maxUploadBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", h.maxUploadBytes/(1024*1024)), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	variant, err := parsers.GetVariant(r.FormValue(fieldVariant))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	txHeaders := r.MultipartForm.File[fieldTransactions]
	if len(txHeaders) != 1 {
		utils.SendJSONError(w, fmt.Sprintf("Exactly one '%s' file is required.", fieldTransactions), http.StatusBadRequest)
		return
	}
	costHeaders := r.MultipartForm.File[fieldCosts]
	if len(costHeaders) == 0 {
		utils.SendJSONError(w, fmt.Sprintf("At least one '%s' file is required.", fieldCosts), http.StatusBadRequest)
		return
	}

	costKind := validation.KindText
	if variant.CostFormat == models.CostSKUSuffixTable {
		costKind = validation.KindTable
	}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	open := func(fh *multipart.FileHeader, kind validation.SourceKind) (parsers.Input, bool) {
		file, err := h.openValidated(fh, kind)
		if err != nil {
			log.Warn("Rejected uploaded file", "filename", fh.Filename, "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return parsers.Input{}, false
		}
		opened = append(opened, file)
		return parsers.Input{Name: fh.Filename, Data: file}, true
	}

	transactions, ok := open(txHeaders[0], validation.KindTable)
	if !ok {
		return
	}
	costs := make([]parsers.Input, 0, len(costHeaders))
	for _, fh := range costHeaders {
		in, ok := open(fh, costKind)
		if !ok {
			return
		}
		costs = append(costs, in)
	}

	log.Info("Processing upload request", "variant", variant.Name, "transactions", txHeaders[0].Filename, "costFiles", len(costs))
	result, err := h.sessionService.CreateSession(r.Context(), variant.Name, transactions, costs)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, result, "")
}

func (h *SessionHandler) openValidated(fh *multipart.FileHeader, kind validation.SourceKind) (multipart.File, error) {
	if fh.Size > h.maxUploadBytes {
		return nil, fmt.Errorf("file %q too large, max %d MB", fh.Filename, h.maxUploadBytes/(1024*1024))
	}
	if err := validation.ValidateClientContentType(fh.Header.Get("Content-Type"), kind); err != nil {
		return nil, err
	}
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", fh.Filename, err)
	}
	if _, err := validation.ValidateFileContentByMagicBytes(file, kind); err != nil {
		file.Close()
		return nil, err
	}
	return file, nil
}

// HandleGetSession returns the current result with ETag support.
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	result, err := h.sessionService.GetResult(r.Context(), sessionID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	etag, err := utils.GenerateETag(result)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to generate ETag for session result", "sessionID", sessionID, "error", err)
		etag = ""
	}
	w.Header().Set("Cache-Control", "no-cache, private")
	if etag != "" && utils.MatchesETag(r, etag) {
		w.Header().Set("ETag", `"`+etag+`"`)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result, etag)
}

// HandleSubmitManualCosts takes a JSON object of match key to entered cost.
func (h *SessionHandler) HandleSubmitManualCosts(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	var entries map[string]string
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxUploadBytes)).Decode(&entries); err != nil {
		utils.SendJSONError(w, "Request body must be a JSON object of key to cost.", http.StatusBadRequest)
		return
	}

	result, err := h.sessionService.SubmitManualCosts(r.Context(), sessionID, entries)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result, "")
}

// HandleExport downloads the enriched table once every record has a cost.
func (h *SessionHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	file, err := h.sessionService.Export(r.Context(), sessionID, r.URL.Query().Get("format"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write export", "sessionID", sessionID, "error", err)
	}
}

func (h *SessionHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListVariants lists the supported input schemas.
func HandleListVariants(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, parsers.Variants(), "")
}
