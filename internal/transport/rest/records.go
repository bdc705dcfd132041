package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/records"
	"github.com/heartmarshall/ranch-records/pkg/ctxutil"
)

// Listing views. They differ only in what the user tier sees of archived records.
const (
	ViewRecords = "records"
	ViewPortal  = "portal"
)

// Multipart parts beyond this stay on disk while the form is parsed.
const multipartMemory = 8 << 20

// multipartOverhead is the allowance for form fields and boundaries on top
// of the file size limit.
const multipartOverhead = 1 << 20

type recordService interface {
	ListRecords(ctx context.Context, input records.ListInput) ([]domain.Record, error)
	GetRecord(ctx context.Context, id int64, tier domain.AccessLevel, policy records.Policy) (*domain.Record, error)
	Upload(ctx context.Context, input records.UploadInput) (*domain.Record, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*domain.Record, error)
	Delete(ctx context.Context, id int64) (*domain.DeletedRecord, error)
	Reconcile(ctx context.Context) (domain.SyncReport, error)
}

// ViewPolicies holds the archived policy of each listing view.
type ViewPolicies struct {
	Records records.Policy
	Portal  records.Policy
}

func (v ViewPolicies) lookup(view string) (records.Policy, error) {
	switch view {
	case "", ViewRecords:
		return v.Records, nil
	case ViewPortal:
		return v.Portal, nil
	}
	return records.Policy{}, domain.NewValidationError("view", "must be one of records, portal")
}

// RecordHandler serves the record library endpoints.
type RecordHandler struct {
	svc      recordService
	views    ViewPolicies
	maxBytes int64
	log      *slog.Logger
}

// NewRecordHandler creates a RecordHandler. maxBytes bounds uploaded files.
func NewRecordHandler(svc recordService, views ViewPolicies, maxBytes int64, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		svc:      svc,
		views:    views,
		maxBytes: maxBytes,
		log:      logger.With("handler", "records"),
	}
}

type archiveRequest struct {
	Archived *bool `json:"archived"`
}

type deleteResponse struct {
	Message     string `json:"message"`
	ID          int64  `json:"id"`
	FileContent string `json:"fileContent"`
}

type syncResponse struct {
	Message string            `json:"message"`
	Report  domain.SyncReport `json:"report"`
}

// List handles GET /api/records?view=&category=&search=&archived=.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	policy, err := h.views.lookup(q.Get("view"))
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	out, err := h.svc.ListRecords(r.Context(), records.ListInput{
		Tier: ctxutil.AccessLevelFromCtx(r.Context()),
		Options: records.FilterOptions{
			Category: q.Get("category"),
			Search:   q.Get("search"),
			Archived: records.ArchivedScope(q.Get("archived")),
		},
		Policy: policy,
	})
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}
	policy, err := h.views.lookup(r.URL.Query().Get("view"))
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	rec, err := h.svc.GetRecord(r.Context(), id, ctxutil.AccessLevelFromCtx(r.Context()), policy)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Upload handles POST /api/records (multipart: file, title, type,
// description, visibility).
func (h *RecordHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.maxBytes + multipartOverhead
	if r.ContentLength > limit {
		writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Invalid upload form",
			Errors:  []domain.FieldError{{Field: "body", Message: err.Error()}},
		})
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	input := records.UploadInput{
		Title:       r.FormValue("title"),
		Type:        r.FormValue("type"),
		Description: r.FormValue("description"),
		Visibility:  r.FormValue("visibility"),
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		input.Body = file
		input.FileName = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
		input.Size = header.Size
	case !errors.Is(err, http.ErrMissingFile):
		handleError(h.log, w, r, err, "Record")
		return
	}

	rec, err := h.svc.Upload(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Archive handles PATCH /api/records/{id}/archive with {"archived": bool}.
func (h *RecordHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	var req archiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}
	if req.Archived == nil {
		handleError(h.log, w, r, domain.NewValidationError("archived", "required"), "Record")
		return
	}

	rec, err := h.svc.SetArchived(r.Context(), id, *req.Archived)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, "Record")
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{
		Message:     "Record deleted successfully",
		ID:          deleted.ID,
		FileContent: deleted.FileContent,
	})
}

// Sync handles POST /api/records/sync, an on-demand reconciliation.
func (h *RecordHandler) Sync(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Reconcile(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "on-demand sync failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, syncResponse{Message: "Object store sync failed", Report: report})
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{Message: "Sync complete", Report: report})
}
