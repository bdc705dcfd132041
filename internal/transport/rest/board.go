package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/domain"
)

type boardService interface {
	List(ctx context.Context) ([]domain.BoardMember, error)
	Replace(ctx context.Context, members []domain.BoardMember) ([]domain.BoardMember, error)
}

// BoardHandler serves the board directory.
type BoardHandler struct {
	svc boardService
	log *slog.Logger
}

func NewBoardHandler(svc boardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{svc: svc, log: logger.With("handler", "board")}
}

// List handles GET /api/board-members.
func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Board member")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// Replace handles PUT /api/board-members with the complete new directory.
func (h *BoardHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var members []domain.BoardMember
	if err := decodeJSON(w, r, &members); err != nil {
		handleError(h.log, w, r, err, "Board member")
		return
	}

	if _, err := h.svc.Replace(r.Context(), members); err != nil {
		handleError(h.log, w, r, err, "Board member")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Board members updated successfully"})
}
