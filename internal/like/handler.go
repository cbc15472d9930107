package like

import (
	"context"
	"encoding/json"
	"net/http"

	"instapost/internal/apperror"
	"instapost/internal/common"
)

type Handler struct {
	service LikeService
}

func NewHandler(service LikeService) *Handler {
	return &Handler{service: service}
}

type likeRequest struct {
	TargetID uint64 `json:"target_id"`
	LikeType string `json:"like_type"` // "post" or "comment"
}

// Like handles POST /users/like
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.Like)
}

// Unlike handles POST /users/unlike
func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.service.Unlike)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, handle string, targetID uint64, kind TargetKind) error) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	var input likeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	kind, err := ParseTargetKind(input.LikeType)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := op(r.Context(), caller, input.TargetID, kind); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
