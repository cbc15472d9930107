package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"instapost/internal/apperror"
	"instapost/internal/common"
)

type Handler struct {
	service TreeService
}

func NewHandler(service TreeService) *Handler {
	return &Handler{service: service}
}

// PostComments handles GET /users/comments/{postId}: the full nested
// discussion of one post.
func (h *Handler) PostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseUint(mux.Vars(r)["postId"], 10, 64)
	if err != nil {
		common.WriteError(w, apperror.BadRequest("invalid post id"))
		return
	}

	comments, err := h.service.PostComments(r.Context(), postID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

// Create handles POST /users/comment; the author is the caller.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	var input struct {
		PostID   uint64  `json:"post_id"`
		ParentID *uint64 `json:"parent_id"`
		Message  string  `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	created, err := h.service.CreateComment(r.Context(), caller, input.PostID, input.ParentID, input.Message)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"comment": created})
}

// UserComments handles GET /users/{handle}/comments
func (h *Handler) UserComments(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	comments, err := h.service.UserComments(r.Context(), handle)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"handle": handle, "comments": comments})
}
