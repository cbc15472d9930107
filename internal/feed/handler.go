package feed

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"instapost/internal/apperror"
	"instapost/internal/common"
)

type Handler struct {
	service FeedService
}

func NewHandler(service FeedService) *Handler {
	return &Handler{service: service}
}

// HomeFeed handles GET /users/{handle}/followerPosts
func (h *Handler) HomeFeed(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	posts, err := h.service.HomeFeed(r.Context(), handle)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

// CreatePost handles POST /users/create; the author is the caller.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	var input CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	post, err := h.service.CreatePost(r.Context(), caller, input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"post": post})
}

// GetPost handles GET /users/posts/{postId}
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(mux.Vars(r)["postId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// DeletePost handles DELETE /users/posts/{postId}
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	postID, err := parseID(mux.Vars(r)["postId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.service.DeletePost(r.Context(), caller, postID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("invalid id: " + s)
	}
	return id, nil
}
