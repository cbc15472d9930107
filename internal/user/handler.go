package user

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"instapost/internal/apperror"
	"instapost/internal/common"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	_, token, err := h.service.Register(r.Context(), input)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]string{"token": token})
}

// Token handles POST /auth/token
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Handle   string `json:"handle"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	_, token, err := h.service.Authenticate(r.Context(), input.Handle, input.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Search handles GET /users?name=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.Search(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// Profile handles GET /users/{handle}
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	profile, err := h.service.Profile(r.Context(), handle)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": profile})
}

// Update handles PATCH /users/{handle}; only the account owner may update.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	caller, _ := common.HandleFromContext(r.Context())
	if caller != handle {
		common.WriteError(w, apperror.Forbidden("cannot update another user's profile"))
		return
	}

	var input UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), handle, input)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": updated})
}

// Delete handles DELETE /users/{handle}; only the account owner may delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	caller, _ := common.HandleFromContext(r.Context())
	if caller != handle {
		common.WriteError(w, apperror.Forbidden("cannot delete another user's account"))
		return
	}

	if err := h.service.DeleteAccount(r.Context(), handle); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"deleted": handle})
}

// Follow handles POST /users/follow; the actor is the authenticated caller.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	var input struct {
		Handle string `json:"handle"` // account to follow
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	if err := h.service.Follow(r.Context(), caller, input.Handle); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Unfollow handles POST /users/unfollow
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	var input struct {
		Handle string `json:"handle"` // account to unfollow
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, apperror.BadRequest("invalid request body"))
		return
	}

	if err := h.service.Unfollow(r.Context(), caller, input.Handle); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Suggestions handles GET /users/{handle}/suggestions
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]
	users, err := h.service.Suggestions(r.Context(), handle)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
