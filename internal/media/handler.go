// Package media exposes upload and download endpoints over the GridFS store.
package media

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"instapost/internal/apperror"
	"instapost/internal/common"
	"instapost/internal/dbmongo"
)

// maxUploadBytes caps a single media upload.
const maxUploadBytes = 32 << 20 // 32 MB

type Handler struct {
	storage *dbmongo.MediaStorage
}

func NewHandler(storage *dbmongo.MediaStorage) *Handler {
	return &Handler{storage: storage}
}

// Upload handles POST /users/upload. The file arrives as multipart field
// "single"; the response carries the public URL and the key used for later
// deletion.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.HandleFromContext(r.Context())
	if !ok {
		common.WriteError(w, apperror.Unauthorized("authentication required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.WriteError(w, apperror.BadRequest("file is too large"))
		return
	}

	file, header, err := r.FormFile("single")
	if err != nil {
		common.WriteError(w, apperror.BadRequest("missing file field 'single'"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		common.WriteError(w, apperror.BadRequest("file must be an image or video"))
		return
	}

	stored, err := h.storage.Upload(r.Context(), header.Filename, mimeType, caller, file)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"result": map[string]string{
			"url": "/media/" + stored.Key,
			"key": stored.Key,
		},
	})
}

// Serve handles GET /media/{fileId}, streaming the blob back.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	fileReader, mediaFile, err := h.storage.Download(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, apperror.NotFound("file", fileID))
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(mediaFile.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))

	if _, err := io.Copy(w, fileReader); err != nil {
		log.Printf("error streaming file %s: %v", fileID, err)
	}
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
