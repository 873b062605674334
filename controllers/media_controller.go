package controllers

import (
	"encoding/json"
	"net/http"

	"playerhub_server/apperror"
	"playerhub_server/services"
)

// MediaController hands out presigned S3 URLs so clients can upload and
// read profile pictures without routing the bytes through this server.
type MediaController struct {
	S3 *services.S3Service
}

// NewMediaController creates a new instance of MediaController.
func NewMediaController(s3svc *services.S3Service) *MediaController {
	return &MediaController{S3: s3svc}
}

// GenerateUploadURL handles POST /api/media/upload-url.
func (c *MediaController) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.Validation("Invalid request payload"))
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		writeError(w, apperror.Validation("Missing required fields"))
		return
	}

	url, key, err := c.S3.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		writeError(w, apperror.Internal("Failed to generate upload URL", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateReadURL handles POST /api/media/read-url.
func (c *MediaController) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		writeError(w, apperror.Validation("Invalid request payload"))
		return
	}

	url, err := c.S3.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		writeError(w, apperror.Internal("Failed to generate read URL", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
