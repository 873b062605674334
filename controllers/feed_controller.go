package controllers

import (
	"io"
	"log"
	"net/http"

	"playerhub_server/apperror"
	"playerhub_server/middleware"
	"playerhub_server/models"
	"playerhub_server/services"
)

// multipartMemoryLimit is how much of an upload is held in memory before
// the rest spills to temporary files.
const multipartMemoryLimit = 32 << 20

// FeedController handles feed creation and listing. It resolves the full
// author record so the feed entry can snapshot name and profile picture.
type FeedController struct {
	Feeds *services.FeedService
	Users *services.UserService
}

// NewFeedController creates a new instance of FeedController.
func NewFeedController(feeds *services.FeedService, users *services.UserService) *FeedController {
	return &FeedController{Feeds: feeds, Users: users}
}

// Create handles POST /api/feed: a multipart form with the video under the
// "video" field and the caption alongside.
func (c *FeedController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("Missing identity"))
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, apperror.Validation("Invalid multipart payload"))
		return
	}

	req := models.CreateFeedRequest{Caption: r.FormValue("caption")}
	if err := validate.Struct(req); err != nil {
		writeError(w, apperror.Validation(err.Error()))
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, apperror.Validation("Video file is required"))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		writeError(w, apperror.Internal("Failed to read uploaded file", err))
		return
	}

	upload := models.VideoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        body,
	}

	author, err := c.Users.GetByID(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := c.Feeds.Create(r.Context(), upload, req, author)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Printf("Feed entry %s created by user %s", entry.ID, author.ID)
	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /api/feed with limit and next query parameters.
func (c *FeedController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.Feeds.List(r.Context(), parseLimit(r), r.URL.Query().Get("next"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
