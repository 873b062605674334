package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"playerhub_server/apperror"
	"playerhub_server/models"
	"playerhub_server/utils"

	"github.com/google/uuid"
)

// maxVideoSize is the upload ceiling. A file of exactly this size is
// accepted; one byte more is rejected.
const maxVideoSize = 500 * 1024 * 1024

// allowedVideoTypes is the MIME allow-list for uploads.
var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-msvideo": true,
}

// FeedService implements the video feed store: S3 for the binaries, the
// feed table for the entries, CloudFront for playback URLs.
type FeedService struct {
	Dynamo           *DynamoService
	S3               *S3Service
	Table            string
	CloudFrontDomain string
}

func NewFeedService(dynamo *DynamoService, s3svc *S3Service, table, cloudFrontDomain string) *FeedService {
	return &FeedService{
		Dynamo:           dynamo,
		S3:               s3svc,
		Table:            table,
		CloudFrontDomain: cloudFrontDomain,
	}
}

// FeedPage is one page of the feed listing, decoded into plain maps.
type FeedPage struct {
	Feeds    []map[string]interface{} `json:"feeds"`
	NextPage string                   `json:"nextPage,omitempty"`
}

// videoKey builds the storage key for an upload. A file name without an
// extension contributes the whole name as the extension segment.
func videoKey(ownerID, fileName string) string {
	parts := strings.Split(fileName, ".")
	extension := parts[len(parts)-1]
	return fmt.Sprintf("players/%s/videos/%s.%s", ownerID, uuid.NewString(), extension)
}

// UploadVideo validates the file and stores it in S3 under the owner's key
// prefix, returning the CloudFront URL it will be served from. Validation
// failures are client faults; a failed store write is a server fault.
func (fs *FeedService) UploadVideo(ctx context.Context, upload models.VideoUpload, ownerID, title string) (*models.VideoUploadResult, error) {
	if len(upload.Body) == 0 {
		return nil, apperror.Validation("No file uploaded")
	}
	if !allowedVideoTypes[upload.ContentType] {
		return nil, apperror.Validation("Invalid file type. Only video files are allowed.")
	}
	if upload.Size > maxVideoSize {
		return nil, apperror.Validation("File size exceeds maximum limit of 500MB")
	}

	key := videoKey(ownerID, upload.FileName)
	uploadedAt := time.Now().UTC().Format(time.RFC3339)
	metadata := map[string]string{
		"id":         ownerID,
		"title":      title,
		"uploadedat": uploadedAt,
	}

	if err := fs.S3.PutObject(ctx, key, upload.Body, upload.ContentType, metadata); err != nil {
		return nil, apperror.Internal("Video upload failed", err)
	}

	return &models.VideoUploadResult{
		Key:              key,
		OriginalFileName: upload.FileName,
		CloudFrontURL:    fmt.Sprintf("https://%s/%s", fs.CloudFrontDomain, key),
		UploadedAt:       uploadedAt,
	}, nil
}

// Create uploads the video and then writes the feed entry, denormalizing
// the author's id, name and profile picture as a point-in-time snapshot.
// If the entry write fails after a successful upload, the uploaded object
// is removed again on a best-effort basis so it is not orphaned.
func (fs *FeedService) Create(ctx context.Context, upload models.VideoUpload, req models.CreateFeedRequest, author *models.User) (*models.FeedEntry, error) {
	if len(upload.Body) == 0 {
		return nil, apperror.Validation("Video file is required")
	}

	result, err := fs.UploadVideo(ctx, upload, author.ID, req.Caption)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	entry := models.FeedEntry{
		ID:                uuid.NewString(),
		Caption:           req.Caption,
		VideoURL:          result.CloudFrontURL,
		ProfilePictureURL: author.ProfilePicture,
		UserID:            author.ID,
		UserName:          author.Name,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := fs.Dynamo.PutItem(ctx, fs.Table, entry); err != nil {
		if cleanupErr := fs.S3.DeleteObject(ctx, result.Key); cleanupErr != nil {
			log.Printf("Failed to clean up orphaned video '%s': %v", result.Key, cleanupErr)
		}
		return nil, apperror.Internal("Failed to create feed entry", err)
	}

	return &entry, nil
}

// List scans one page of the feed and decodes the items into plain maps.
func (fs *FeedService) List(ctx context.Context, limit int32, cursor string) (*FeedPage, error) {
	startKey, err := utils.DecodeCursor(cursor)
	if err != nil {
		return nil, apperror.Validation("invalid pagination cursor")
	}

	items, lastKey, err := fs.Dynamo.ScanPage(ctx, fs.Table, limit, startKey)
	if err != nil {
		return nil, apperror.Internal("Failed to list feeds", err)
	}

	next, err := utils.EncodeCursor(lastKey)
	if err != nil {
		return nil, apperror.Internal("failed to encode pagination cursor", err)
	}

	return &FeedPage{Feeds: utils.ConvertScanItems(items), NextPage: next}, nil
}
