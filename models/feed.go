package models

// FeedEntry is one video post in the feed table. The author fields are
// copied from the user record at creation time and do not track later
// profile edits.
type FeedEntry struct {
	ID                string `json:"id" dynamodbav:"id"`
	Caption           string `json:"caption,omitempty" dynamodbav:"caption,omitempty"`
	VideoURL          string `json:"videoUrl,omitempty" dynamodbav:"videoUrl,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty" dynamodbav:"profilePictureUrl,omitempty"`
	UserID            string `json:"userId,omitempty" dynamodbav:"userId,omitempty"`
	UserName          string `json:"userName,omitempty" dynamodbav:"userName,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty" dynamodbav:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

// CreateFeedRequest is the metadata part of a feed upload.
type CreateFeedRequest struct {
	Caption string `json:"caption" validate:"required"`
}

// VideoUpload is an uploaded video file as received by the HTTP layer.
type VideoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        []byte
}

// VideoUploadResult describes a successfully stored video.
type VideoUploadResult struct {
	Key              string `json:"videoId"`
	OriginalFileName string `json:"originalFileName"`
	CloudFrontURL    string `json:"cloudFrontUrl"`
	UploadedAt       string `json:"uploadedAt"`
}
