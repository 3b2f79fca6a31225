package models

import (
	"fmt"
	"time"

	"github.com/baluflix/baluflix/internal/videoid"
	"github.com/google/uuid"
)

// Kind classifies a catalog entry.
type Kind string

const (
	KindVideo Kind = "video"
	KindSong  Kind = "song"
	KindOther Kind = "other"
)

// ParseKind maps a client-supplied kind onto a known value, falling
// back to KindVideo for anything unrecognized or empty.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindSong:
		return KindSong
	case KindOther:
		return KindOther
	default:
		return KindVideo
	}
}

// Video is one catalog record. A record references either an external
// video (SourceURL set) or an uploaded file (Filename set), never both.
type Video struct {
	StorageKey  string    `json:"storageKey"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Kind        Kind      `json:"kind"`
	SourceURL   string    `json:"url,omitempty"`
	Filename    string    `json:"filename,omitempty"`
	Thumbnail   string    `json:"thumb,omitempty"`
	Published   bool      `json:"published"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewReferenceVideo builds a record for an externally hosted video.
// The catalog id is derived from the URL and the thumbnail defaults to
// the derived preview image when the caller supplies none.
func NewReferenceVideo(title, url string, kind Kind, thumb string, published bool) *Video {
	id := videoid.Extract(url)
	if thumb == "" {
		thumb = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
	}
	return &Video{
		StorageKey: uuid.New().String(),
		ID:         id,
		Title:      title,
		Kind:       kind,
		SourceURL:  url,
		Thumbnail:  thumb,
		Published:  published,
		CreatedAt:  time.Now(),
	}
}

// NewUploadedVideo builds a record for a file stored locally. Uploaded
// records always start unpublished.
func NewUploadedVideo(title, description, filename, originalName, principal string) *Video {
	if title == "" {
		title = originalName
	}
	return &Video{
		StorageKey:  uuid.New().String(),
		ID:          filename,
		Title:       title,
		Description: description,
		Kind:        KindVideo,
		Filename:    filename,
		Published:   false,
		UploadedBy:  principal,
		CreatedAt:   time.Now(),
	}
}
