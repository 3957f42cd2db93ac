package xhsimport

import (
	"context"
	"fmt"
	"path"
	"time"
)

// MediaFolderName is the vault folder, next to the category folders,
// that holds downloaded media.
const MediaFolderName = "media"

// MediaKind identifies the type of a media asset.
type MediaKind string

// Media kinds.
const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// Extension returns the file extension used for downloaded assets of the kind.
func (k MediaKind) Extension() string {
	if k == MediaVideo {
		return ".mp4"
	}
	return ".jpg"
}

// MediaItem is one media asset referenced by a note document.
type MediaItem struct {
	Kind MediaKind

	// Index is the position of an image in the note's image list.
	// It is ignored for video.
	Index int

	SourceURL string

	// Ref is what the document links to: a path relative to the note
	// when the asset was downloaded, SourceURL otherwise.
	Ref string
}

// MediaPlan lists the media assets a note document references.
type MediaPlan struct {
	Video  *MediaItem
	Images []MediaItem
}

// Items returns pointers to every item in the plan, video first.
func (p *MediaPlan) Items() []*MediaItem {
	var items []*MediaItem
	if p.Video != nil {
		items = append(items, p.Video)
	}
	for i := range p.Images {
		items = append(items, &p.Images[i])
	}
	return items
}

// PlanMedia decides which assets the document for note needs.
// A video note needs its video, or its cover image when no video was found.
// Any other note needs every image.
func PlanMedia(note *Note) *MediaPlan {
	plan := &MediaPlan{}
	if note.IsVideo {
		if note.VideoURL != "" {
			plan.Video = &MediaItem{Kind: MediaVideo, SourceURL: note.VideoURL, Ref: note.VideoURL}
		} else if len(note.Images) > 0 {
			plan.Images = []MediaItem{{Kind: MediaImage, Index: 0, SourceURL: note.Images[0], Ref: note.Images[0]}}
		}
		return plan
	}

	plan.Images = make([]MediaItem, 0, len(note.Images))
	for i, u := range note.Images {
		plan.Images = append(plan.Images, MediaItem{Kind: MediaImage, Index: i, SourceURL: u, Ref: u})
	}
	return plan
}

// MediaFileName builds the name of a downloaded asset from the media-safe
// title. The timestamp separates repeated imports of similarly titled notes
// and the index separates images of the same note.
func MediaFileName(safeTitle string, item *MediaItem, at time.Time) string {
	if item.Kind == MediaVideo {
		return fmt.Sprintf("%s-%d%s", safeTitle, at.UnixMilli(), item.Kind.Extension())
	}
	return fmt.Sprintf("%s-%d-%d%s", safeTitle, item.Index, at.UnixMilli(), item.Kind.Extension())
}

// MediaRef returns the link to a downloaded asset relative to a note in a
// category folder.
func MediaRef(name string) string {
	return path.Join("..", MediaFolderName, name)
}

// Downloader retrieves binary media content.
type Downloader interface {
	// Download returns the response body for url.
	// Non-OK HTTP statuses are reported as errors.
	Download(ctx context.Context, url string) ([]byte, error)
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
