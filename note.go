package xhsimport

import (
	"regexp"
	"strings"
)

// Placeholders used when a page lacks the corresponding field.
const (
	UntitledNoteTitle = "Untitled Xiaohongshu Note"
	ContentNotFound   = "Content not found"
)

// TitleSuffix is appended by the site to every page title.
const TitleSuffix = " - 小红书"

// topicMarker follows each hashtag in note descriptions.
const topicMarker = "[话题]"

var (
	annotationRe = regexp.MustCompile(`\[[^\]]+\]`)
	tagRe        = regexp.MustCompile(`#[^\s\p{Zs}]+`)
)

// Note is the normalized content of a single note page.
type Note struct {
	Title string

	// Body is the description with topic markers and annotations removed.
	// Hashtags are still present.
	Body string

	// Tags are the hashtags found in Body, without the leading '#',
	// in order of appearance. Duplicates are kept.
	Tags []string

	IsVideo bool

	// VideoURL is empty when the note is not a video or no stream was found.
	VideoURL string

	// Images are image URLs in source order. The first is the cover.
	Images []string
}

// Extractor derives note content from a fetched note page.
type Extractor interface {
	// Extract never fails: fields that cannot be found are left at
	// placeholder or zero values.
	Extract(html string) *Note
}

// StripAnnotations removes topic markers and bracketed annotations such as
// emoji codes from description text, then trims surrounding whitespace.
func StripAnnotations(s string) string {
	s = strings.ReplaceAll(s, topicMarker, "")
	s = annotationRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ExtractTags returns the hashtags found in text without their leading '#'.
func ExtractTags(text string) []string {
	matches := tagRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.TrimSpace(strings.Replace(m, "#", "", 1)))
	}
	return tags
}

// CleanTitle removes the site suffix from a page title.
func CleanTitle(title string) string {
	return strings.Replace(title, TitleSuffix, "", 1)
}
