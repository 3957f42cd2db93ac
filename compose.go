package xhsimport

import (
	"path"
	"regexp"
	"strings"
	"time"
)

// VideoTitlePrefix marks the file names of video notes.
const VideoTitlePrefix = "[V]"

// NoticeNoVideo is reported when a video note is composed around its cover.
const NoticeNoVideo = "Video URL not found; using cover image as fallback."

// ImportedAtLayout formats the local import time in front-matter.
const ImportedAtLayout = "1/2/2006, 3:04:05 PM"

var tagRunRe = regexp.MustCompile(`#[^#\s\p{Zs}]*(?:[\s\p{Zs}]+#[^#\s\p{Zs}]*)*[\s\p{Zs}]*`)

// Document is a composed note ready to be written to the vault.
type Document struct {
	// Path is the vault-relative path of the note file.
	Path    string
	Content string

	// Notices are non-fatal messages for the user produced while composing.
	Notices []string
}

// ComposeParams holds the inputs of Compose.
type ComposeParams struct {
	Note     *Note
	Media    *MediaPlan
	URL      string
	Category string

	// Folder is the vault-relative folder the note is written to.
	Folder string
	Now    time.Time
}

// Compose renders a note as Markdown with front-matter.
//
// A video note shows its video, or its cover linking to the source when no
// video was found. Any other note shows its cover first and repeats every
// image, cover included, in a gallery after the tags.
func Compose(p ComposeParams) *Document {
	note := p.Note
	media := p.Media
	if media == nil {
		media = &MediaPlan{}
	}
	doc := &Document{}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + note.Title + "\n")
	b.WriteString("source: " + p.URL + "\n")
	b.WriteString("date: " + p.Now.UTC().Format("2006-01-02") + "\n")
	b.WriteString("Imported At: " + p.Now.Format(ImportedAtLayout) + "\n")
	b.WriteString("category: " + p.Category + "\n")
	b.WriteString("---\n")
	b.WriteString("# " + note.Title + "\n\n")

	if note.IsVideo {
		if media.Video != nil {
			b.WriteString(`<video controls src="` + media.Video.Ref + `"></video>` + "\n\n")
		} else if len(media.Images) > 0 {
			b.WriteString("[![Cover Image](" + media.Images[0].Ref + ")](" + p.URL + ")\n\n")
			doc.Notices = append(doc.Notices, NoticeNoVideo)
		}

		b.WriteString(strings.TrimSpace(tagRe.ReplaceAllString(note.Body, "")) + "\n\n")

		if len(note.Tags) > 0 {
			writeTagBlock(&b, note.Tags)
		}
	} else {
		if len(media.Images) > 0 {
			b.WriteString("![Cover Image](" + media.Images[0].Ref + ")\n\n")
		}

		b.WriteString(strings.TrimSpace(tagRunRe.ReplaceAllString(note.Body, "")) + "\n\n")

		if len(note.Tags) > 0 {
			writeTagBlock(&b, note.Tags)
			b.WriteString("\n")
		}

		if len(media.Images) > 0 {
			gallery := make([]string, 0, len(media.Images))
			for _, img := range media.Images {
				gallery = append(gallery, "![Image]("+img.Ref+")")
			}
			b.WriteString(strings.Join(gallery, "\n") + "\n")
		}
	}

	doc.Content = b.String()
	doc.Path = path.Join(p.Folder, NoteFileName(note)+".md")
	return doc
}

// NoteFileName returns the file name of a note without extension.
func NoteFileName(note *Note) string {
	name := SanitizeNoteTitle(note.Title)
	if note.IsVideo {
		return VideoTitlePrefix + name
	}
	return name
}

func writeTagBlock(b *strings.Builder, tags []string) {
	b.WriteString("```\n")
	for i, tag := range tags {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("#" + tag)
	}
	b.WriteString("\n```\n")
}
