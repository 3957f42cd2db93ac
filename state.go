package xhsimport

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var stateRe = regexp.MustCompile(`(?s)window\.__INITIAL_STATE__=(.*?)</script>`)

// PageState is the subset of the state blob embedded in a note page.
//
// Decoding is tolerant: a value with an unexpected shape is left at its zero
// value instead of failing the whole decode, and every accessor is safe to
// call on a nil receiver.
type PageState struct {
	Note struct {
		NoteDetailMap NoteDetailMap `json:"noteDetailMap"`
	} `json:"note"`
}

// NoteDetailMap holds the first entry of the note-id keyed detail mapping.
// A page carries exactly one note, so later entries are ignored.
type NoteDetailMap struct {
	ID     string
	Detail *NoteDetail
}

// UnmarshalJSON keeps the first key in document order.
// Non-object values decode to an empty map.
func (m *NoteDetailMap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil
	}
	if !dec.More() {
		return nil
	}
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	id, ok := tok.(string)
	if !ok {
		return nil
	}

	var detail NoteDetail
	if err := dec.Decode(&detail); err != nil && !isTypeError(err) {
		return nil
	}
	m.ID = id
	m.Detail = &detail
	return nil
}

// NoteDetail wraps a single note record.
type NoteDetail struct {
	Note *NoteRecord `json:"note"`
}

// NoteRecord is the note as described by the page state.
type NoteRecord struct {
	Type      string      `json:"type"`
	Desc      string      `json:"desc"`
	ImageList []ImageInfo `json:"imageList"`
	Video     *VideoInfo  `json:"video"`
}

// ImageInfo describes one image of a note.
type ImageInfo struct {
	URLDefault string `json:"urlDefault"`
}

// VideoInfo describes the video of a video note.
type VideoInfo struct {
	Media *struct {
		Stream *VideoStreams `json:"stream"`
	} `json:"media"`
}

// VideoStreams lists the available encodings of a video.
type VideoStreams struct {
	H264 []StreamInfo `json:"h264"`
	H265 []StreamInfo `json:"h265"`
}

// StreamInfo is a single playable stream.
type StreamInfo struct {
	MasterURL string `json:"masterUrl"`
}

// ParseState locates and decodes the state blob embedded in a note page.
// The page uses the bare token undefined, which is rewritten to null before
// decoding. Returns ENOTFOUND if the page has no state and EINVALID if the
// state is not valid JSON; callers fall back to the page markup in both cases.
func ParseState(html string) (*PageState, error) {
	m := stateRe.FindStringSubmatch(html)
	if m == nil {
		return nil, Errorf(ENOTFOUND, "page state not found")
	}

	raw := strings.TrimSuffix(strings.TrimSpace(m[1]), ";")
	raw = strings.ReplaceAll(raw, "undefined", "null")

	var state PageState
	if err := json.Unmarshal([]byte(raw), &state); err != nil && !isTypeError(err) {
		return nil, Errorf(EINVALID, "malformed page state: %v", err)
	}
	return &state, nil
}

func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

// NoteID returns the id of the note described by the state, if any.
func (s *PageState) NoteID() string {
	if s == nil {
		return ""
	}
	return s.Note.NoteDetailMap.ID
}

// Record returns the note record, or nil if the state does not describe one.
func (s *PageState) Record() *NoteRecord {
	if s == nil || s.Note.NoteDetailMap.Detail == nil {
		return nil
	}
	return s.Note.NoteDetailMap.Detail.Note
}

// IsVideo reports whether the record describes a video note.
func (r *NoteRecord) IsVideo() bool {
	return r != nil && r.Type == "video"
}

// Description returns the raw note description.
func (r *NoteRecord) Description() string {
	if r == nil {
		return ""
	}
	return r.Desc
}

// VideoURL returns the first non-empty master URL, preferring the h264
// stream over h265. Returns an empty string if neither is present.
func (r *NoteRecord) VideoURL() string {
	if r == nil || r.Video == nil || r.Video.Media == nil || r.Video.Media.Stream == nil {
		return ""
	}
	stream := r.Video.Media.Stream
	for _, encoding := range [][]StreamInfo{stream.H264, stream.H265} {
		if len(encoding) > 0 && encoding[0].MasterURL != "" {
			return encoding[0].MasterURL
		}
	}
	return ""
}

// ImageURLs returns the default URL of every image in source order,
// skipping entries that are empty or not HTTP(S) URLs.
func (r *NoteRecord) ImageURLs() []string {
	if r == nil {
		return nil
	}
	urls := make([]string, 0, len(r.ImageList))
	for _, img := range r.ImageList {
		u := img.URLDefault
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			urls = append(urls, u)
		}
	}
	return urls
}
