package xhsimport

import "regexp"

// Share links end at whitespace or at an ASCII or full-width comma.
var (
	shortLinkRe = regexp.MustCompile(`https?://xhslink\.com/(?:[a-zA-Z]/)?[^\s\p{Zs},，]+`)
	itemLinkRe  = regexp.MustCompile(`https?://www\.xiaohongshu\.com/discovery/item/[a-zA-Z0-9]+(?:\?[^\s\p{Zs},，]*)?`)
)

// ExtractURL finds a Xiaohongshu note link in pasted share text.
// Short links take priority over canonical item links, and only the first
// match is returned. Returns an empty string if no link is found.
func ExtractURL(text string) string {
	if u := shortLinkRe.FindString(text); u != "" {
		return u
	}
	return itemLinkRe.FindString(text)
}
