// Package xhsimport imports Xiaohongshu notes into a Markdown vault.
// It finds a note link in pasted share text, fetches the note page, decodes
// the state embedded in the page, and writes a Markdown document with
// front-matter alongside optionally downloaded media.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package xhsimport
