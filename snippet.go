package stickergen

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mhpenta/stickergen/sharelink"
)

const (
	galleryImageDir     = "/images/"
	placeholderImage    = "/images/your-image.png"
	placeholderPrompt   = "Your prompt here"
	snippetIDPrefix     = "sticker-"
	snippetIndentPrefix = "  "
)

var imagesDirPrefix = regexp.MustCompile(`^[/\\]?images[/\\]?`)

// LocalImagePath maps a filename to its root-relative gallery path. Static
// gallery images are served from /images/.
func LocalImagePath(filename string) string {
	clean := imagesDirPrefix.ReplaceAllString(strings.TrimSpace(filename), "")
	clean = strings.TrimLeft(clean, "/")
	if clean == "" {
		return placeholderImage
	}
	return galleryImageDir + clean
}

// SnippetEntry is the input to the gallery snippet: an image location and the
// prompt that describes it.
type SnippetEntry struct {
	// Source is a local filename, a root-relative path, an absolute URL or a
	// drive share link.
	Source string
	Prompt string
}

// SnippetURL resolves the entry's image location. Share links are normalized
// through n, absolute URLs are kept, anything else is treated as a file in the
// gallery image directory.
func SnippetURL(source string, n *sharelink.Normalizer) (string, error) {
	if n == nil {
		n = sharelink.Default()
	}
	source = strings.TrimSpace(source)
	switch {
	case n.IsShareLink(source):
		return n.Normalize(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return source, nil
	default:
		return LocalImagePath(source), nil
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	"'", `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// escapeLiteral escapes s for a single-quoted string literal.
func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

func escapePrompt(prompt string) string {
	if prompt == "" {
		return placeholderPrompt
	}
	return escapeLiteral(prompt)
}

// BuildSnippet renders the record literal to paste into the gallery source.
func BuildSnippet(entry SnippetEntry, n *sharelink.Normalizer, now time.Time) (string, error) {
	u, err := SnippetURL(entry.Source, n)
	if err != nil {
		return "", err
	}
	ms := now.UnixMilli()

	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "%sid: '%s%d',\n", snippetIndentPrefix, snippetIDPrefix, ms)
	fmt.Fprintf(&b, "%surl: '%s',\n", snippetIndentPrefix, escapeLiteral(u))
	fmt.Fprintf(&b, "%sprompt: '%s',\n", snippetIndentPrefix, escapePrompt(entry.Prompt))
	fmt.Fprintf(&b, "%screatedAt: %d,\n", snippetIndentPrefix, ms)
	b.WriteString("},")
	return b.String(), nil
}

// PreviewSticker builds the sticker a snippet describes, so it can be shown
// alongside the gallery before the snippet is pasted.
func PreviewSticker(entry SnippetEntry, n *sharelink.Normalizer, now time.Time) (Sticker, error) {
	u, err := SnippetURL(entry.Source, n)
	if err != nil {
		return Sticker{}, err
	}
	ms := now.UnixMilli()
	return Sticker{
		ID:        fmt.Sprintf("%s%d", snippetIDPrefix, ms),
		URL:       u,
		Prompt:    entry.Prompt,
		CreatedAt: ms,
	}, nil
}
