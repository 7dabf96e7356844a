// Package instagram normalizes pasted Instagram reel links and embed markup
// into stable permalinks and embeddable URLs. All functions are pure.
package instagram

import (
	"regexp"
	"strings"
)

const embedTemplate = "https://www.instagram.com/p/%ID%/embed"

var (
	permalinkAttrPattern = regexp.MustCompile(`data-instgrm-permalink="([^"]+)"`)
	postIDPattern        = regexp.MustCompile(`instagram\.com/(?:reel|p)/([^/?#&]+)`)
)

// ExtractPermalink reduces raw input to a canonical permalink. The input may
// be a bare link, a link with query parameters, or a full block of embed
// markup copied from Instagram's share dialog. Canonical form has no query
// string and exactly one trailing slash, so re-running on the output is a
// no-op.
func ExtractPermalink(raw string) string {
	link := strings.TrimSpace(raw)

	if strings.Contains(link, "<blockquote") {
		match := permalinkAttrPattern.FindStringSubmatch(link)
		if len(match) > 1 {
			link = match[1]
		}
	}

	return Canonicalize(link)
}

// Canonicalize strips the query string and normalizes to a single trailing
// slash.
func Canonicalize(link string) string {
	if link == "" {
		return ""
	}

	link = strings.SplitN(link, "?", 2)[0]
	link = strings.TrimSuffix(link, "/")

	return link + "/"
}

// EmbedURL derives a directly embeddable URL from a permalink by substituting
// the post or reel identifier into the embed endpoint. The second return is
// false when the link does not carry an Instagram post identifier; callers
// should then render the media as an uploaded video instead.
func EmbedURL(permalink string) (string, bool) {
	if !strings.Contains(permalink, "instagram.com") {
		return "", false
	}

	match := postIDPattern.FindStringSubmatch(permalink)
	if len(match) < 2 {
		return "", false
	}

	return strings.Replace(embedTemplate, "%ID%", match[1], 1), true
}
