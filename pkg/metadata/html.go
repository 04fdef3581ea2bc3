package metadata

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// htmlConverter turns HTML descriptions into markdown the mining pipeline
// understands. Safe for concurrent use.
type htmlConverter struct {
	converter *md.Converter
}

func newHTMLConverter() *htmlConverter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &htmlConverter{converter: converter}
}

func (h *htmlConverter) toMarkdown(htmlContent string) (string, error) {
	return h.converter.ConvertString(htmlContent)
}

// looksLikeHTMLDocument catches descriptions whose content type is missing
// or wrong but that clearly are HTML pages.
func looksLikeHTMLDocument(text string) bool {
	head := strings.ToLower(strings.TrimSpace(text))
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.HasPrefix(head, "<!doctype html") ||
		strings.HasPrefix(head, "<html") ||
		strings.Contains(head, "<body")
}
