package article

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// ExtractParagraphs returns the text of every <p> element whose trimmed text
// is non-empty, in document order, joined by single spaces. The untrimmed
// text of each paragraph is kept.
func ExtractParagraphs(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if strings.TrimSpace(text) != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, " "), nil
}

// ExtractPage decodes the page body to UTF-8 and extracts its paragraphs.
func ExtractPage(page *Page) (string, error) {
	body, err := charset.NewReader(bytes.NewReader(page.Body), page.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", page.URL, err)
	}
	return ExtractParagraphs(body)
}
