package extract

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	lawlens "github.com/lawlens/lawlens"
)

// rowTolerance is the Y-coordinate slack (in points) within which two glyph
// runs are considered part of the same line.
const rowTolerance = 3.0

// PDFExtractor extracts text page by page. It tries the font-aware plain
// text path first; if no page yields anything, it retries every page with a
// positional reconstruction of the glyph runs. Pages that yield nothing
// contribute nothing; page order is preserved in the joined result.
type PDFExtractor struct{}

func (PDFExtractor) Extract(content []byte) (string, error) {
	if len(content) == 0 {
		return "", &lawlens.ErrNoExtractableText{Format: "pdf"}
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := extractPages(r, pagePlainText)
	if len(pages) == 0 {
		pages = extractPages(r, pagePositionalText)
	}
	if len(pages) == 0 {
		return "", &lawlens.ErrNoExtractableText{Format: "pdf"}
	}
	return strings.Join(pages, "\n\n"), nil
}

// extractPages runs one extraction strategy over every page in document
// order, skipping null, unreadable, and empty pages.
func extractPages(r *pdf.Reader, strategy func(pdf.Page) (string, error)) []string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := strategy(page)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages
}

func pagePlainText(page pdf.Page) (string, error) {
	return page.GetPlainText(nil)
}

// pagePositionalText rebuilds page text from positioned glyph runs, for PDFs
// whose font tables defeat the plain text path. Runs are ordered top to
// bottom (PDF origin is bottom-left, so higher Y first) and left to right
// within a row.
func pagePositionalText(page pdf.Page) (string, error) {
	texts := page.Content().Text
	return assemblePositional(texts), nil
}

func assemblePositional(texts []pdf.Text) string {
	if len(texts) == 0 {
		return ""
	}
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if math.Abs(sorted[i].Y-sorted[j].Y) > rowTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	first := true
	lastY := 0.0
	for _, t := range sorted {
		if t.S == "" {
			continue
		}
		if !first && math.Abs(t.Y-lastY) > rowTolerance {
			b.WriteByte('\n')
		}
		b.WriteString(t.S)
		lastY = t.Y
		first = false
	}
	return b.String()
}
