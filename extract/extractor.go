// Package extract converts uploaded document bytes into plain text.
//
// Document is the entry point: it classifies an upload by declared MIME type
// and filename extension, routes it to the matching extractor, and returns
// the text with basic metrics. Individual extractors are exported so callers
// with already-classified content can invoke them directly.
package extract

import (
	"path/filepath"
	"strings"

	lawlens "github.com/lawlens/lawlens"
)

// Extractor converts raw document bytes to plain text.
type Extractor interface {
	Extract(content []byte) (string, error)
}

// ContentType identifies the declared MIME type of an uploaded document.
type ContentType string

const (
	TypeHTML      ContentType = "text/html"
	TypePDF       ContentType = "application/pdf"
	TypeDOCX      ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeDOC       ContentType = "application/msword"
	TypePlainText ContentType = "text/plain"
)

// Document classifies an upload and extracts its text. Classification
// accepts either a matching declared content type or a matching filename
// extension; when neither matches a supported format, it fails with
// *lawlens.ErrUnsupportedFormat and no extraction is attempted.
func Document(content []byte, contentType, filename string) (lawlens.ExtractedDocument, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	// Media type parameters ("text/html; charset=utf-8") don't affect routing.
	if mt, _, ok := strings.Cut(contentType, ";"); ok {
		contentType = strings.TrimSpace(mt)
	}

	var extractor Extractor
	switch {
	case contentType == string(TypeHTML) || ext == "html" || ext == "htm":
		extractor = HTMLExtractor{}
	case contentType == string(TypePDF) || ext == "pdf":
		extractor = PDFExtractor{}
	case contentType == string(TypeDOCX) || contentType == string(TypeDOC) ||
		ext == "docx" || ext == "doc":
		extractor = DOCXExtractor{}
	case contentType == string(TypePlainText) || ext == "txt":
		extractor = PlainTextExtractor{}
	default:
		return lawlens.ExtractedDocument{}, &lawlens.ErrUnsupportedFormat{
			ContentType: contentType,
			Ext:         ext,
		}
	}

	text, err := extractor.Extract(content)
	if err != nil {
		return lawlens.ExtractedDocument{}, err
	}

	return lawlens.ExtractedDocument{
		Text:             text,
		OriginalFilename: filename,
		ContentType:      contentType,
		Length:           len(text),
		WordCount:        len(strings.Fields(text)),
	}, nil
}
