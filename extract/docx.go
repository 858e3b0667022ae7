package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// maxZipEntrySize limits decompressed size of individual zip entries
// to prevent zip bomb attacks (100 MB).
const maxZipEntrySize = 100 << 20

// DOCXExtractor streams OOXML tokens out of word/document.xml without
// loading a DOM tree. Output order is all non-blank paragraph texts in
// document order, then all non-blank table-cell texts row-major in table
// order, joined with blank-line separators. A document with no paragraph or
// table text yields an empty string, not an error; the caller checks
// emptiness.
type DOCXExtractor struct{}

func (DOCXExtractor) Extract(content []byte) (string, error) {
	data, err := readDocumentXML(content)
	if err != nil {
		return "", err
	}
	paragraphs, cells, err := parseDocumentXML(data)
	if err != nil {
		return "", err
	}
	return strings.Join(append(paragraphs, cells...), "\n\n"), nil
}

// readDocumentXML opens the DOCX zip and reads word/document.xml.
func readDocumentXML(content []byte) ([]byte, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("empty docx content")
	}
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			data, err := readZipFile(f)
			if err != nil {
				return nil, fmt.Errorf("read document.xml: %w", err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("missing word/document.xml")
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	lr := io.LimitReader(rc, maxZipEntrySize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxZipEntrySize {
		return nil, fmt.Errorf("zip entry %s exceeds %d byte limit", f.Name, maxZipEntrySize)
	}
	return data, nil
}

// docxState tracks the streaming XML decoder position. Paragraphs inside
// table cells feed the current cell, never the paragraph list.
type docxState struct {
	paragraphs []string
	cells      []string

	inParagraph bool
	inRun       bool
	inTable     int // nesting depth; tables can nest
	inCell      bool

	paragraph strings.Builder
	cell      strings.Builder
}

func parseDocumentXML(data []byte) (paragraphs, cells []string, err error) {
	s := &docxState{}
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			s.handleStart(t)
		case xml.EndElement:
			s.handleEnd(t)
		case xml.CharData:
			s.handleCharData(t)
		}
	}
	return s.paragraphs, s.cells, nil
}

func (s *docxState) handleStart(t xml.StartElement) {
	switch t.Name.Local {
	case "p":
		s.inParagraph = true
		if !s.inCell {
			s.paragraph.Reset()
		} else if s.cell.Len() > 0 {
			s.cell.WriteByte('\n')
		}
	case "r":
		s.inRun = true
	case "tbl":
		s.inTable++
	case "tc":
		s.inCell = true
		s.cell.Reset()
	}
}

func (s *docxState) handleEnd(t xml.EndElement) {
	switch t.Name.Local {
	case "r":
		s.inRun = false
	case "p":
		s.inParagraph = false
		if s.inCell {
			return
		}
		text := strings.TrimSpace(s.paragraph.String())
		if text != "" && s.inTable == 0 {
			s.paragraphs = append(s.paragraphs, text)
		}
	case "tc":
		s.inCell = false
		text := strings.TrimSpace(s.cell.String())
		if text != "" {
			s.cells = append(s.cells, text)
		}
	case "tbl":
		if s.inTable > 0 {
			s.inTable--
		}
	}
}

func (s *docxState) handleCharData(data xml.CharData) {
	if !s.inParagraph || !s.inRun {
		return
	}
	if s.inCell {
		s.cell.Write(data)
		return
	}
	if s.inTable == 0 {
		s.paragraph.Write(data)
	}
}
