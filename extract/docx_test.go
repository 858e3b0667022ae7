package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func docxFixture(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func para(text string) string {
	return fmt.Sprintf(`<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, text)
}

func docXML(body string) string {
	return `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

func TestDOCXExtractorParagraphs(t *testing.T) {
	content := docxFixture(t, docXML(para("First paragraph")+para("")+para("Second paragraph")))
	out, err := DOCXExtractor{}.Extract(content)
	if err != nil {
		t.Fatal(err)
	}
	want := "First paragraph\n\nSecond paragraph"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDOCXExtractorTableCellsAfterParagraphs(t *testing.T) {
	table := `<w:tbl><w:tr><w:tc>` + para("Cell A") + `</w:tc><w:tc>` + para("Cell B") + `</w:tc></w:tr></w:tbl>`
	content := docxFixture(t, docXML(para("Intro")+table+para("Outro")))
	out, err := DOCXExtractor{}.Extract(content)
	if err != nil {
		t.Fatal(err)
	}
	// All paragraph text in document order, then all cell text.
	want := "Intro\n\nOutro\n\nCell A\n\nCell B"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDOCXExtractorMultiParagraphCell(t *testing.T) {
	table := `<w:tbl><w:tr><w:tc>` + para("line one") + para("line two") + `</w:tc></w:tr></w:tbl>`
	content := docxFixture(t, docXML(table))
	out, err := DOCXExtractor{}.Extract(content)
	if err != nil {
		t.Fatal(err)
	}
	if out != "line one\nline two" {
		t.Errorf("got %q", out)
	}
}

func TestDOCXExtractorEmptyDocument(t *testing.T) {
	content := docxFixture(t, docXML(""))
	out, err := DOCXExtractor{}.Extract(content)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("got %q, want empty string", out)
	}
}

func TestDOCXExtractorMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()

	_, err := DOCXExtractor{}.Extract(buf.Bytes())
	if err == nil || !strings.Contains(err.Error(), "document.xml") {
		t.Errorf("expected missing document.xml error, got %v", err)
	}
}

func TestDOCXExtractorNotAZip(t *testing.T) {
	if _, err := (DOCXExtractor{}).Extract([]byte("plain bytes")); err == nil {
		t.Fatal("expected error")
	}
}
