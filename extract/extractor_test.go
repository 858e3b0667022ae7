package extract

import (
	"errors"
	"testing"

	lawlens "github.com/lawlens/lawlens"
)

func TestDocumentDispatchByContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		filename    string
		content     []byte
		wantText    string
	}{
		{"html", "text/html", "upload.bin", []byte("<p>Hello</p>"), "Hello"},
		{"plain", "text/plain", "upload.bin", []byte("Hello"), "Hello"},
	}
	for _, tt := range tests {
		doc, err := Document(tt.content, tt.contentType, tt.filename)
		if err != nil {
			t.Fatalf("%s: Document returned error: %v", tt.name, err)
		}
		if doc.Text != tt.wantText {
			t.Errorf("%s: got text %q, want %q", tt.name, doc.Text, tt.wantText)
		}
	}
}

func TestDocumentDispatchByExtension(t *testing.T) {
	doc, err := Document([]byte("<p>Hello &amp; world</p>"), "application/octet-stream", "directive.htm")
	if err != nil {
		t.Fatalf("Document returned error: %v", err)
	}
	if doc.Text != "Hello & world" {
		t.Errorf("got %q, want %q", doc.Text, "Hello & world")
	}
}

func TestDocumentUnsupportedFormat(t *testing.T) {
	_, err := Document([]byte("data"), "image/png", "scan.png")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	var unsupported *lawlens.ErrUnsupportedFormat
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedFormat, got %T: %v", err, err)
	}
	if unsupported.ContentType != "image/png" || unsupported.Ext != "png" {
		t.Errorf("error carries %q/.%s, want image/png/.png", unsupported.ContentType, unsupported.Ext)
	}
}

func TestDocumentMetrics(t *testing.T) {
	doc, err := Document([]byte("one two  three\n"), "text/plain", "counts.txt")
	if err != nil {
		t.Fatalf("Document returned error: %v", err)
	}
	if doc.WordCount != 3 {
		t.Errorf("word count = %d, want 3", doc.WordCount)
	}
	if doc.Length != len(doc.Text) {
		t.Errorf("length = %d, want %d", doc.Length, len(doc.Text))
	}
	if doc.OriginalFilename != "counts.txt" {
		t.Errorf("filename = %q", doc.OriginalFilename)
	}
}

func TestDocumentDocExtensionRoutesToDOCX(t *testing.T) {
	// A legacy .doc is routed to the DOCX extractor; non-zip bytes fail there.
	_, err := Document([]byte("not a zip"), "application/msword", "old.doc")
	if err == nil {
		t.Fatal("expected error for non-zip doc content")
	}
	var unsupported *lawlens.ErrUnsupportedFormat
	if errors.As(err, &unsupported) {
		t.Error("doc extension must not be treated as unsupported")
	}
}
