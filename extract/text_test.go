package extract

import (
	"strings"
	"testing"
)

func TestDecodeTextUTF8(t *testing.T) {
	out, err := DecodeText([]byte("héllo"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "héllo" {
		t.Errorf("got %q", out)
	}
}

func TestDecodeTextLatin1Fallback(t *testing.T) {
	// 0xE9 is é in latin-1 but is not valid UTF-8 on its own.
	out, err := DecodeText([]byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatal(err)
	}
	if out != "café" {
		t.Errorf("got %q, want café", out)
	}
}

func TestPlainTextExtractorTrims(t *testing.T) {
	out, err := PlainTextExtractor{}.Extract([]byte("  directive text \n"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "directive text" {
		t.Errorf("got %q", out)
	}
}

func TestPlainTextExtractorWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in cp1252; latin-1 maps them to C1
	// controls, which still decodes, so the chain resolves at latin-1.
	out, err := DecodeText([]byte{0x93, 'q', 0x94})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "q") {
		t.Errorf("content lost: %q", out)
	}
}
