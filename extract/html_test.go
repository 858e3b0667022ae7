package extract

import (
	"strings"
	"testing"
)

func TestStripHTMLScriptAndStyleExcluded(t *testing.T) {
	in := "<html><head><style>body{color:red}</style></head>" +
		"<body><script>alert('x')</script><p>Visible</p></body></html>"
	out := StripHTML(in)
	if strings.Contains(out, "alert") || strings.Contains(out, "color:red") {
		t.Errorf("script/style content leaked into output: %q", out)
	}
	if !strings.Contains(out, "Visible") {
		t.Errorf("visible text lost: %q", out)
	}
}

func TestStripHTMLScenario(t *testing.T) {
	out := StripHTML("<html><script>x</script><body><p>Hello &amp; world</p></body></html>")
	if out != "Hello & world" {
		t.Errorf("got %q, want %q", out, "Hello & world")
	}
}

func TestStripHTMLEntityRoundTrip(t *testing.T) {
	// Encoding a string with the supported entity set and extracting it
	// yields the original string.
	tests := []struct {
		encoded string
		want    string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"caf&eacute;", "café"},
		{"&euro;100 &pound;80", "€100 £80"},
		{"r&eacute;gulation europ&eacute;enne", "régulation européenne"},
		{"&#233;&#xE9;", "éé"},
		{"Art. 5 &sect; 2", "Art. 5 § 2"},
	}
	for _, tt := range tests {
		if got := StripHTML(tt.encoded); got != tt.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.encoded, got, tt.want)
		}
	}
}

func TestStripHTMLInvalidEntityPassesThrough(t *testing.T) {
	out := StripHTML("AT&T and R&D")
	if out != "AT&T and R&D" {
		t.Errorf("got %q, want %q", out, "AT&T and R&D")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\n\n\n\nb", "a\n\nb"},
		{"a\n \n\t\nb", "a\n\nb"},
		{"a    b", "a b"},
		{"  a b  ", "a b"},
		{"a\nb", "a\nb"},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseWhitespaceIdempotent(t *testing.T) {
	in := "Title\n\n\n  Body   text\n \n \n\nEnd  "
	once := CollapseWhitespace(in)
	twice := CollapseWhitespace(once)
	if once != twice {
		t.Errorf("not idempotent: once=%q twice=%q", once, twice)
	}
}

func TestStripHTMLBlockTagsBreakLines(t *testing.T) {
	out := StripHTML("<h1>Clean Energy Act</h1><p>Effective 2024</p>")
	if !strings.Contains(out, "Clean Energy Act\n") {
		t.Errorf("expected line break after heading, got %q", out)
	}
}
