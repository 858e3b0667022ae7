package lawlens

import "testing"

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()
	if len(id1) != 36 {
		t.Errorf("expected 36 chars (UUIDv7), got %d: %s", len(id1), id1)
	}
	if id1 == id2 {
		t.Error("two IDs should be unique")
	}
	if id1 >= id2 {
		t.Error("sequential UUIDv7s should be time-ordered")
	}
}

func TestDeriveLawID(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"gdpr.pdf", "LAW-gdpr.pdf"},
		{"a-very-long-directive-filename.html", "LAW-a-very-long-directi"},
		{"", "LAW-"},
	}
	for _, tt := range tests {
		if got := DeriveLawID(tt.filename); got != tt.want {
			t.Errorf("DeriveLawID(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestDeriveLawIDRuneSafe(t *testing.T) {
	// The 20-char cap counts runes, not bytes.
	got := DeriveLawID("éééééééééééééééééééééé.txt")
	if got != "LAW-éééééééééééééééééééé" {
		t.Errorf("got %q", got)
	}
}
