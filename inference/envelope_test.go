package inference

import "testing"

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"array", `[{"generated_text": "hello"}]`, "hello"},
		{"array first element wins", `[{"generated_text": "a"}, {"generated_text": "b"}]`, "a"},
		{"array missing field", `[{"other": 1}]`, ""},
		{"empty array", `[]`, ""},
		{"object", `{"generated_text": "hello"}`, "hello"},
		{"object missing field", `{"outputs": "x"}`, `{"outputs": "x"}`},
		{"bare string", `"hello"`, "hello"},
		{"number", `42`, "42"},
		{"invalid json", `not json at all`, "not json at all"},
	}
	for _, tt := range tests {
		if got := UnwrapEnvelope([]byte(tt.body)); got != tt.want {
			t.Errorf("%s: UnwrapEnvelope(%q) = %q, want %q", tt.name, tt.body, got, tt.want)
		}
	}
}
