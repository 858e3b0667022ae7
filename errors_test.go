package lawlens

import "testing"

func TestErrUnsupportedFormatError(t *testing.T) {
	e := &ErrUnsupportedFormat{ContentType: "image/png", Ext: "png"}
	want := "unsupported document format: image/png / .png"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrUndecodableTextError(t *testing.T) {
	e := &ErrUndecodableText{Encodings: []string{"utf-8", "latin-1"}}
	want := "text not decodable with any of [utf-8 latin-1]"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrNoExtractableTextError(t *testing.T) {
	e := &ErrNoExtractableText{Format: "pdf"}
	want := "pdf document yielded no extractable text"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrInferenceError(t *testing.T) {
	tests := []struct {
		name string
		err  *ErrInference
		want string
	}{
		{
			"with status",
			&ErrInference{Endpoint: "https://x/invoke", Status: 503, Message: "model loading"},
			"inference endpoint https://x/invoke: http 503: model loading",
		},
		{
			"transport failure",
			&ErrInference{Endpoint: "https://x/invoke", Message: "connection refused"},
			"inference endpoint https://x/invoke: connection refused",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestErrorTypesImplementError(t *testing.T) {
	var _ error = (*ErrUnsupportedFormat)(nil)
	var _ error = (*ErrUndecodableText)(nil)
	var _ error = (*ErrNoExtractableText)(nil)
	var _ error = (*ErrInference)(nil)
}
