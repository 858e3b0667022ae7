package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	lawlens "github.com/lawlens/lawlens"
)

// fallbackEncodings are tried in order when content is not valid UTF-8.
var fallbackEncodings = []struct {
	name string
	cm   *charmap.Charmap
}{
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

// DecodeText decodes raw bytes as UTF-8, then walks the legacy encoding
// fallback chain. It fails with *lawlens.ErrUndecodableText only when every
// encoding rejects the input.
func DecodeText(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}
	for _, enc := range fallbackEncodings {
		decoded, err := enc.cm.NewDecoder().Bytes(content)
		if err != nil {
			continue
		}
		return string(decoded), nil
	}
	names := make([]string, 0, len(fallbackEncodings)+1)
	names = append(names, "utf-8")
	for _, enc := range fallbackEncodings {
		names = append(names, enc.name)
	}
	return "", &lawlens.ErrUndecodableText{Encodings: names}
}

// PlainTextExtractor decodes bytes through the encoding fallback chain.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(content []byte) (string, error) {
	text, err := DecodeText(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
