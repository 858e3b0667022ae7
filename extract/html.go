package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HTMLExtractor strips markup, script/style subtrees, and decodes entities.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(content []byte) (string, error) {
	text, err := DecodeText(content)
	if err != nil {
		return "", err
	}
	return StripHTML(text), nil
}

// StripHTML removes HTML tags, drops script and style content entirely,
// decodes named and numeric entities, and normalizes whitespace: runs of
// blank lines collapse to a single blank line, runs of spaces collapse to
// one space, and the result is trimmed. Script and style contents must never
// appear in the output.
func StripHTML(content string) string {
	var result strings.Builder
	result.Grow(len(content))

	inTag := false
	inScript := false
	inStyle := false
	var tagName strings.Builder
	collectingTagName := false

	i := 0
	for i < len(content) {
		r, size := utf8.DecodeRuneInString(content[i:])

		if r == '<' {
			inTag = true
			tagName.Reset()
			collectingTagName = true
			i += size
			continue
		}

		if inTag {
			if collectingTagName {
				if unicode.IsSpace(r) || r == '>' || (r == '/' && tagName.Len() > 0) {
					collectingTagName = false
					lower := strings.ToLower(tagName.String())
					switch lower {
					case "script":
						inScript = true
					case "/script":
						inScript = false
					case "style":
						inStyle = true
					case "/style":
						inStyle = false
					}
					if isBlockTag(lower) {
						result.WriteByte('\n')
					}
				} else {
					tagName.WriteRune(r)
				}
			}
			if r == '>' {
				inTag = false
			}
			i += size
			continue
		}

		if inScript || inStyle {
			i += size
			continue
		}

		if r == '&' {
			if decoded, skip := decodeEntity(content, i); skip > 0 {
				result.WriteString(decoded)
				i += skip
				continue
			}
		}

		result.WriteRune(r)
		i += size
	}

	return CollapseWhitespace(result.String())
}

func isBlockTag(tag string) bool {
	tag = strings.TrimPrefix(tag, "/")
	switch tag {
	case "p", "div", "br", "hr", "h1", "h2", "h3", "h4", "h5", "h6",
		"li", "ul", "ol", "table", "tr", "blockquote", "pre",
		"section", "article", "header", "footer", "nav", "main", "title":
		return true
	}
	return false
}

// decodeEntity decodes the entity reference starting at content[start] and
// returns the decoded text plus the number of bytes consumed. A zero skip
// means no valid entity starts there and the '&' should pass through.
func decodeEntity(content string, start int) (string, int) {
	if start >= len(content) || content[start] != '&' {
		return "", 0
	}
	maxLen := 12
	end := start + maxLen
	if end > len(content) {
		end = len(content)
	}
	for j := start + 1; j < end; j++ {
		ch := content[j]
		if ch == ';' {
			entity := content[start : j+1]
			consumed := j - start + 1
			if decoded, ok := namedEntities[entity]; ok {
				return decoded, consumed
			}
			// Numeric entities: &#233; or &#xE9;
			if len(entity) > 3 && entity[1] == '#' {
				inner := entity[2 : len(entity)-1]
				var codepoint int64
				var err error
				if inner[0] == 'x' || inner[0] == 'X' {
					codepoint, err = strconv.ParseInt(inner[1:], 16, 32)
				} else {
					codepoint, err = strconv.ParseInt(inner, 10, 32)
				}
				if err == nil && codepoint > 0 && codepoint <= 0x10FFFF {
					return string(rune(codepoint)), consumed
				}
			}
			return "", 0
		}
		// Only ASCII letters, digits, and '#' are valid in entity references.
		if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '#') {
			return "", 0
		}
	}
	return "", 0
}

// namedEntities covers the references that show up in legal publications:
// structural characters, currency symbols, and the accented letters common
// in EU member-state names and officials.
var namedEntities = map[string]string{
	"&amp;":    "&",
	"&lt;":     "<",
	"&gt;":     ">",
	"&quot;":   "\"",
	"&#39;":    "'",
	"&apos;":   "'",
	"&nbsp;":   " ",
	"&mdash;":  "—",
	"&ndash;":  "–",
	"&copy;":   "©",
	"&reg;":    "®",
	"&sect;":   "§",
	"&para;":   "¶",
	"&hellip;": "…",
	"&laquo;":  "«",
	"&raquo;":  "»",
	"&bull;":   "•",
	"&middot;": "·",
	"&deg;":    "°",
	"&euro;":   "€",
	"&pound;":  "£",
	"&yen;":    "¥",
	"&cent;":   "¢",
	"&dollar;": "$",
	"&aacute;": "á",
	"&agrave;": "à",
	"&acirc;":  "â",
	"&auml;":   "ä",
	"&ccedil;": "ç",
	"&eacute;": "é",
	"&egrave;": "è",
	"&ecirc;":  "ê",
	"&iacute;": "í",
	"&ntilde;": "ñ",
	"&oacute;": "ó",
	"&ouml;":   "ö",
	"&szlig;":  "ß",
	"&uacute;": "ú",
	"&uuml;":   "ü",
}

var (
	blankLineRun = regexp.MustCompile(`(\n[ \t\r]*)+\n`)
	spaceRun     = regexp.MustCompile(` {2,}`)
)

// CollapseWhitespace reduces any run of blank lines to exactly one blank
// line, runs of spaces to a single space, and trims the ends. Applying it
// twice yields the same output as applying it once.
func CollapseWhitespace(text string) string {
	text = blankLineRun.ReplaceAllString(text, "\n\n")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
