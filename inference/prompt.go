package inference

import "strings"

// maxPromptChars caps how much document text goes into the prompt. Endpoints
// reject oversized inputs; everything past the cap is replaced by the marker.
const maxPromptChars = 15000

const truncationMarker = "\n\n[... text truncated due to length ...]"

const promptHeader = `You are an expert legal analyst specializing in EU regulations and directives.
Analyze the following legal directive and extract structured information.

DIRECTIVE DOCUMENT:
Filename: `

const promptTask = `

TASK:
Extract and provide the following information in a structured JSON format:

1. **lawId**: A unique identifier (e.g., "EU-2024-1234" or extract from document)
2. **title**: Full title of the directive/regulation
3. **jurisdiction**: The jurisdiction (e.g., "EU", "US-Federal", country code)
4. **sector**: Primary affected sector (e.g., "Technology", "Finance", "Healthcare", "Energy", "Manufacturing")
5. **impactScore**: A score from 1-10 indicating regulatory impact severity
6. **complianceCost**: Estimated compliance cost category ("Low", "Medium", "High", "Very High")
7. **affectedStocks**: Array of stock ticker symbols that would be affected (e.g., ["AAPL", "GOOGL", "MSFT"])
8. **summary**: A concise 2-3 sentence summary of the directive
9. **keyProvisions**: Array of key provisions or requirements (3-5 main points)
10. **effectiveDate**: When the directive takes effect (YYYY-MM-DD format if available)
11. **complianceDeadline**: Compliance deadline (YYYY-MM-DD format if available)

OUTPUT FORMAT:
Provide your response as a valid JSON object. Do not include any other text, just the JSON.

Example format:
{
  "lawId": "EU-2024-1234",
  "title": "Digital Markets Act Implementation Directive",
  "jurisdiction": "EU",
  "sector": "Technology",
  "impactScore": 8,
  "complianceCost": "High",
  "affectedStocks": ["AAPL", "GOOGL", "META", "AMZN"],
  "summary": "This directive implements the Digital Markets Act requirements for large tech platforms. It establishes new obligations for gatekeepers and creates enforcement mechanisms.",
  "keyProvisions": [
    "Platform interoperability requirements",
    "Data portability obligations",
    "Prohibition of self-preferencing",
    "Enhanced transparency reporting"
  ],
  "effectiveDate": "2024-05-01",
  "complianceDeadline": "2025-03-01"
}

Now analyze the provided directive and return the JSON:`

// BuildPrompt assembles the analysis prompt for one document. The document
// text is truncated to the excerpt budget on a rune boundary so multi-byte
// characters never get split.
func BuildPrompt(documentText, filename string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString(filename)
	b.WriteString("\n\nTEXT:\n")
	b.WriteString(Truncate(documentText, maxPromptChars))
	b.WriteString(promptTask)
	return b.String()
}

// Truncate cuts s to at most limit runes and appends the truncation marker.
// Strings within the limit are returned unchanged.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncationMarker
}
