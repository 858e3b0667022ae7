package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for analysis spans and metrics.
var (
	AttrFilename    = attribute.Key("document.filename")
	AttrContentType = attribute.Key("document.content_type")
	AttrChars       = attribute.Key("document.chars")
	AttrWords       = attribute.Key("document.words")

	AttrLawID   = attribute.Key("law.id")
	AttrStatus  = attribute.Key("law.status")
	AttrOutcome = attribute.Key("analysis.outcome")

	AttrEndpoint       = attribute.Key("inference.endpoint")
	AttrGeneratedChars = attribute.Key("inference.generated_chars")
)
