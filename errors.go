package lawlens

import "fmt"

// ErrUnsupportedFormat reports an upload whose declared content type and
// filename extension both fall outside the supported set.
type ErrUnsupportedFormat struct {
	ContentType string
	Ext         string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported document format: %s / .%s", e.ContentType, e.Ext)
}

// ErrUndecodableText reports bytes that no encoding in the fallback chain
// could decode.
type ErrUndecodableText struct {
	Encodings []string
}

func (e *ErrUndecodableText) Error() string {
	return fmt.Sprintf("text not decodable with any of %v", e.Encodings)
}

// ErrNoExtractableText reports a structured document that yielded no text
// under any extraction strategy.
type ErrNoExtractableText struct {
	Format string
}

func (e *ErrNoExtractableText) Error() string {
	return fmt.Sprintf("%s document yielded no extractable text", e.Format)
}

// ErrInference reports a transport, authentication, or endpoint-status
// failure on the remote inference call. Status is zero when the request
// never reached the endpoint. Body is truncated before being stored here.
type ErrInference struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *ErrInference) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("inference endpoint %s: http %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("inference endpoint %s: %s", e.Endpoint, e.Message)
}
