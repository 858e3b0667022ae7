// Package lawlens analyzes legal and regulatory documents.
//
// It turns uploaded document bytes (HTML, PDF, DOCX, plain text) into a
// normalized, fully populated law record by extracting the document's text,
// submitting it to a remote text-generation endpoint, and reconciling the
// model's free-form output against a fixed output schema.
//
// # Pipeline
//
// The analyze.Analyzer runs the full pipeline:
//
//	client := inference.NewClient(inference.Config{Endpoint: endpoint, Token: token})
//	an := analyze.NewAnalyzer(client)
//	res, err := an.Analyze(ctx, content, contentType, filename)
//
// Extraction failures (unsupported format, undecodable bytes, no extractable
// text) abort the analysis. Inference failures do not: the analyzer degrades
// to keyword heuristics and returns a "Pending Review" record. A reachable
// model whose output cannot be parsed yields a "Pending Analysis" record with
// the raw output preserved for human review. A caller always gets a valid
// [LawRecord] unless the document itself is unusable.
//
// # Packages
//
//   - extract — format dispatch and per-format text extraction
//   - inference — prompt construction and the remote endpoint client
//   - normalize — JSON recovery, defaulting, schema transform, heuristics
//   - analyze — the orchestrator tying the above together
//   - observer — optional OpenTelemetry instrumentation
package lawlens
