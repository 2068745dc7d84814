// Package writers turns barcode calls into serialized outputs.
//
// Writers own all presentation knowledge (CSV/JSON/JSONL/XLSX); the scorer
// stays domain-only and the pipeline stays orchestration-only. JSON and
// JSONL go through pkg/api (v1) for a stable wire format.
package writers
