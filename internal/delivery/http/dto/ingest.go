package dto

// IngestRequest carries the three payloads verbatim; shape detection happens
// in the domain decoders, not at bind time. Replace is a pointer so an
// omitted flag defaults to true.
type IngestRequest struct {
	Matrix      any   `json:"matrix"`
	Standards   any   `json:"standards"`
	Definitions any   `json:"definitions"`
	Replace     *bool `json:"replace"`
}

type SkippedCounts struct {
	Matrix      int `json:"matrix"`
	Standards   int `json:"standards"`
	Definitions int `json:"definitions"`
}

type IngestResponse struct {
	Status  string        `json:"status"`
	Skipped SkippedCounts `json:"skipped"`
}
