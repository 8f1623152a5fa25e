package models

// AnalysisResult is the decoded response of the extraction service. Every field
// is optional; unknown fields are dropped during decoding.
type AnalysisResult struct {
	Text        *string  `json:"text,omitempty" yaml:"text,omitempty"`
	Sentiment   *string  `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	SourceType  *string  `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	PageCount   *int     `json:"pageCount,omitempty" yaml:"pageCount,omitempty"`
	DurationMs  *int64   `json:"durationMs,omitempty" yaml:"durationMs,omitempty"`
}

// Phase is the request lifecycle position.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// RequestState is the orchestrator's single lifecycle value. Result is non-nil
// only in the Succeeded phase.
type RequestState struct {
	Phase    Phase
	FileName string
	Result   *AnalysisResult
}

// Loading reports whether the loading indicator should be shown.
func (s RequestState) Loading() bool {
	return s.Phase == Submitting
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s RequestState) Clone() RequestState {
	out := s
	if s.Result != nil {
		r := s.Result.Clone()
		out.Result = &r
	}
	return out
}

// Clone copies the result including its optional fields.
func (r AnalysisResult) Clone() AnalysisResult {
	out := AnalysisResult{
		Text:       cloneString(r.Text),
		Sentiment:  cloneString(r.Sentiment),
		SourceType: cloneString(r.SourceType),
	}
	if r.Suggestions != nil {
		out.Suggestions = append([]string(nil), r.Suggestions...)
	}
	if r.PageCount != nil {
		v := *r.PageCount
		out.PageCount = &v
	}
	if r.DurationMs != nil {
		v := *r.DurationMs
		out.DurationMs = &v
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
