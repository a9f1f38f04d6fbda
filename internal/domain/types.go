package domain

// Segment is one time-coded line of a video transcript.
type Segment struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// Chunk is a contiguous window of segments treated as one retrieval unit.
// Text is the space-joined concatenation of the segment texts in original
// order; TimeRange spans the first segment's time to the last segment's.
type Chunk struct {
	Segments  []Segment
	Text      string
	TimeRange string
}

// Document is an indexed chunk, post-translation. Documents are owned by
// the session that indexed them and are superseded wholesale on re-index.
type Document struct {
	Content   string
	TimeRange string
}

// Intent classifies a question as a global summary or a detail request.
type Intent int

const (
	IntentDetail Intent = iota
	IntentSummary
)

func (i Intent) String() string {
	if i == IntentSummary {
		return "summary"
	}
	return "detail"
}

// Plan is the outcome of query rewriting and intent classification.
type Plan struct {
	SearchQuery string
	Intent      Intent
}

// AnswerResult is a synthesized answer with its cited time ranges.
// Sources is empty exactly when the model reported that the answer is
// not supported by the indexed transcript.
type AnswerResult struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// Chunker splits a transcript into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(segments []Segment) []Chunk
}
