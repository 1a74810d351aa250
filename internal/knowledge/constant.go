package knowledge

// Retrieval tuning.
const (
	// MaxQA is the most Q&A pairs returned for one query.
	MaxQA = 2
	// MinQueryWordLen is the length a query word must exceed to be scored.
	MinQueryWordLen = 3
)

// Output formatting.
const (
	QAHeader   = "Common questions:"
	QAPrefix   = "Q: "
	APrefix    = "A: "
	TipsSep    = "\n"
	SectionSep = "\n\n"
)
