package recol

// Item represents one element of the column spec: either a literal
// string emitted verbatim or a 1-based reference into the line's fields.
type Item struct {
	Literal bool
	Text    string // literal text, used when Literal is true
	Index   int    // column number, used when Literal is false
}

// Config holds the resolved run configuration. It is built once at
// startup and never mutated afterwards.
type Config struct {
	Spec        []Item
	InputDelim  string
	OutputDelim string

	// SplitWhitespace selects the default tokenization used when no
	// input delimiter was given: trim the line, then split on runs of
	// whitespace.
	SplitWhitespace bool
}
