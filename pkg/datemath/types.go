package datemath

// DateLayout is the calendar date format used by task markers.
const DateLayout = "2006-01-02"

// Placeholder delimiters for relative dates inside condition literals.
const (
	PlaceholderOpen  = "{{"
	PlaceholderClose = "}}"
)
