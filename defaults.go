package jodd

// Process-wide defaults, read by the convenience body and form setters
// at call time. Callers that need different values should set them once
// during startup, before any message is built.
var (
	// DefaultFormEncoding is the encoding for form parameters when the
	// message defines no charset.
	DefaultFormEncoding = "UTF-8"

	// DefaultBodyMediaType is the media type used by SetBodyText when
	// none is given.
	DefaultBodyMediaType = "text/html"

	// DefaultBodyEncoding is the charset used by SetBodyText when none
	// is given.
	DefaultBodyEncoding = "UTF-8"
)
