package mp3tag

// Option configures behavior when viewing tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := mp3tag.View("song.mp3",
//	    mp3tag.WithStrictParsing(),
//	)
type Option func(*viewOptions)

// viewOptions holds configuration for reading tags.
type viewOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *viewOptions {
	return &viewOptions{
		strictParsing:  false,
		ignoreWarnings: false,
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, View keeps going when a comment frame cannot be decoded or a
// value is longer than its field allows, returning warnings alongside the
// decoded tags.
//
// With strict parsing enabled, an undecodable comment frame fails with
// *CorruptedFrameError and any other warning fails the view.
//
// Example:
//
//	file, err := mp3tag.View("song.mp3", mp3tag.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *viewOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues are collected in
// File.Warnings. This option discards them.
//
// Example:
//
//	file, err := mp3tag.View("song.mp3", mp3tag.WithIgnoreWarnings())
//	// file.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *viewOptions) {
		o.ignoreWarnings = true
	}
}
