package conv

import "time"

// Options contains configuration threaded through every conversion. An
// Options value is immutable once handed to a converter and may be shared
// freely across goroutines.
type Options struct {
	// TimeZone is the zone applied when a temporal conversion lacks
	// explicit offset or zone information.
	TimeZone *time.Location
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		TimeZone: time.UTC,
	}
}

// Location returns the configured time zone, defaulting to UTC.
func (o Options) Location() *time.Location {
	if o.TimeZone == nil {
		return time.UTC
	}
	return o.TimeZone
}
