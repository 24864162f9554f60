package datecodec

import (
	"errors"
	"time"
)

const (
	// DateLayout is the layout accepted at the API boundary (YYYY-MM-DD)
	DateLayout = "2006-01-02"
	// DisplayLayout is the layout used when rendering stored dates (YYYY/MM/DD)
	DisplayLayout = "2006/01/02"
)

// ErrInvalidDateFormat is returned when a date string does not match the layout
var ErrInvalidDateFormat = errors.New("invalid date format")

// Codec converts between human dates and epoch seconds in a fixed location
type Codec struct {
	loc *time.Location
}

// New creates a Codec. A nil location means time.Local.
func New(loc *time.Location) *Codec {
	if loc == nil {
		loc = time.Local
	}
	return &Codec{loc: loc}
}

// Location returns the location dates are interpreted in
func (c *Codec) Location() *time.Location {
	return c.loc
}

// ToEpoch parses text against layout and returns whole epoch seconds.
// An empty layout falls back to DateLayout.
func (c *Codec) ToEpoch(text, layout string) (int64, error) {
	if layout == "" {
		layout = DateLayout
	}
	t, err := time.ParseInLocation(layout, text, c.loc)
	if err != nil {
		return 0, ErrInvalidDateFormat
	}
	return t.Unix(), nil
}

// FromEpoch renders epoch seconds as YYYY/MM/DD
func (c *Codec) FromEpoch(sec int64) string {
	return time.Unix(sec, 0).In(c.loc).Format(DisplayLayout)
}
