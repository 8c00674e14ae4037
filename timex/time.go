package timex

import (
	"errors"
	"time"
)

var timeFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"20060102",
	"20060102150405",
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC822,
}

const timeLayout = "2006-01-02 15:04:05"

// Parse parses a string against the known layouts, in local time.
func Parse(str string) (t time.Time, err error) {
	location := time.Now().Location()
	for _, format := range timeFormats {
		t, err = time.ParseInLocation(format, str, location)
		if err == nil {
			return
		}
	}
	err = errors.New("can't parse string as time: " + str)
	return
}

// Format format time to string
func Format(t *time.Time, layout ...string) *string {
	if t == nil {
		return nil
	}
	l := timeLayout
	if len(layout) > 0 && layout[0] != "" {
		l = layout[0]
	}
	s := t.Format(l)
	return &s
}

// UnixMilliToTime timestamp to time.Time
func UnixMilliToTime(i *int64) *time.Time {
	if i == nil {
		return nil
	}
	t := time.UnixMilli(*i)
	return &t
}

// UnixSecToTime unix sec to time
func UnixSecToTime(sec int64) time.Time {
	return time.Unix(sec, 0)
}
