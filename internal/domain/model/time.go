package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// The backend emits naive timestamps that are known to be UTC
// ("2006-01-02T15:04:05.999999"). Parsing a zoneless layout yields UTC,
// which is equivalent to appending a "Z" designator on the wire string.
// Zoned strings are accepted too in case the backend ever starts sending
// them.
var wireLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// UTCTime is a time.Time that round-trips the backend's wire format.
type UTCTime struct {
	time.Time
}

func NewUTCTime(t time.Time) UTCTime {
	return UTCTime{t.UTC()}
}

func (t *UTCTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range wireLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}
