package model

import (
	"encoding/json"
	"time"
)

// ScheduleResponse is the raw collection-schedule payload keyed by waste stream.
type ScheduleResponse map[string]json.RawMessage

// Collection is a single upcoming collection for one waste stream.
type Collection struct {
	Type string
	Date time.Time
}
