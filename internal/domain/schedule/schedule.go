// Package schedule turns a raw collection-schedule payload into dated
// collections and selects the ones due tomorrow.
package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"bin-reminder/internal/domain/model"
)

// DateLayout is the only date-time layout the schedule API emits.
const DateLayout = "2006-01-02T15:04:05"

var errNotString = errors.New("value is not a string")

// Stream maps a response key to the label shown in reminders.
type Stream struct {
	Key   string
	Label string
}

// Streams lists the recognised waste streams in declaration order.
var Streams = []Stream{
	{Key: "residualNextDate", Label: "Black Rubbish Bin"},
	{Key: "recyclingNextDate", Label: "Recycling (green box, food waste, cardboard)"},
	{Key: "organicNextDate", Label: "Garden Waste (green bin)"},
}

// ParseError reports a recognised key whose value is not a valid date-time.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse extracts collections for the recognised streams, sorted by date.
// Absent, null and empty values are skipped. Unknown keys are ignored.
func Parse(resp model.ScheduleResponse) ([]model.Collection, error) {
	return ParseIn(resp, time.Local)
}

// ParseIn is Parse with an explicit location for the wall-clock dates.
func ParseIn(resp model.ScheduleResponse, loc *time.Location) ([]model.Collection, error) {
	collections := make([]model.Collection, 0, len(Streams))
	for _, stream := range Streams {
		raw, ok := resp[stream.Key]
		if !ok || isNull(raw) {
			continue
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, &ParseError{Key: stream.Key, Value: string(raw), Err: errNotString}
		}
		if value == "" {
			continue
		}

		date, err := time.ParseInLocation(DateLayout, value, loc)
		if err != nil {
			return nil, &ParseError{Key: stream.Key, Value: value, Err: err}
		}
		collections = append(collections, model.Collection{Type: stream.Label, Date: date})
	}

	sort.SliceStable(collections, func(i, j int) bool {
		return collections[i].Date.Before(collections[j].Date)
	})
	return collections, nil
}

// Tomorrow returns the collections whose calendar date is the day after now,
// compared in now's location.
func Tomorrow(collections []model.Collection, now time.Time) []model.Collection {
	ty, tm, td := now.AddDate(0, 0, 1).Date()

	var due []model.Collection
	for _, c := range collections {
		y, m, d := c.Date.In(now.Location()).Date()
		if y == ty && m == tm && d == td {
			due = append(due, c)
		}
	}
	return due
}

// Upcoming returns at most n leading collections.
func Upcoming(collections []model.Collection, n int) []model.Collection {
	if n <= 0 {
		return nil
	}
	if n > len(collections) {
		n = len(collections)
	}
	return collections[:n]
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
