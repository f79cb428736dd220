package timedim

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strconv"

	"github.com/datakiln/dimgen/pkg/dimension"
)

// Schema is the dim_time column layout. Column order here is the CSV
// column order.
var Schema = dimension.MustSchema("time", []string{
	"time_key:UInt16",
	"military_hour:UInt8",
	"civilian_hour:UInt8",
	"minute:UInt8",
	"am_pm:String",
	"military_time:String",
	"civilian_time:String",
	"time_class:String",
})

// MinutesPerDay is the fixed row count of the time dimension.
const MinutesPerDay = 24 * 60

// Record is one minute of the 24-hour cycle. The dimension is
// timezone-agnostic; records carry no date component.
type Record struct {
	hour   int
	minute int
}

func NewRecord(hour, minute int) Record {
	return Record{hour: hour, minute: minute}
}

// TimeKey is the HHMM surrogate key, strictly increasing through the day.
func (r Record) TimeKey() int {
	return r.hour*100 + r.minute
}

func (r Record) MilitaryHour() int {
	return r.hour
}

// CivilianHour is the 12-hour clock hour, 1 through 12.
func (r Record) CivilianHour() int {
	h := r.hour % 12
	if h == 0 {
		h = 12
	}
	return h
}

func (r Record) Minute() int {
	return r.minute
}

func (r Record) AmPm() string {
	if r.hour < 12 {
		return "AM"
	}
	return "PM"
}

// MilitaryTime is HH:MM on the 24-hour clock.
func (r Record) MilitaryTime() string {
	return fmt.Sprintf("%02d:%02d", r.hour, r.minute)
}

// CivilianTime is hh:MM AM/PM on the 12-hour clock, zero-padded.
func (r Record) CivilianTime() string {
	return fmt.Sprintf("%02d:%02d %s", r.CivilianHour(), r.minute, r.AmPm())
}

// TimeClass buckets the hour into Night, Morning, Noon, Afternoon, or
// Evening.
func (r Record) TimeClass() string {
	switch {
	case r.hour < 6:
		return "Night"
	case r.hour < 12:
		return "Morning"
	case r.hour < 13:
		return "Noon"
	case r.hour < 17:
		return "Afternoon"
	case r.hour < 20:
		return "Evening"
	default:
		return "Night"
	}
}

// Row returns the record's CSV field values in Schema column order.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.TimeKey()),
		strconv.Itoa(r.MilitaryHour()),
		strconv.Itoa(r.CivilianHour()),
		strconv.Itoa(r.Minute()),
		r.AmPm(),
		r.MilitaryTime(),
		r.CivilianTime(),
		r.TimeClass(),
	}
}

// Builder enumerates the time dimension: one record per minute of a
// generic 24-hour cycle, 00:00 through 23:59 in order. It takes no
// parameters and is deterministic across invocations.
type Builder struct {
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) (*Builder, error) {
	if log == nil {
		return nil, errors.New("logger is required")
	}
	return &Builder{log: log}, nil
}

// Records yields the 1440 minute records in ascending order.
func (b *Builder) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for hour := 0; hour < 24; hour++ {
			for minute := 0; minute < 60; minute++ {
				if !yield(NewRecord(hour, minute)) {
					return
				}
			}
		}
	}
}

// Rows yields one formatted CSV row per minute, in Schema column order.
func (b *Builder) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for r := range b.Records() {
			if !yield(r.Row()) {
				return
			}
		}
	}
}
