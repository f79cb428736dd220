package datedim

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// ErrInvalidRange is returned when the configured start date falls after
// the end date.
var ErrInvalidRange = errors.New("start date is after end date")

// InputDateLayout is the accepted CLI date format, M/D/YYYY.
const InputDateLayout = "1/2/2006"

// Default range bounds, exposed so callers and tests can override them
// explicitly rather than relying on hidden constants.
var (
	DefaultStart = time.Date(1850, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2050, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// ParseDate parses an M/D/YYYY date argument into a midnight-UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(InputDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected M/D/YYYY): %w", s, err)
	}
	return midnightUTC(t), nil
}

type Config struct {
	Start time.Time
	End   time.Time
}

func (cfg *Config) Validate() error {
	if cfg.Start.IsZero() {
		return errors.New("start date is required")
	}
	if cfg.End.IsZero() {
		return errors.New("end date is required")
	}
	if cfg.Start.After(cfg.End) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			cfg.Start.Format("2006-01-02"), cfg.End.Format("2006-01-02"))
	}
	return nil
}

// Builder enumerates the date dimension over an inclusive date range,
// one record per calendar day in ascending order.
type Builder struct {
	log      *slog.Logger
	start    time.Time
	end      time.Time
	holidays *cal.Calendar
}

func NewBuilder(log *slog.Logger, cfg Config) (*Builder, error) {
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		log:      log,
		start:    midnightUTC(cfg.Start),
		end:      midnightUTC(cfg.End),
		holidays: newUSHolidayCalendar(),
	}, nil
}

// NumRows is the inclusive day count of the configured range.
func (b *Builder) NumRows() int {
	return int(b.end.Sub(b.start)/(24*time.Hour)) + 1
}

// Dates yields each calendar date of the range in ascending order. Each
// call starts a fresh pass from the start date.
func (b *Builder) Dates() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := b.start; !d.After(b.end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Rows yields one formatted CSV row per date, in Schema column order.
// Rows are materialized one at a time; nothing is held across steps.
func (b *Builder) Rows() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for d := range b.Dates() {
			if !yield(NewRecord(d, b.holidays).Row()) {
				return
			}
		}
	}
}

func newUSHolidayCalendar() *cal.Calendar {
	c := &cal.Calendar{Name: "us-federal", Cacheable: true}
	c.AddHoliday(us.Holidays...)
	return c
}
