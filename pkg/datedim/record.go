package datedim

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rickar/cal/v2"
)

var quarterNames = map[int]string{1: "First", 2: "Second", 3: "Third", 4: "Fourth"}

// Record is one row of the date dimension. All attributes are derived
// from the calendar date; nothing depends on any other row.
type Record struct {
	date     time.Time
	holidays *cal.Calendar
}

func NewRecord(date time.Time, holidays *cal.Calendar) Record {
	return Record{date: midnightUTC(date), holidays: holidays}
}

// DateKey is the YYYYMMDD surrogate key. It is strictly increasing with
// the calendar date.
func (r Record) DateKey() int {
	return dateKey(r.date)
}

// Date is the natural date value in YYYY-MM-DD form.
func (r Record) Date() string {
	return r.date.Format("2006-01-02")
}

func (r Record) Year() int {
	return r.date.Year()
}

// Quarter is the calendar quarter, 1 through 4.
func (r Record) Quarter() int {
	return (int(r.date.Month())-1)/3 + 1
}

func (r Record) QuarterName() string {
	return quarterNames[r.Quarter()]
}

func (r Record) QuarterShortName() string {
	return fmt.Sprintf("Q%d", r.Quarter())
}

// YearAndQuarter is YYYY/Qn.
func (r Record) YearAndQuarter() string {
	return fmt.Sprintf("%d/%s", r.Year(), r.QuarterShortName())
}

func (r Record) MonthNumber() int {
	return int(r.date.Month())
}

func (r Record) MonthName() string {
	return r.date.Month().String()
}

func (r Record) MonthAbbrev() string {
	return r.date.Format("Jan")
}

// YearAndMonth is YYYY/MM.
func (r Record) YearAndMonth() string {
	return r.date.Format("2006/01")
}

// YearAndMonthAbbrev is YYYY/Mon, e.g. 2024/Oct.
func (r Record) YearAndMonthAbbrev() string {
	return fmt.Sprintf("%d/%s", r.Year(), r.MonthAbbrev())
}

// MonthEndFlag reports whether the date is the last day of its month.
func (r Record) MonthEndFlag() bool {
	return r.date.AddDate(0, 0, 1).Day() == 1
}

// WeekNumInYear is the US-convention (Sunday-start) week number of the
// year, strftime %U semantics with week 0 clamped to 1.
func (r Record) WeekNumInYear() int {
	yday := r.date.YearDay() - 1
	week := (yday + 7 - int(r.date.Weekday())) / 7
	if week < 1 {
		week = 1
	}
	return week
}

// WeekNumInMonth is the Sunday-start week number within the month,
// starting at 1 for the week containing the 1st.
func (r Record) WeekNumInMonth() int {
	firstOfMonth := time.Date(r.date.Year(), r.date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return (r.date.Day()+int(firstOfMonth.Weekday())-1)/7 + 1
}

// WeekBeginDate is the Sunday of the date's week, YYYY-MM-DD.
func (r Record) WeekBeginDate() string {
	return r.weekBegin().Format("2006-01-02")
}

func (r Record) WeekBeginDateKey() int {
	return dateKey(r.weekBegin())
}

func (r Record) weekBegin() time.Time {
	return r.date.AddDate(0, 0, -int(r.date.Weekday()))
}

func (r Record) DayOfMonth() int {
	return r.date.Day()
}

// DayOfWeek numbers the days 1 (Sunday) through 7 (Saturday).
func (r Record) DayOfWeek() int {
	return int(r.date.Weekday()) + 1
}

func (r Record) DayOfYear() int {
	return r.date.YearDay()
}

func (r Record) DayName() string {
	return r.date.Weekday().String()
}

func (r Record) DayNameAbbrev() string {
	return r.date.Format("Mon")
}

func (r Record) IsWeekday() bool {
	return !r.IsWeekend()
}

func (r Record) IsWeekend() bool {
	wd := r.date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether the date is a US federal holiday (actual
// date, not the observed substitute).
func (r Record) IsHoliday() bool {
	if r.holidays == nil {
		return false
	}
	actual, _, _ := r.holidays.IsHoliday(r.date)
	return actual
}

// HolidayName is the holiday name, or empty when the date is not one.
func (r Record) HolidayName() string {
	if r.holidays == nil {
		return ""
	}
	actual, _, h := r.holidays.IsHoliday(r.date)
	if !actual || h == nil {
		return ""
	}
	return h.Name
}

// SameDayPreviousYear is this date one year back, YYYY-MM-DD. A leap day
// maps to Feb 28 of the previous year.
func (r Record) SameDayPreviousYear() string {
	return r.sameDayPreviousYear().Format("2006-01-02")
}

func (r Record) SameDayPreviousYearKey() int {
	return dateKey(r.sameDayPreviousYear())
}

func (r Record) sameDayPreviousYear() time.Time {
	y, m, d := r.date.Date()
	if m == time.February && d == 29 {
		d = 28
	}
	return time.Date(y-1, m, d, 0, 0, 0, 0, time.UTC)
}

// Season buckets the day of year into Spring, Summer, Fall, or Winter.
func (r Record) Season() string {
	switch yday := r.DayOfYear(); {
	case yday >= 80 && yday < 172:
		return "Spring"
	case yday >= 172 && yday < 264:
		return "Summer"
	case yday >= 264 && yday < 355:
		return "Fall"
	default:
		return "Winter"
	}
}

// Row returns the record's CSV field values in Schema column order.
func (r Record) Row() []string {
	return []string{
		strconv.Itoa(r.DateKey()),
		r.Date(),
		strconv.Itoa(r.Year()),
		strconv.Itoa(r.Quarter()),
		r.QuarterName(),
		r.QuarterShortName(),
		r.YearAndQuarter(),
		strconv.Itoa(r.MonthNumber()),
		r.MonthName(),
		r.MonthAbbrev(),
		r.YearAndMonth(),
		r.YearAndMonthAbbrev(),
		strconv.FormatBool(r.MonthEndFlag()),
		strconv.Itoa(r.WeekNumInYear()),
		strconv.Itoa(r.WeekNumInMonth()),
		r.WeekBeginDate(),
		strconv.Itoa(r.WeekBeginDateKey()),
		strconv.Itoa(r.DayOfMonth()),
		strconv.Itoa(r.DayOfWeek()),
		strconv.Itoa(r.DayOfYear()),
		r.DayName(),
		r.DayNameAbbrev(),
		strconv.FormatBool(r.IsWeekday()),
		strconv.FormatBool(r.IsWeekend()),
		strconv.FormatBool(r.IsHoliday()),
		r.HolidayName(),
		r.SameDayPreviousYear(),
		strconv.Itoa(r.SameDayPreviousYearKey()),
		r.Season(),
	}
}

func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
