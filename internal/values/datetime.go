package values

import (
	"fmt"
	"time"
)

// DateTime pairs a Date with a Time. Grounded on
// original_source/timoninterpreter/tokens.py's DateTimeValue, whose
// add_years_and_months / get_years_and_months_diff /
// get_weeks_days_hours_minutes_seconds_diff static helpers are reproduced
// below verbatim in algorithm, adapted to Go's type system.
type DateTime struct {
	Date Date
	Time Time
}

func (DateTime) Kind() Kind      { return KindDateTime }
func (dt DateTime) Truthy() bool { return true }
func (dt DateTime) String() string {
	return dt.Date.String() + "~" + dt.Time.String()
}

func (dt DateTime) Less(o DateTime) bool {
	if !dt.Date.Equal(o.Date) {
		return dt.Date.Less(o.Date)
	}
	return dt.Time.Less(o.Time)
}

func (dt DateTime) Equal(o DateTime) bool {
	return dt.Date.Equal(o.Date) && dt.Time.Equal(o.Time)
}

func (dt DateTime) toTime() time.Time {
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, 0, time.UTC)
}

func fromTime(t time.Time) DateTime {
	return DateTime{
		Date: Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()},
		Time: Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
	}
}

// addYearsAndMonths applies years and months to source, in that order,
// clamping the day-of-month to the target month's last day after each step
// (so 29 Feb falls back to 28 Feb when the year shift lands on a non-leap
// year).
func addYearsAndMonths(source Date, years, months int64) Date {
	shiftedYear := int64(source.Year) + years
	day := minInt(source.Day, daysInMonth(int(shiftedYear), source.Month))

	newMonth0 := int64(source.Month-1) + months
	newYear := shiftedYear + floorDiv(newMonth0, 12)
	newMonth := int(floorMod(newMonth0, 12)) + 1
	newDay := minInt(day, daysInMonth(int(newYear), newMonth))
	return Date{Day: newDay, Month: newMonth, Year: int(newYear)}
}

// getYearsAndMonthsDiff returns the whole (years, months) span from right to
// left, such that shifting right forward by that span lands on or before
// left with less than one further month remaining.
func getYearsAndMonthsDiff(left, right Date) (years, months int64) {
	t := Date{Day: minInt(right.Day, daysInMonth(left.Year, right.Month)), Month: right.Month, Year: left.Year}
	yearsDiff := int64(left.Year - right.Year)
	if left.Less(t) {
		yearsDiff--
	}

	t2 := Date{Day: minInt(right.Day, daysInMonth(left.Year, left.Month)), Month: left.Month, Year: left.Year}
	monthDiff := int64(left.Month - right.Month)
	if left.Less(t2) {
		monthDiff--
	}
	monthDiff = floorMod(monthDiff, 12)
	return yearsDiff, monthDiff
}

// weeksDaysHoursMinutesSecondsDiff decomposes the (left - right) duration,
// expressed as the already year/month-aligned pair, into whole
// weeks/days/hours/minutes/seconds, Python-timedelta style (seconds-of-day
// kept non-negative, days carrying the sign).
func weeksDaysHoursMinutesSecondsDiff(left, right DateTime) (weeks, days, hours, minutes, seconds int64) {
	totalSeconds := int64(left.toTime().Sub(right.toTime()).Seconds())

	d := floorDiv(totalSeconds, 86400)
	secOfDay := totalSeconds - d*86400

	weeks = floorDiv(d, 7)
	days = d - weeks*7
	hours = secOfDay / 3600
	secOfDay -= hours * 3600
	minutes = secOfDay / 60
	seconds = secOfDay - minutes*60
	return
}

// AddTimedelta implements DateTimeValue.__add__: apply years/months with
// clamping, then add the remaining fields as a flat whole-second duration.
func (dt DateTime) AddTimedelta(td Timedelta) (DateTime, error) {
	shiftedDate := addYearsAndMonths(dt.Date, td.Years, td.Months)
	totalSeconds := td.Weeks*7*86400 + td.Days*86400 + td.Hours*3600 + td.Minutes*60 + td.Seconds
	result := fromTime(DateTime{Date: shiftedDate, Time: dt.Time}.toTime().Add(
		time.Duration(totalSeconds) * time.Second))
	if result.Date.Year < 1 {
		return DateTime{}, fmt.Errorf("datetime arithmetic overflowed below year 1")
	}
	return result, nil
}

// SubDateTime implements DateTimeValue.__sub__ for a DateTime right operand:
// the whole-month span first, then the remaining fields as a flat duration.
func (dt DateTime) SubDateTime(other DateTime) Timedelta {
	years, months := getYearsAndMonthsDiff(dt.Date, other.Date)
	shiftedOtherDate := addYearsAndMonths(other.Date, years, months)
	shiftedOther := DateTime{Date: shiftedOtherDate, Time: other.Time}
	weeks, days, hours, minutes, seconds := weeksDaysHoursMinutesSecondsDiff(dt, shiftedOther)
	return Timedelta{Years: years, Months: months, Weeks: weeks, Days: days, Hours: hours, Minutes: minutes, Seconds: seconds}
}

// SubTimedelta implements DateTimeValue.__sub__ for a Timedelta right
// operand: self + (-other).
func (dt DateTime) SubTimedelta(td Timedelta) (DateTime, error) {
	return dt.AddTimedelta(td.Neg())
}
