// Package gestation derives a pregnancy due date and recommended ultrasound
// scan dates from the first day of the last menstrual period (LMP).
//
// Every function is pure: results depend only on the arguments, nothing is
// cached, and the package is safe for concurrent use.
package gestation

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

const (
	// PregnancyDays is the number of days between LMP and the estimated due date (40 weeks).
	PregnancyDays = 280
	// DaysPerWeek is the length of a gestational week.
	DaysPerWeek = 7
)

// ErrInvalidWeekRange is wrapped by errors returned from Definition.Validate.
var ErrInvalidWeekRange = errors.New("invalid week range")

// Definition is a named gestational week window within which a scan is recommended.
type Definition struct {
	Name           string
	WeekRangeStart int
	WeekRangeEnd   int
}

// Validate reports whether d has a name and a non-negative, non-inverted week range.
// The calculator does not call it; inputs are expected to be checked where they enter the system.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWeekRange)
	}
	if d.WeekRangeStart < 0 || d.WeekRangeEnd < 0 {
		return fmt.Errorf("%w: weeks must not be negative (%d-%d)", ErrInvalidWeekRange, d.WeekRangeStart, d.WeekRangeEnd)
	}
	if d.WeekRangeEnd < d.WeekRangeStart {
		return fmt.Errorf("%w: end week %d is before start week %d", ErrInvalidWeekRange, d.WeekRangeEnd, d.WeekRangeStart)
	}

	return nil
}

// Calculation is the recommended appointment for one scan type.
type Calculation struct {
	// ScanName is the name of the definition the calculation was made for.
	// It is empty when produced by ScanWindow directly.
	ScanName string `json:"scanName"`
	// WeekRange is the display form of the window, e.g. "18-22 weeks".
	WeekRange string `json:"weekRange"`
	// CalculatedDate is the recommended date (dd-MMM-yyyy) at the floor midpoint of the window.
	CalculatedDate string `json:"calculatedDate"`
	// DateRange is the acceptable window, "dd-MMM-yyyy to dd-MMM-yyyy".
	DateRange string `json:"dateRange"`
	WeekStart int    `json:"weekStart"`
	WeekEnd   int    `json:"weekEnd"`
}

// DueDate returns the estimated due date: LMP plus 280 days.
func DueDate(lmp time.Time) time.Time {
	return addDays(lmp, PregnancyDays)
}

// AddWeeks returns the calendar date that is the given number of whole weeks after lmp.
func AddWeeks(lmp time.Time, weeks int) time.Time {
	return addDays(lmp, weeks*DaysPerWeek)
}

// MidWeek returns floor((start+end)/2). Go's integer division truncates
// toward zero, which differs from floor for negative odd sums.
func MidWeek(start, end int) int {
	sum := start + end
	mid := sum / 2
	if sum%2 != 0 && sum < 0 {
		mid--
	}

	return mid
}

// ScanWindow computes the recommended date and acceptable window for a scan
// performed between weekStart and weekEnd weeks after lmp. The range is not
// validated: an inverted range yields an inverted DateRange.
func ScanWindow(lmp time.Time, weekStart, weekEnd int) Calculation {
	calculated := AddWeeks(lmp, MidWeek(weekStart, weekEnd))
	rangeStart := AddWeeks(lmp, weekStart)
	rangeEnd := AddWeeks(lmp, weekEnd)

	return Calculation{
		WeekRange:      fmt.Sprintf("%d-%d weeks", weekStart, weekEnd),
		CalculatedDate: FormatDate(calculated),
		DateRange:      FormatDate(rangeStart) + " to " + FormatDate(rangeEnd),
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
	}
}

// Scans lazily yields one Calculation per definition, in input order.
// The sequence can be ranged over any number of times.
func Scans(lmp time.Time, definitions []Definition) iter.Seq[Calculation] {
	return func(yield func(Calculation) bool) {
		for _, def := range definitions {
			c := ScanWindow(lmp, def.WeekRangeStart, def.WeekRangeEnd)
			c.ScanName = def.Name
			if !yield(c) {
				return
			}
		}
	}
}

// AllScans computes every definition eagerly. The result has the same length
// and order as definitions and is never nil.
func AllScans(lmp time.Time, definitions []Definition) []Calculation {
	out := make([]Calculation, 0, len(definitions))

	return slices.AppendSeq(out, Scans(lmp, definitions))
}

// Age is a gestational age in completed weeks plus remaining days.
type Age struct {
	Weeks int `json:"weeks"`
	Days  int `json:"days"`
}

// GestationalAge returns the gestational age on the given day for a pregnancy
// with the given LMP. Days before the LMP yield a zero Age.
func GestationalAge(lmp, on time.Time) Age {
	days := int(CalendarDate(on).Sub(CalendarDate(lmp)).Hours() / 24)
	if days < 0 {
		return Age{}
	}

	return Age{Weeks: days / DaysPerWeek, Days: days % DaysPerWeek}
}
