package gestation_test

import (
	"slices"
	"sonoplan/pkg/gestation"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := gestation.ParseDate(s)
	require.NoError(t, err)

	return d
}

func TestDueDate(t *testing.T) {
	lmp := mustDate(t, "2024-01-01")

	edd := gestation.DueDate(lmp)
	require.Equal(t, "2024-10-07", gestation.FormatISODate(edd))
	require.Equal(t, "07-Oct-2024", gestation.FormatDate(edd))
}

func TestDueDate_AlwaysPlus280Days(t *testing.T) {
	start := mustDate(t, "2023-01-01")
	for i := range 800 {
		lmp := start.AddDate(0, 0, i)
		edd := gestation.DueDate(lmp)
		require.Equal(t, gestation.PregnancyDays*24*time.Hour, edd.Sub(lmp), "lmp %s", gestation.FormatISODate(lmp))
	}
}

func TestDueDate_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	lmp := time.Date(2024, time.January, 1, 23, 45, 0, 0, loc)

	require.Equal(t, "2024-10-07", gestation.FormatISODate(gestation.DueDate(lmp)))
}

func TestMidWeek(t *testing.T) {
	cases := []struct {
		start, end, want int
	}{
		{6, 8, 7},
		{11, 13, 12},
		{18, 22, 20},
		{18, 21, 19},
		{0, 1, 0},
		{5, 5, 5},
		{-3, 0, -2},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, gestation.MidWeek(tc.start, tc.end), "%d-%d", tc.start, tc.end)
	}
}

func TestScanWindow(t *testing.T) {
	lmp := mustDate(t, "2024-01-01")

	tests := []struct {
		name       string
		start, end int
		want       gestation.Calculation
	}{
		{
			name:  "dating scan",
			start: 6,
			end:   8,
			want: gestation.Calculation{
				WeekRange:      "6-8 weeks",
				CalculatedDate: "19-Feb-2024",
				DateRange:      "12-Feb-2024 to 26-Feb-2024",
				WeekStart:      6,
				WeekEnd:        8,
			},
		},
		{
			name:  "nuchal translucency",
			start: 11,
			end:   13,
			want: gestation.Calculation{
				WeekRange:      "11-13 weeks",
				CalculatedDate: "25-Mar-2024",
				DateRange:      "18-Mar-2024 to 01-Apr-2024",
				WeekStart:      11,
				WeekEnd:        13,
			},
		},
		{
			// 126 days after 2024-01-01 is 6 May because February 2024 has 29 days.
			name:  "anomaly scan across leap day",
			start: 18,
			end:   22,
			want: gestation.Calculation{
				WeekRange:      "18-22 weeks",
				CalculatedDate: "20-May-2024",
				DateRange:      "06-May-2024 to 03-Jun-2024",
				WeekStart:      18,
				WeekEnd:        22,
			},
		},
		{
			name:  "odd width rounds down",
			start: 28,
			end:   33,
			want: gestation.Calculation{
				WeekRange:      "28-33 weeks",
				CalculatedDate: "29-Jul-2024",
				DateRange:      "15-Jul-2024 to 19-Aug-2024",
				WeekStart:      28,
				WeekEnd:        33,
			},
		},
		{
			name:  "inverted range is computed as given",
			start: 8,
			end:   6,
			want: gestation.Calculation{
				WeekRange:      "8-6 weeks",
				CalculatedDate: "19-Feb-2024",
				DateRange:      "26-Feb-2024 to 12-Feb-2024",
				WeekStart:      8,
				WeekEnd:        6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, gestation.ScanWindow(lmp, tt.start, tt.end))
		})
	}
}

func TestScanWindow_Idempotent(t *testing.T) {
	lmp := mustDate(t, "2024-03-15")

	require.Equal(t, gestation.ScanWindow(lmp, 18, 22), gestation.ScanWindow(lmp, 18, 22))
	require.Equal(t, gestation.DueDate(lmp), gestation.DueDate(lmp))
}

func TestAllScans(t *testing.T) {
	lmp := mustDate(t, "2024-01-01")
	defs := []gestation.Definition{
		{Name: "Growth Scan", WeekRangeStart: 28, WeekRangeEnd: 32},
		{Name: "Dating Scan", WeekRangeStart: 6, WeekRangeEnd: 8},
		{Name: "Anomaly Scan", WeekRangeStart: 18, WeekRangeEnd: 22},
	}
	original := slices.Clone(defs)

	got := gestation.AllScans(lmp, defs)
	require.Len(t, got, len(defs))
	for i, c := range got {
		require.Equal(t, defs[i].Name, c.ScanName)
		require.Equal(t, defs[i].WeekRangeStart, c.WeekStart)
		require.Equal(t, defs[i].WeekRangeEnd, c.WeekEnd)
	}
	require.Equal(t, "29-Jul-2024", got[0].CalculatedDate)
	require.Equal(t, original, defs, "input must not be mutated")
	require.Equal(t, got, gestation.AllScans(lmp, defs))
}

func TestAllScans_Empty(t *testing.T) {
	got := gestation.AllScans(time.Now(), nil)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestScans_Restartable(t *testing.T) {
	lmp := mustDate(t, "2024-01-01")
	seq := gestation.Scans(lmp, []gestation.Definition{
		{Name: "a", WeekRangeStart: 6, WeekRangeEnd: 8},
		{Name: "b", WeekRangeStart: 11, WeekRangeEnd: 13},
	})

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Len(t, first, 2)
	require.Equal(t, first, second)

	// stop early
	n := 0
	for range seq {
		n++

		break
	}
	require.Equal(t, 1, n)
}

func TestParseDate(t *testing.T) {
	d, err := gestation.ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	for _, in := range []string{"", "2023-02-29", "01-01-2024", "2024/01/01", "yesterday"} {
		_, err := gestation.ParseDate(in)
		require.ErrorIs(t, err, gestation.ErrInvalidDate, "input %q", in)
	}
}

func TestDefinition_Validate(t *testing.T) {
	require.NoError(t, gestation.Definition{Name: "Dating", WeekRangeStart: 6, WeekRangeEnd: 8}.Validate())
	require.NoError(t, gestation.Definition{Name: "Single week", WeekRangeStart: 12, WeekRangeEnd: 12}.Validate())

	invalid := []gestation.Definition{
		{Name: " ", WeekRangeStart: 6, WeekRangeEnd: 8},
		{Name: "negative", WeekRangeStart: -1, WeekRangeEnd: 8},
		{Name: "inverted", WeekRangeStart: 9, WeekRangeEnd: 8},
	}
	for _, d := range invalid {
		require.ErrorIs(t, d.Validate(), gestation.ErrInvalidWeekRange, "definition %+v", d)
	}
}

func TestGestationalAge(t *testing.T) {
	lmp := mustDate(t, "2024-01-01")

	require.Equal(t, gestation.Age{Weeks: 0, Days: 0}, gestation.GestationalAge(lmp, lmp))
	require.Equal(t, gestation.Age{Weeks: 18, Days: 3}, gestation.GestationalAge(lmp, mustDate(t, "2024-05-09")))
	require.Equal(t, gestation.Age{Weeks: 40, Days: 0}, gestation.GestationalAge(lmp, gestation.DueDate(lmp)))
	require.Equal(t, gestation.Age{}, gestation.GestationalAge(lmp, mustDate(t, "2023-12-01")))
}

func TestStandardScans(t *testing.T) {
	defs := gestation.StandardScans()
	require.Len(t, defs, 4)
	for _, d := range defs {
		require.NoError(t, d.Validate())
	}

	defs[0].Name = "changed"
	require.Equal(t, "Dating Scan", gestation.StandardScans()[0].Name)
}
