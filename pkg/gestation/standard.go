package gestation

// StandardScans returns the routine ultrasound scans offered when no custom
// scan types are configured. The returned slice is a fresh copy.
func StandardScans() []Definition {
	return []Definition{
		{Name: "Dating Scan", WeekRangeStart: 6, WeekRangeEnd: 8},
		{Name: "NT Scan", WeekRangeStart: 11, WeekRangeEnd: 13},
		{Name: "Anomaly Scan", WeekRangeStart: 18, WeekRangeEnd: 22},
		{Name: "Fetal Echo", WeekRangeStart: 21, WeekRangeEnd: 22},
	}
}
