package domain

import "time"

// DayKeyFormat is the layout for day keys and trip start/end dates.
const DayKeyFormat = "2006-01-02"

// ParseDayKey converts a "2006-01-02" day key into a UTC midnight time.
func ParseDayKey(day string) (time.Time, error) {
	return time.Parse(DayKeyFormat, day)
}

// DayKeys expands [startDate, endDate] into the inclusive ordered sequence of
// day keys, one per calendar day. Returns nil when either date is absent or
// unparseable. Ordering is not validated here: callers must have enforced
// startDate <= endDate already, and an inverted range yields nil.
func DayKeys(startDate, endDate string) []string {
	if startDate == "" || endDate == "" {
		return nil
	}
	start, err := ParseDayKey(startDate)
	if err != nil {
		return nil
	}
	end, err := ParseDayKey(endDate)
	if err != nil {
		return nil
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayKeyFormat))
	}
	return days
}
