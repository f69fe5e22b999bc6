package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth parses a reporting period in the "2006-01" format, normalised
// to the first day of the month in UTC.
func ParseMonth(monthStr string) (time.Time, error) {
	return time.Parse("2006-01", monthStr)
}

// FormatMonth renders a reporting period in the "2006-01" format.
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}
