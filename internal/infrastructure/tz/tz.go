package tz

import "time"

// Bogota is the fixed reference timezone for all client-facing dates.
var Bogota = mustLoad("America/Bogota")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("tz: load " + name + ": " + err.Error())
	}
	return loc
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate interprets s as a calendar day in Bogota pinned to that day's
// midnight, so the stored instant maps back to the same date on any server
// timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, Bogota)
}

func FormatDate(t time.Time) string { return t.In(Bogota).Format(dateLayout) }

func FormatDateTime(t time.Time) string { return t.In(Bogota).Format(dateTimeLayout) }
