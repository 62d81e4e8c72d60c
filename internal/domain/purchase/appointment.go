package purchase

import (
	"slices"
	"strings"
	"time"

	"commission-tracker/internal/pkg/clock"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	TimestampLayout = "2006-01-02T15:04:05"
)

var allowedTimes = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

func AllowedTimes() []string {
	return slices.Clone(allowedTimes)
}

// AppointmentSlot is a bookable date and time-of-day in the business time zone.
type AppointmentSlot struct {
	at time.Time
}

// NewAppointmentSlot accepts dates from today (in loc) onwards and only the fixed times of day.
func NewAppointmentSlot(date, timeOfDay string, now time.Time, loc *time.Location) (AppointmentSlot, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)

	verr := newValidationError()

	var day time.Time
	if date == "" {
		verr.add("date", msgRequired)
	} else if d, err := time.ParseInLocation(DateLayout, date, loc); err != nil {
		verr.add("date", msgInvalidFormat)
	} else if d.Before(clock.StartOfDay(now, loc)) {
		verr.add("date", "must not be in the past")
	} else {
		day = d
	}

	var clockTime time.Time
	if timeOfDay == "" {
		verr.add("time", msgRequired)
	} else if !slices.Contains(allowedTimes, timeOfDay) {
		verr.add("time", "must be one of "+strings.Join(allowedTimes, ", "))
	} else {
		clockTime, _ = time.Parse(TimeLayout, timeOfDay)
	}

	if err := verr.orNil(); err != nil {
		return AppointmentSlot{}, err
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), clockTime.Hour(), clockTime.Minute(), 0, 0, loc)
	return AppointmentSlot{at: at}, nil
}

func (s AppointmentSlot) Timestamp() time.Time { return s.at }

// String renders the local wall-clock timestamp, e.g. 2025-06-10T14:00:00.
func (s AppointmentSlot) String() string { return s.at.Format(TimestampLayout) }

func (s AppointmentSlot) Equal(o AppointmentSlot) bool { return s.at.Equal(o.at) }
