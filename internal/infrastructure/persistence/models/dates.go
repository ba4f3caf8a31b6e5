package models

import (
	"time"

	"gorm.io/datatypes"
)

// CivilDate keeps the calendar day of t and anchors it at UTC midnight
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(CivilDate(t))
}

func toDatePtr(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}

func fromDate(d datatypes.Date) time.Time {
	return CivilDate(time.Time(d))
}

func fromDatePtr(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := fromDate(*d)
	return &t
}

func toUTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
