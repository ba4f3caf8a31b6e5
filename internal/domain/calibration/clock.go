package calibration

import (
	"sync/atomic"
	"time"
)

var plantLocation atomic.Pointer[time.Location]

// SetLocation sets the plant time zone. Today's date for classification and
// the month boundaries of loan reports are taken in it. nil restores time.Local.
func SetLocation(loc *time.Location) {
	plantLocation.Store(loc)
}

// Location returns the plant time zone, time.Local until SetLocation is called
func Location() *time.Location {
	if loc := plantLocation.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// Now is the current instant in the plant time zone
func Now() time.Time {
	return time.Now().In(Location())
}
