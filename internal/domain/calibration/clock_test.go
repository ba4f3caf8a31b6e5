//go:build unit
// +build unit

package calibration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_DefaultsToLocal(t *testing.T) {
	SetLocation(nil)
	assert.Equal(t, time.Local, Location())
}

func TestNow_UsesPlantLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	SetLocation(jakarta)
	t.Cleanup(func() { SetLocation(nil) })

	assert.Equal(t, jakarta, Location())
	assert.Equal(t, jakarta, Now().Location())
}
