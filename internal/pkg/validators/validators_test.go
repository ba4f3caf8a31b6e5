//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type frequencyHolder struct {
	Frequency string `validate:"required,calfrequency"`
	Month     string `validate:"omitempty,monthrange"`
}

func TestValidateStruct_Frequency(t *testing.T) {
	tests := []struct {
		name    string
		value   frequencyHolder
		wantErr bool
	}{
		{"weeks", frequencyHolder{Frequency: "12 Week"}, false},
		{"plural months", frequencyHolder{Frequency: "3 Months"}, false},
		{"unknown unit", frequencyHolder{Frequency: "3 Decades"}, true},
		{"missing", frequencyHolder{}, true},
		{"single month", frequencyHolder{Frequency: "1 Year", Month: "07"}, false},
		{"month range", frequencyHolder{Frequency: "1 Year", Month: "03-05"}, false},
		{"reversed range", frequencyHolder{Frequency: "1 Year", Month: "05-03"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Field:")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
