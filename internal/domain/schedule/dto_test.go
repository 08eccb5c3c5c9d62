package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateWeeklyOffRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		offDays []int
		wantErr bool
	}{
		{"empty set", nil, false},
		{"single day", []int{0}, false},
		{"six days", []int{0, 1, 2, 3, 4, 5}, false},
		{"all seven days", []int{0, 1, 2, 3, 4, 5, 6}, true},
		{"out of range", []int{7}, true},
		{"negative", []int{-1}, true},
		{"repeated day", []int{0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := UpdateWeeklyOffRequest{
				EmployeeID: "e1",
				OffDays:    tt.offDays,
			}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
