package source

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"15/06/2021", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"1/2/2019", time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"05/11/03", time.Date(2003, 11, 5, 0, 0, 0, 0, time.UTC)},
		{"2020-01-31", time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)},
		{" 15/06/2021 ", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a date", time.Time{}},
		{"31/02/2021", time.Time{}}, // impossible day
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseDate(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
