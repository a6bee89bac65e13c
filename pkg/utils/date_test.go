package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "march", year: 2024, month: time.March, want: 31},
		{name: "april", year: 2024, month: time.April, want: 30},
		{name: "leap february", year: 2024, month: time.February, want: 29},
		{name: "regular february", year: 2023, month: time.February, want: 28},
		{name: "december", year: 2024, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "March 2024", MonthLabel(2024, time.March))
	assert.Equal(t, "December 2023", MonthLabel(2023, time.December))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", FormatDate(date))
}
