// file: internals/features/school/academics/holidays/service/holiday_oracle_test.go
package service

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestCoversMonthDay(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		day        time.Time
		want       bool
	}{
		{"dalam rentang", d(2020, 8, 17), d(2020, 8, 17), d(2026, 8, 17), true},
		{"di luar rentang", d(2020, 8, 17), d(2020, 8, 17), d(2026, 8, 18), false},
		{"rentang beberapa hari", d(2020, 12, 20), d(2020, 12, 24), d(2026, 12, 22), true},
		{"nyebrang tahun, sisi desember", d(2020, 12, 25), d(2021, 1, 2), d(2026, 12, 31), true},
		{"nyebrang tahun, sisi januari", d(2020, 12, 25), d(2021, 1, 2), d(2026, 1, 1), true},
		{"nyebrang tahun, di luar", d(2020, 12, 25), d(2021, 1, 2), d(2026, 6, 15), false},
		{"batas awal", d(2020, 7, 1), d(2020, 7, 10), d(2026, 7, 1), true},
		{"batas akhir", d(2020, 7, 1), d(2020, 7, 10), d(2026, 7, 10), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coversMonthDay(tc.start, tc.end, tc.day); got != tc.want {
				t.Fatalf("coversMonthDay = %v, mau %v", got, tc.want)
			}
		})
	}
}
