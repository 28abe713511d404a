// file: internals/helpers/dbtime/arith_test.go
package dbtime

import "testing"

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		add  int
		want string
	}{
		{"maju biasa", "09:00:00", 40, "09:40:00"},
		{"lintas jam", "09:45:00", 30, "10:15:00"},
		{"wrap lewat tengah malam", "23:30:00", 45, "00:15:00"},
		{"wrap pas tengah malam", "23:00:00", 60, "00:00:00"},
		{"negatif", "00:10:00", -20, "23:50:00"},
		{"nol", "13:37:00", 0, "13:37:00"},
		{"lebih dari sehari", "08:00:00", 1500, "09:00:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.in, err)
			}
			got := in.AddMinutes(tc.add).String()
			if got != tc.want {
				t.Fatalf("%s + %d menit = %s, mau %s", tc.in, tc.add, got, tc.want)
			}
		})
	}
}

func TestAddMinutesPreservesSeconds(t *testing.T) {
	in, _ := Parse("09:00:30")
	got := in.AddMinutes(15).String()
	if got != "09:15:30" {
		t.Fatalf("detik hilang: %s", got)
	}
}

func TestOrdering(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("09:40")

	if !a.Before(b) {
		t.Error("09:00 harus Before 09:40")
	}
	if !b.After(a) {
		t.Error("09:40 harus After 09:00")
	}
	if a.After(b) || b.Before(a) {
		t.Error("ordering kebalik")
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Error("Equal salah")
	}
	if !b.AfterOrEqual(a) || !b.AfterOrEqual(b) {
		t.Error("AfterOrEqual salah")
	}
}

func TestMinutesUntil(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("10:15")
	if got := a.MinutesUntil(b); got != 75 {
		t.Fatalf("MinutesUntil = %d, mau 75", got)
	}
}

func TestFromHMNormalizes(t *testing.T) {
	if got := FromHM(25, 30).String(); got != "01:30:00" {
		t.Fatalf("FromHM(25,30) = %s, mau 01:30:00", got)
	}
	if got := FromHM(-1, 0).String(); got != "23:00:00" {
		t.Fatalf("FromHM(-1,0) = %s, mau 23:00:00", got)
	}
}
