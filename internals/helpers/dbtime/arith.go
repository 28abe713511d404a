// file: internals/helpers/dbtime/arith.go
package dbtime

import "time"

/* =======================================================
   Aritmetika & ordering time-of-day
   Dipakai generator slot & penyesuai jadwal; tidak pernah
   error - lewat 23:59 jam wrap modulo 24 (hari tidak
   dilacak, caller yang jaga batas 24 jam bila perlu).
   ======================================================= */

const minutesPerDay = 24 * 60

// AddMinutes menggeser Tod maju n menit (n boleh negatif).
// Detik dipertahankan.
func (t Tod) AddMinutes(n int) Tod {
	total := t.Hour()*60 + t.Minute() + n
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return Tod{
		Time: time.Date(0, 1, 1, total/60, total%60, t.Second(), 0, time.UTC),
	}
}

// SecondsOfDay: posisi dalam hari, untuk total ordering
func (t Tod) SecondsOfDay() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func (t Tod) Before(o Tod) bool {
	return t.SecondsOfDay() < o.SecondsOfDay()
}

func (t Tod) Equal(o Tod) bool {
	return t.SecondsOfDay() == o.SecondsOfDay()
}

func (t Tod) After(o Tod) bool {
	return t.SecondsOfDay() > o.SecondsOfDay()
}

func (t Tod) AfterOrEqual(o Tod) bool {
	return t.SecondsOfDay() >= o.SecondsOfDay()
}

// MinutesUntil: selisih menit t → o dalam satu hari (o >= t diasumsikan)
func (t Tod) MinutesUntil(o Tod) int {
	return (o.SecondsOfDay() - t.SecondsOfDay()) / 60
}
