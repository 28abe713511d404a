// file: internals/features/school/timetable/service/ordering.go
package service

import (
	"sort"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Urutan tampilan - dihitung tiap read, tidak disimpan,
   jadi selalu konsisten dengan urutan waktu terkini walau
   slot sudah diedit/dihapus/disisipkan.
   ======================================================= */

// SortByStartTime: salinan terurut naik by start_time
// (tie-break sequence_number biar stabil).
func SortByStartTime(slots []m.TimetableSlotModel) []m.TimetableSlotModel {
	sorted := make([]m.TimetableSlotModel, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.TimetableSlotStartTime.Equal(b.TimetableSlotStartTime) {
			return a.TimetableSlotStartTime.Before(b.TimetableSlotStartTime)
		}
		return a.TimetableSlotSequenceNumber < b.TimetableSlotSequenceNumber
	})
	return sorted
}

// DisplayPeriodNumbers: period ke-k (urut waktu) dapat nomor k;
// break tidak dapat nomor.
func DisplayPeriodNumbers(sortedSlots []m.TimetableSlotModel) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int)
	k := 0
	for i := range sortedSlots {
		if !sortedSlots[i].IsPeriod() {
			continue
		}
		k++
		out[sortedSlots[i].TimetableSlotID] = k
	}
	return out
}

// PeriodsTaughtSummary: "N/M jam pelajaran sudah diajar";
// hanya slot period yang dihitung.
func PeriodsTaughtSummary(slots []m.TimetableSlotModel, taughtSet map[uuid.UUID]struct{}) (taught, total int) {
	for i := range slots {
		if !slots[i].IsPeriod() {
			continue
		}
		total++
		if _, ok := taughtSet[slots[i].TimetableSlotID]; ok {
			taught++
		}
	}
	return taught, total
}
