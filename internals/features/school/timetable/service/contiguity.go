// file: internals/features/school/timetable/service/contiguity.go
package service

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Contiguity adjuster - saat start/end sebuah slot diedit,
   tetangga langsungnya ikut digeser supaya jadwal tetap
   rapat. Hanya tetangga langsung yang disentuh (blast
   radius maksimal 3 baris); gap di tempat lain dibiarkan.
   ======================================================= */

const (
	FieldStartTime = "timetable_slot_start_time"
	FieldEndTime   = "timetable_slot_end_time"
)

type NeighborUpdate struct {
	SlotID uuid.UUID
	Field  string
	Value  dbtime.Tod
}

// AdjustNeighbors menghitung update tetangga dari snapshot satu hari.
// Posisi slot yang diedit dicari pakai waktu ASLI (pre-edit), karena
// editnya sendiri belum di-commit saat tetangga dihitung.
func AdjustNeighbors(
	daySlots []m.TimetableSlotModel,
	editedSlotID uuid.UUID,
	newStart, newEnd dbtime.Tod,
) ([]NeighborUpdate, error) {
	if !newEnd.After(newStart) {
		return nil, validationErrf("end_time harus lebih besar dari start_time")
	}

	sorted := SortByStartTime(daySlots)
	idx := -1
	for i := range sorted {
		if sorted[i].TimetableSlotID == editedSlotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, notFoundErrf("slot %s tidak ada di hari ini", editedSlotID)
	}

	edited := sorted[idx]
	updates := make([]NeighborUpdate, 0, 2)

	// end berubah → start tetangga kanan ikut
	if !newEnd.Equal(edited.TimetableSlotEndTime) && idx+1 < len(sorted) {
		updates = append(updates, NeighborUpdate{
			SlotID: sorted[idx+1].TimetableSlotID,
			Field:  FieldStartTime,
			Value:  newEnd,
		})
	}

	// start berubah → end tetangga kiri ikut
	if !newStart.Equal(edited.TimetableSlotStartTime) && idx-1 >= 0 {
		updates = append(updates, NeighborUpdate{
			SlotID: sorted[idx-1].TimetableSlotID,
			Field:  FieldEndTime,
			Value:  newStart,
		})
	}

	return updates, nil
}
