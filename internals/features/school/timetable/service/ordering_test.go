// file: internals/features/school/timetable/service/ordering_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

func TestDisplayPeriodNumbersSkipsBreaks(t *testing.T) {
	p1 := testSlot(1, m.SlotKindPeriod, "09:00", "09:40")
	p2 := testSlot(2, m.SlotKindPeriod, "09:40", "10:20")
	br := testSlot(3, m.SlotKindBreak, "10:20", "10:35")
	p3 := testSlot(4, m.SlotKindPeriod, "10:35", "11:15")

	// sengaja acak - SortByStartTime yang merapikan
	sorted := SortByStartTime([]m.TimetableSlotModel{p3, br, p1, p2})

	nums := DisplayPeriodNumbers(sorted)
	if len(nums) != 3 {
		t.Fatalf("jumlah period bernomor = %d, mau 3", len(nums))
	}
	if nums[p1.TimetableSlotID] != 1 || nums[p2.TimetableSlotID] != 2 || nums[p3.TimetableSlotID] != 3 {
		t.Fatalf("nomor tampilan salah: %v", nums)
	}
	if _, ok := nums[br.TimetableSlotID]; ok {
		t.Fatal("break tidak boleh dapat nomor period")
	}
}

func TestDisplayPeriodNumbersRenumberAfterDelete(t *testing.T) {
	p1 := testSlot(1, m.SlotKindPeriod, "09:00", "09:40")
	p3 := testSlot(4, m.SlotKindPeriod, "10:35", "11:15")

	// period tengah sudah dihapus: p3 harus turun jadi nomor 2
	nums := DisplayPeriodNumbers(SortByStartTime([]m.TimetableSlotModel{p1, p3}))
	if nums[p1.TimetableSlotID] != 1 || nums[p3.TimetableSlotID] != 2 {
		t.Fatalf("penomoran ulang salah: %v", nums)
	}
}

func TestSortByStartTimeStableTieBreak(t *testing.T) {
	// start sama → urut sequence_number
	a := testSlot(2, m.SlotKindPeriod, "09:00", "09:40")
	b := testSlot(1, m.SlotKindPeriod, "09:00", "09:30")

	sorted := SortByStartTime([]m.TimetableSlotModel{a, b})
	if sorted[0].TimetableSlotSequenceNumber != 1 {
		t.Fatal("tie-break harus pakai sequence_number")
	}
}

func TestSortByStartTimeDoesNotMutateInput(t *testing.T) {
	a := testSlot(1, m.SlotKindPeriod, "10:00", "10:40")
	b := testSlot(2, m.SlotKindPeriod, "09:00", "09:40")
	in := []m.TimetableSlotModel{a, b}

	_ = SortByStartTime(in)
	if in[0].TimetableSlotID != a.TimetableSlotID {
		t.Fatal("input tidak boleh diubah")
	}
}

func TestPeriodsTaughtSummary(t *testing.T) {
	p1 := testSlot(1, m.SlotKindPeriod, "09:00", "09:40")
	p2 := testSlot(2, m.SlotKindPeriod, "09:40", "10:20")
	br := testSlot(3, m.SlotKindBreak, "10:20", "10:35")

	taughtSet := map[uuid.UUID]struct{}{
		p1.TimetableSlotID: {},
		br.TimetableSlotID: {}, // break yang nyasar ke set tidak dihitung
	}

	taught, total := PeriodsTaughtSummary([]m.TimetableSlotModel{p1, p2, br}, taughtSet)
	if taught != 1 || total != 2 {
		t.Fatalf("summary = %d/%d, mau 1/2", taught, total)
	}
}
