// file: internals/features/school/timetable/service/contiguity_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

func threeSlotDay() (p1, br, p2 m.TimetableSlotModel, day []m.TimetableSlotModel) {
	p1 = testSlot(1, m.SlotKindPeriod, "09:00", "09:40")
	br = testSlot(2, m.SlotKindBreak, "09:40", "09:55")
	p2 = testSlot(3, m.SlotKindPeriod, "09:55", "10:35")
	return p1, br, p2, []m.TimetableSlotModel{p1, br, p2}
}

func TestAdjustNeighborsEndChange(t *testing.T) {
	p1, br, _, day := threeSlotDay()

	// end p1 09:40 → 09:50: start break ikut
	ups, err := AdjustNeighbors(day, p1.TimetableSlotID, mustTod("09:00"), mustTod("09:50"))
	if err != nil {
		t.Fatalf("AdjustNeighbors: %v", err)
	}
	if len(ups) != 1 {
		t.Fatalf("jumlah update = %d, mau 1", len(ups))
	}
	u := ups[0]
	if u.SlotID != br.TimetableSlotID || u.Field != FieldStartTime || u.Value.String() != "09:50:00" {
		t.Fatalf("update salah: %+v", u)
	}
}

func TestAdjustNeighborsStartChange(t *testing.T) {
	p1, br, _, day := threeSlotDay()

	// start break 09:40 → 09:45: end p1 ikut
	ups, err := AdjustNeighbors(day, br.TimetableSlotID, mustTod("09:45"), mustTod("09:55"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ups) != 1 {
		t.Fatalf("jumlah update = %d, mau 1", len(ups))
	}
	u := ups[0]
	if u.SlotID != p1.TimetableSlotID || u.Field != FieldEndTime || u.Value.String() != "09:45:00" {
		t.Fatalf("update salah: %+v", u)
	}
}

func TestAdjustNeighborsBothChange(t *testing.T) {
	p1, br, p2, day := threeSlotDay()

	ups, err := AdjustNeighbors(day, br.TimetableSlotID, mustTod("09:35"), mustTod("10:00"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ups) != 2 {
		t.Fatalf("jumlah update = %d, mau 2", len(ups))
	}

	byID := map[uuid.UUID]NeighborUpdate{}
	for _, u := range ups {
		byID[u.SlotID] = u
	}
	if u := byID[p2.TimetableSlotID]; u.Field != FieldStartTime || u.Value.String() != "10:00:00" {
		t.Errorf("tetangga kanan salah: %+v", u)
	}
	if u := byID[p1.TimetableSlotID]; u.Field != FieldEndTime || u.Value.String() != "09:35:00" {
		t.Errorf("tetangga kiri salah: %+v", u)
	}
}

func TestAdjustNeighborsEdges(t *testing.T) {
	p1, _, p2, day := threeSlotDay()

	// slot pertama: geser start tidak menyentuh siapa-siapa
	ups, err := AdjustNeighbors(day, p1.TimetableSlotID, mustTod("08:55"), mustTod("09:40"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ups) != 0 {
		t.Fatalf("slot pertama geser start: update = %d, mau 0", len(ups))
	}

	// slot terakhir: geser end juga tidak
	ups, err = AdjustNeighbors(day, p2.TimetableSlotID, mustTod("09:55"), mustTod("10:45"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ups) != 0 {
		t.Fatalf("slot terakhir geser end: update = %d, mau 0", len(ups))
	}
}

func TestAdjustNeighborsNoTimeChange(t *testing.T) {
	_, br, _, day := threeSlotDay()
	ups, err := AdjustNeighbors(day, br.TimetableSlotID, mustTod("09:40"), mustTod("09:55"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ups) != 0 {
		t.Fatalf("waktu tidak berubah: update = %d, mau 0", len(ups))
	}
}

func TestAdjustNeighborsInvalidRange(t *testing.T) {
	p1, _, _, day := threeSlotDay()
	_, err := AdjustNeighbors(day, p1.TimetableSlotID, mustTod("10:00"), mustTod("09:00"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("mau ErrValidation, dapat %v", err)
	}
}

func TestAdjustNeighborsUnknownSlot(t *testing.T) {
	_, _, _, day := threeSlotDay()
	_, err := AdjustNeighbors(day, uuid.New(), mustTod("09:00"), mustTod("09:40"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("mau ErrNotFound, dapat %v", err)
	}
}
