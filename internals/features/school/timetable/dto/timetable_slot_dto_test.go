// file: internals/features/school/timetable/dto/timetable_slot_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
	"sekolahku_backend/internals/helpers/dbtime"
)

func sampleSlot(t *testing.T, start, end string) m.TimetableSlotModel {
	t.Helper()
	st, err := dbtime.Parse(start)
	if err != nil {
		t.Fatal(err)
	}
	en, err := dbtime.Parse(end)
	if err != nil {
		t.Fatal(err)
	}
	return m.TimetableSlotModel{
		TimetableSlotID:             uuid.New(),
		TimetableSlotClassID:        uuid.New(),
		TimetableSlotDate:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimetableSlotSequenceNumber: 1,
		TimetableSlotKind:           m.SlotKindPeriod,
		TimetableSlotStartTime:      st,
		TimetableSlotEndTime:        en,
	}
}

func TestNewTimetableSlotResponseDuration(t *testing.T) {
	slot := sampleSlot(t, "09:00", "09:40")
	resp := NewTimetableSlotResponse(&slot)
	if resp.TimetableSlotDurationMinutes != 40 {
		t.Fatalf("duration = %d menit, mau 40", resp.TimetableSlotDurationMinutes)
	}
	if resp.TimetableSlotStartTime != "09:00:00" || resp.TimetableSlotEndTime != "09:40:00" {
		t.Fatalf("waktu salah: %s - %s", resp.TimetableSlotStartTime, resp.TimetableSlotEndTime)
	}
}

func TestNewDayViewResponseUnknownNames(t *testing.T) {
	slot := sampleSlot(t, "09:00", "09:40")
	subj := uuid.New()
	teach := uuid.New()
	slot.TimetableSlotSubjectID = &subj
	slot.TimetableSlotTeacherID = &teach

	view := &svc.DayView{
		ClassID:        slot.TimetableSlotClassID,
		Date:           slot.TimetableSlotDate,
		Slots:          []m.TimetableSlotModel{slot},
		DisplayNumbers: map[uuid.UUID]int{slot.TimetableSlotID: 1},
		TaughtSet:      map[uuid.UUID]struct{}{},
		// directory tidak kenal id-nya: render "unknown", bukan error
		SubjectNames: map[uuid.UUID]string{},
		TeacherNames: map[uuid.UUID]string{},
	}

	out := NewDayViewResponse(view)
	if len(out.Slots) != 1 {
		t.Fatalf("jumlah slot = %d, mau 1", len(out.Slots))
	}
	s := out.Slots[0]
	if s.TimetableSlotSubjectName == nil || *s.TimetableSlotSubjectName != "unknown" {
		t.Fatal("subject tanpa nama harus dirender \"unknown\"")
	}
	if s.TimetableSlotTeacherName == nil || *s.TimetableSlotTeacherName != "unknown" {
		t.Fatal("teacher tanpa nama harus dirender \"unknown\"")
	}
	if s.TimetableSlotDisplayPeriodNumber == nil || *s.TimetableSlotDisplayPeriodNumber != 1 {
		t.Fatal("nomor tampilan tidak kebawa")
	}
}
