// file: internals/features/school/timetable/service/sequencer_test.go
package service

import (
	"errors"
	"reflect"
	"testing"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

func TestBuildDayPlanWithBreak(t *testing.T) {
	// 3 period 40 menit mulai 09:00, break 15 menit setelah period 2
	req := GenerationRequest{
		NumPeriods:            3,
		PeriodDurationMinutes: 40,
		StartTime:             mustTod("09:00"),
		Breaks: []BreakSpec{
			{AfterPeriod: 2, DurationMinutes: 15, Name: "Istirahat"},
		},
	}

	plan, err := BuildDayPlan(testSchoolID, testClassID, testDate, req, nil)
	if err != nil {
		t.Fatalf("BuildDayPlan: %v", err)
	}
	if len(plan) != 4 {
		t.Fatalf("jumlah slot = %d, mau 4", len(plan))
	}

	want := []struct {
		seq        int
		kind       m.SlotKind
		start, end string
	}{
		{1, m.SlotKindPeriod, "09:00:00", "09:40:00"},
		{2, m.SlotKindPeriod, "09:40:00", "10:20:00"},
		{3, m.SlotKindBreak, "10:20:00", "10:35:00"},
		{4, m.SlotKindPeriod, "10:35:00", "11:15:00"},
	}
	for i, w := range want {
		s := plan[i]
		if s.TimetableSlotSequenceNumber != w.seq {
			t.Errorf("slot %d: seq = %d, mau %d", i, s.TimetableSlotSequenceNumber, w.seq)
		}
		if s.TimetableSlotKind != w.kind {
			t.Errorf("slot %d: kind = %s, mau %s", i, s.TimetableSlotKind, w.kind)
		}
		if got := s.TimetableSlotStartTime.String(); got != w.start {
			t.Errorf("slot %d: start = %s, mau %s", i, got, w.start)
		}
		if got := s.TimetableSlotEndTime.String(); got != w.end {
			t.Errorf("slot %d: end = %s, mau %s", i, got, w.end)
		}
	}

	if plan[2].TimetableSlotName == nil || *plan[2].TimetableSlotName != "Istirahat" {
		t.Error("nama break tidak kebawa")
	}
	// Generator cuma bikin kerangka waktu, penugasan lewat edit
	for i := range plan {
		if plan[i].TimetableSlotSubjectID != nil || plan[i].TimetableSlotTeacherID != nil {
			t.Errorf("slot %d: subject/teacher harus kosong setelah generate", i)
		}
	}
}

func TestBuildDayPlanBreakNameDefault(t *testing.T) {
	req := GenerationRequest{
		NumPeriods:            1,
		PeriodDurationMinutes: 30,
		StartTime:             mustTod("07:00"),
		Breaks:                []BreakSpec{{AfterPeriod: 1, DurationMinutes: 10}},
	}
	plan, err := BuildDayPlan(testSchoolID, testClassID, testDate, req, nil)
	if err != nil {
		t.Fatalf("BuildDayPlan: %v", err)
	}
	if plan[1].TimetableSlotName == nil || *plan[1].TimetableSlotName != "Break" {
		t.Fatal("break tanpa nama harus dapat default \"Break\"")
	}
}

func TestBuildDayPlanMultipleBreaksSamePeriod(t *testing.T) {
	req := GenerationRequest{
		NumPeriods:            2,
		PeriodDurationMinutes: 30,
		StartTime:             mustTod("08:00"),
		Breaks: []BreakSpec{
			{AfterPeriod: 1, DurationMinutes: 5, Name: "A"},
			{AfterPeriod: 1, DurationMinutes: 10, Name: "B"},
		},
	}
	plan, err := BuildDayPlan(testSchoolID, testClassID, testDate, req, nil)
	if err != nil {
		t.Fatalf("BuildDayPlan: %v", err)
	}
	// urutan emisi: P1, A, B, P2 - sesuai urutan request
	if *plan[1].TimetableSlotName != "A" || *plan[2].TimetableSlotName != "B" {
		t.Fatal("break setelah period yang sama harus keluar sesuai urutan request")
	}
	if got := plan[3].TimetableSlotStartTime.String(); got != "08:45:00" {
		t.Fatalf("period 2 mulai %s, mau 08:45:00", got)
	}
}

func TestBuildDayPlanDeterministic(t *testing.T) {
	req := GenerationRequest{
		NumPeriods:            4,
		PeriodDurationMinutes: 45,
		StartTime:             mustTod("07:30"),
		Breaks:                []BreakSpec{{AfterPeriod: 2, DurationMinutes: 20, Name: "Istirahat"}},
	}
	a, err := BuildDayPlan(testSchoolID, testClassID, testDate, req, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildDayPlan(testSchoolID, testClassID, testDate, req, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("BuildDayPlan harus deterministik untuk input yang sama")
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	base := GenerationRequest{
		NumPeriods:            3,
		PeriodDurationMinutes: 40,
		StartTime:             mustTod("09:00"),
	}

	cases := []struct {
		name   string
		mutate func(*GenerationRequest)
	}{
		{"num_periods nol", func(r *GenerationRequest) { r.NumPeriods = 0 }},
		{"durasi nol", func(r *GenerationRequest) { r.PeriodDurationMinutes = 0 }},
		{"break after_period nol", func(r *GenerationRequest) {
			r.Breaks = []BreakSpec{{AfterPeriod: 0, DurationMinutes: 5}}
		}},
		{"break after_period kebesaran", func(r *GenerationRequest) {
			r.Breaks = []BreakSpec{{AfterPeriod: 4, DurationMinutes: 5}}
		}},
		{"break durasi nol", func(r *GenerationRequest) {
			r.Breaks = []BreakSpec{{AfterPeriod: 1, DurationMinutes: 0}}
		}},
		{"total melebihi satu hari", func(r *GenerationRequest) {
			r.NumPeriods = 24
			r.PeriodDurationMinutes = 60
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := base
			tc.mutate(&r)
			err := r.Validate()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("mau ErrValidation, dapat %v", err)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("request valid malah error: %v", err)
	}
}
