// file: internals/features/school/timetable/dto/timetable_slot_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	svc "sekolahku_backend/internals/features/school/timetable/service"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Util & parsing
   ======================================================= */

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("tanggal harus format YYYY-MM-DD")
	}
	return d, nil
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func todPtrFromString(s *string) (*dbtime.Tod, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := dbtime.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type BreakSpecRequest struct {
	AfterPeriod     int    `json:"after_period"      validate:"required,min=1"`
	DurationMinutes int    `json:"duration_minutes"  validate:"required,min=1"`
	Name            string `json:"name"`
}

type GenerateTimetableRequest struct {
	TimetableSlotClassID string `json:"timetable_slot_class_id" validate:"required,uuid4"`
	TimetableSlotDate    string `json:"timetable_slot_date"     validate:"required"` // "YYYY-MM-DD"

	NumPeriods            int                `json:"num_periods"              validate:"required,min=1"`
	PeriodDurationMinutes int                `json:"period_duration_minutes"  validate:"required,min=1"`
	StartTime             string             `json:"start_time"               validate:"required"` // "HH:mm" / "HH:mm:ss"
	Breaks                []BreakSpecRequest `json:"breaks"                   validate:"omitempty,dive"`
}

// ToGenerationRequest: parse string → tipe engine. Validasi semantik
// (range, total durasi) tetap di service.
func (r *GenerateTimetableRequest) ToGenerationRequest() (uuid.UUID, time.Time, svc.GenerationRequest, error) {
	classID, err := uuid.Parse(strings.TrimSpace(r.TimetableSlotClassID))
	if err != nil {
		return uuid.Nil, time.Time{}, svc.GenerationRequest{}, err
	}
	date, err := ParseDate(r.TimetableSlotDate)
	if err != nil {
		return uuid.Nil, time.Time{}, svc.GenerationRequest{}, err
	}
	start, err := dbtime.Parse(r.StartTime)
	if err != nil {
		return uuid.Nil, time.Time{}, svc.GenerationRequest{}, errors.New("start_time harus format HH:mm")
	}

	breaks := make([]svc.BreakSpec, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		breaks = append(breaks, svc.BreakSpec{
			AfterPeriod:     b.AfterPeriod,
			DurationMinutes: b.DurationMinutes,
			Name:            b.Name,
		})
	}

	return classID, date, svc.GenerationRequest{
		NumPeriods:            r.NumPeriods,
		PeriodDurationMinutes: r.PeriodDurationMinutes,
		StartTime:             start,
		Breaks:                breaks,
	}, nil
}

type PatchTimetableSlotRequest struct {
	// Konteks hari (wajib - snapshot tetangga dibaca dari sini)
	TimetableSlotClassID string `json:"timetable_slot_class_id" validate:"required,uuid4"`
	TimetableSlotDate    string `json:"timetable_slot_date"     validate:"required"`

	// Semua optional - hanya field non-nil yang di-apply
	TimetableSlotName              *string `json:"timetable_slot_name,omitempty"`
	TimetableSlotStartTime         *string `json:"timetable_slot_start_time,omitempty"`
	TimetableSlotEndTime           *string `json:"timetable_slot_end_time,omitempty"`
	TimetableSlotSubjectID         *string `json:"timetable_slot_subject_id,omitempty"          validate:"omitempty,uuid4"`
	TimetableSlotTeacherID         *string `json:"timetable_slot_teacher_id,omitempty"          validate:"omitempty,uuid4"`
	TimetableSlotSyllabusChapterID *string `json:"timetable_slot_syllabus_chapter_id,omitempty" validate:"omitempty,uuid4"`
	TimetableSlotSyllabusTopicID   *string `json:"timetable_slot_syllabus_topic_id,omitempty"   validate:"omitempty,uuid4"`
	TimetableSlotLessonPlan        *string `json:"timetable_slot_lesson_plan,omitempty"`
}

func (r *PatchTimetableSlotRequest) ToPatch() (uuid.UUID, time.Time, svc.SlotPatch, error) {
	var zero svc.SlotPatch

	classID, err := uuid.Parse(strings.TrimSpace(r.TimetableSlotClassID))
	if err != nil {
		return uuid.Nil, time.Time{}, zero, err
	}
	date, err := ParseDate(r.TimetableSlotDate)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, err
	}

	start, err := todPtrFromString(r.TimetableSlotStartTime)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, errors.New("start_time harus format HH:mm")
	}
	end, err := todPtrFromString(r.TimetableSlotEndTime)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, errors.New("end_time harus format HH:mm")
	}
	subjectID, err := uuidPtrFromString(r.TimetableSlotSubjectID)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, err
	}
	teacherID, err := uuidPtrFromString(r.TimetableSlotTeacherID)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, err
	}
	chapterID, err := uuidPtrFromString(r.TimetableSlotSyllabusChapterID)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, err
	}
	topicID, err := uuidPtrFromString(r.TimetableSlotSyllabusTopicID)
	if err != nil {
		return uuid.Nil, time.Time{}, zero, err
	}

	return classID, date, svc.SlotPatch{
		Name:              r.TimetableSlotName,
		StartTime:         start,
		EndTime:           end,
		SubjectID:         subjectID,
		TeacherID:         teacherID,
		SyllabusChapterID: chapterID,
		SyllabusTopicID:   topicID,
		LessonPlan:        r.TimetableSlotLessonPlan,
	}, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type TimetableSlotResponse struct {
	TimetableSlotID             uuid.UUID `json:"timetable_slot_id"`
	TimetableSlotClassID        uuid.UUID `json:"timetable_slot_class_id"`
	TimetableSlotDate           string    `json:"timetable_slot_date"`
	TimetableSlotSequenceNumber int       `json:"timetable_slot_sequence_number"`
	TimetableSlotKind           string    `json:"timetable_slot_kind"`

	// Turunan, bukan kolom: nomor period dalam urutan waktu
	TimetableSlotDisplayPeriodNumber *int `json:"timetable_slot_display_period_number,omitempty"`

	TimetableSlotName            *string `json:"timetable_slot_name,omitempty"`
	TimetableSlotStartTime       string  `json:"timetable_slot_start_time"`
	TimetableSlotEndTime         string  `json:"timetable_slot_end_time"`
	TimetableSlotDurationMinutes int     `json:"timetable_slot_duration_minutes"`

	TimetableSlotSubjectID   *uuid.UUID `json:"timetable_slot_subject_id,omitempty"`
	TimetableSlotSubjectName *string    `json:"timetable_slot_subject_name,omitempty"`
	TimetableSlotTeacherID   *uuid.UUID `json:"timetable_slot_teacher_id,omitempty"`
	TimetableSlotTeacherName *string    `json:"timetable_slot_teacher_name,omitempty"`

	TimetableSlotSyllabusChapterID *uuid.UUID `json:"timetable_slot_syllabus_chapter_id,omitempty"`
	TimetableSlotSyllabusTopicID   *uuid.UUID `json:"timetable_slot_syllabus_topic_id,omitempty"`
	TimetableSlotLessonPlan        *string    `json:"timetable_slot_lesson_plan,omitempty"`

	TimetableSlotIsTaught bool `json:"timetable_slot_is_taught"`
}

type DayViewResponse struct {
	TimetableClassID uuid.UUID `json:"timetable_class_id"`
	TimetableDate    string    `json:"timetable_date"`

	IsHoliday    bool    `json:"is_holiday"`
	HolidayTitle *string `json:"holiday_title,omitempty"`

	PeriodsTaught int `json:"periods_taught"`
	PeriodsTotal  int `json:"periods_total"`

	Slots []TimetableSlotResponse `json:"slots"`
}

const unknownName = "unknown"

// NewDayViewResponse merakit view model service jadi payload JSON.
// Id subject/teacher yang gantung dirender "unknown", tidak ditolak.
func NewDayViewResponse(v *svc.DayView) DayViewResponse {
	out := DayViewResponse{
		TimetableClassID: v.ClassID,
		TimetableDate:    v.Date.Format("2006-01-02"),
		PeriodsTaught:    v.PeriodsTaught,
		PeriodsTotal:     v.PeriodsTotal,
		Slots:            make([]TimetableSlotResponse, 0, len(v.Slots)),
	}
	if v.Holiday != nil {
		out.IsHoliday = true
		title := v.Holiday.Title
		out.HolidayTitle = &title
	}

	for i := range v.Slots {
		slot := &v.Slots[i]
		resp := NewTimetableSlotResponse(slot)

		if n, ok := v.DisplayNumbers[slot.TimetableSlotID]; ok {
			num := n
			resp.TimetableSlotDisplayPeriodNumber = &num
		}
		if _, ok := v.TaughtSet[slot.TimetableSlotID]; ok {
			resp.TimetableSlotIsTaught = true
		}
		if slot.TimetableSlotSubjectID != nil {
			name := unknownName
			if s, ok := v.SubjectNames[*slot.TimetableSlotSubjectID]; ok {
				name = s
			}
			resp.TimetableSlotSubjectName = &name
		}
		if slot.TimetableSlotTeacherID != nil {
			name := unknownName
			if s, ok := v.TeacherNames[*slot.TimetableSlotTeacherID]; ok {
				name = s
			}
			resp.TimetableSlotTeacherName = &name
		}

		out.Slots = append(out.Slots, resp)
	}
	return out
}

func NewTimetableSlotResponse(slot *m.TimetableSlotModel) TimetableSlotResponse {
	return TimetableSlotResponse{
		TimetableSlotID:                slot.TimetableSlotID,
		TimetableSlotClassID:           slot.TimetableSlotClassID,
		TimetableSlotDate:              slot.TimetableSlotDate.Format("2006-01-02"),
		TimetableSlotSequenceNumber:    slot.TimetableSlotSequenceNumber,
		TimetableSlotKind:              string(slot.TimetableSlotKind),
		TimetableSlotName:              slot.TimetableSlotName,
		TimetableSlotStartTime:         slot.TimetableSlotStartTime.String(),
		TimetableSlotEndTime:           slot.TimetableSlotEndTime.String(),
		TimetableSlotDurationMinutes:   slot.TimetableSlotStartTime.MinutesUntil(slot.TimetableSlotEndTime),
		TimetableSlotSubjectID:         slot.TimetableSlotSubjectID,
		TimetableSlotTeacherID:         slot.TimetableSlotTeacherID,
		TimetableSlotSyllabusChapterID: slot.TimetableSlotSyllabusChapterID,
		TimetableSlotSyllabusTopicID:   slot.TimetableSlotSyllabusTopicID,
		TimetableSlotLessonPlan:        slot.TimetableSlotLessonPlan,
	}
}
