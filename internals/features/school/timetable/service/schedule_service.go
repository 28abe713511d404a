// file: internals/features/school/timetable/service/schedule_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Kolaborator eksternal (interface di sisi consumer).
   Engine tidak pernah memvalidasi keberadaan subject/
   teacher sendiri - id gantung dirender "unknown" oleh
   presentasi, bukan ditolak di sini.
   ======================================================= */

type HolidayInfo struct {
	Title     string
	Recurring bool
}

type HolidayOracle interface {
	// IsHoliday: nil kalau bukan hari libur
	IsHoliday(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) (*HolidayInfo, error)
}

type DirectoryLookup interface {
	SubjectNames(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
	TeacherNames(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

/* =======================================================
   View model satu hari (hasil Load)
   ======================================================= */

type DayView struct {
	ClassID uuid.UUID
	Date    time.Time

	// Slot terurut waktu naik
	Slots []m.TimetableSlotModel

	// Turunan per-read
	DisplayNumbers map[uuid.UUID]int
	TaughtSet      map[uuid.UUID]struct{}
	SubjectNames   map[uuid.UUID]string
	TeacherNames   map[uuid.UUID]string

	PeriodsTaught int
	PeriodsTotal  int

	Holiday *HolidayInfo
}

/* =======================================================
   Patch & outcome edit
   ======================================================= */

type SlotPatch struct {
	Name              *string
	StartTime         *dbtime.Tod
	EndTime           *dbtime.Tod
	SubjectID         *uuid.UUID
	TeacherID         *uuid.UUID
	SyllabusChapterID *uuid.UUID
	SyllabusTopicID   *uuid.UUID
	LessonPlan        *string
}

// NeighborWarning: update tetangga gagal SETELAH edit utama sukses.
// Bukan hard failure - caller bisa retry tetangga spesifik ini.
type NeighborWarning struct {
	SlotID uuid.UUID `json:"slot_id"`
	Field  string    `json:"field"`
	Reason string    `json:"reason"`
}

type EditOutcome struct {
	Slot     *m.TimetableSlotModel
	Warnings []NeighborWarning
}

/* =======================================================
   ScheduleService - orkestrasi satu (class, date)
   ======================================================= */

type ScheduleService struct {
	Slots     SlotStore
	Ledger    *ProgressLedger
	Holidays  HolidayOracle   // opsional
	Directory DirectoryLookup // opsional
}

func NewScheduleService(slots SlotStore, progress ProgressStore, holidays HolidayOracle, directory DirectoryLookup) *ScheduleService {
	return &ScheduleService{
		Slots:     slots,
		Ledger:    NewProgressLedger(slots, progress),
		Holidays:  holidays,
		Directory: directory,
	}
}

// Load: ambil semua slot hari itu + nomor tampilan + taught set +
// nama subject/teacher + info libur, digabung jadi satu view model.
func (s *ScheduleService) Load(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) (*DayView, error) {
	slots, err := s.Slots.ListByDay(ctx, schoolID, classID, date)
	if err != nil {
		return nil, err
	}
	sorted := SortByStartTime(slots)

	taughtSet, err := s.Ledger.GetTaughtSet(ctx, schoolID, classID, date)
	if err != nil {
		return nil, err
	}

	view := &DayView{
		ClassID:        classID,
		Date:           dateOnly(date),
		Slots:          sorted,
		DisplayNumbers: DisplayPeriodNumbers(sorted),
		TaughtSet:      taughtSet,
		SubjectNames:   map[uuid.UUID]string{},
		TeacherNames:   map[uuid.UUID]string{},
	}
	view.PeriodsTaught, view.PeriodsTotal = PeriodsTaughtSummary(sorted, taughtSet)

	if s.Directory != nil {
		subjIDs, teachIDs := collectRefIDs(sorted)
		if len(subjIDs) > 0 {
			if names, er := s.Directory.SubjectNames(ctx, schoolID, subjIDs); er == nil {
				view.SubjectNames = names
			} else {
				log.Printf("[WARN] lookup subject names: %v", er)
			}
		}
		if len(teachIDs) > 0 {
			if names, er := s.Directory.TeacherNames(ctx, schoolID, teachIDs); er == nil {
				view.TeacherNames = names
			} else {
				log.Printf("[WARN] lookup teacher names: %v", er)
			}
		}
	}

	if s.Holidays != nil {
		info, er := s.Holidays.IsHoliday(ctx, schoolID, classID, date)
		if er != nil {
			// advisory saja - load tidak gagal gara-gara oracle
			log.Printf("[WARN] holiday oracle: %v", er)
		} else {
			view.Holiday = info
		}
	}

	return view, nil
}

// Generate: validasi → sequencer → batch insert. Hari yang sudah
// berisi slot ditolak (conflict) - biar generate baru tidak nyelip
// di antara hari yang sudah diedit manual.
func (s *ScheduleService) Generate(
	ctx context.Context,
	schoolID, classID uuid.UUID,
	date time.Time,
	req GenerationRequest,
	createdBy *uuid.UUID,
) ([]m.TimetableSlotModel, error) {
	plan, err := BuildDayPlan(schoolID, classID, date, req, createdBy)
	if err != nil {
		return nil, err
	}

	existing, err := s.Slots.ListByDay(ctx, schoolID, classID, date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, conflictErrf("hari ini sudah punya %d slot; hapus dulu sebelum generate ulang", len(existing))
	}

	inserted, err := s.Slots.InsertBatch(ctx, plan)
	if err != nil {
		return nil, err
	}
	if inserted < len(plan) {
		// Balapan generate vs generate: ON CONFLICT DO NOTHING menahan
		// sebagian baris → laporkan sebagai conflict, jangan diam.
		return nil, conflictErrf("batch insert kena konflik (%d/%d baris masuk)", inserted, len(plan))
	}
	return plan, nil
}

// EditSlot: terapkan patch; kalau start/end berubah, hitung dulu
// update tetangga dari snapshot (pre-edit), commit edit utama, lalu
// terapkan tiap update tetangga sebagai write independen best-effort.
func (s *ScheduleService) EditSlot(
	ctx context.Context,
	schoolID, classID uuid.UUID,
	date time.Time,
	slotID uuid.UUID,
	patch SlotPatch,
) (*EditOutcome, error) {
	daySlots, err := s.Slots.ListByDay(ctx, schoolID, classID, date)
	if err != nil {
		return nil, err
	}

	var current *m.TimetableSlotModel
	for i := range daySlots {
		if daySlots[i].TimetableSlotID == slotID {
			current = &daySlots[i]
			break
		}
	}
	if current == nil {
		return nil, notFoundErrf("slot %s di kelas/tanggal ini", slotID)
	}

	newStart := current.TimetableSlotStartTime
	newEnd := current.TimetableSlotEndTime
	if patch.StartTime != nil {
		newStart = *patch.StartTime
	}
	if patch.EndTime != nil {
		newEnd = *patch.EndTime
	}
	timeChanged := patch.StartTime != nil || patch.EndTime != nil

	fields, err := buildPatchFields(current, patch, newStart, newEnd, timeChanged)
	if err != nil {
		return nil, err
	}

	var neighborUpdates []NeighborUpdate
	if timeChanged {
		neighborUpdates, err = AdjustNeighbors(daySlots, slotID, newStart, newEnd)
		if err != nil {
			return nil, err
		}
	}

	// Edit utama dulu; kalau ini gagal, tidak ada yang berubah.
	if err := s.Slots.UpdateFields(ctx, schoolID, slotID, fields); err != nil {
		return nil, err
	}
	applyPatchToModel(current, patch, newStart, newEnd)

	// Update tetangga best-effort - gagal satu tidak membatalkan edit
	// utama; dilaporkan per-tetangga supaya caller bisa retry spesifik.
	outcome := &EditOutcome{Slot: current}
	for _, nu := range neighborUpdates {
		er := s.Slots.UpdateFields(ctx, schoolID, nu.SlotID, map[string]any{nu.Field: nu.Value})
		if er != nil {
			log.Printf("[WARN] propagasi tetangga slot=%s field=%s gagal: %v", nu.SlotID, nu.Field, er)
			outcome.Warnings = append(outcome.Warnings, NeighborWarning{
				SlotID: nu.SlotID,
				Field:  nu.Field,
				Reason: er.Error(),
			})
		}
	}
	return outcome, nil
}

// DeleteSlot: hapus satu slot. Gap yang tertinggal TIDAK di-heal
// otomatis - user yang memutuskan lewat edit susulan.
func (s *ScheduleService) DeleteSlot(ctx context.Context, schoolID, slotID uuid.UUID) error {
	return s.Slots.Delete(ctx, schoolID, slotID)
}

// ToggleTaught: sudah ditandai → unmark; belum → mark.
func (s *ScheduleService) ToggleTaught(
	ctx context.Context,
	schoolID, slotID uuid.UUID,
	markedBy *uuid.UUID,
) (taught bool, rec *m.TaughtProgressModel, err error) {
	if _, er := s.Ledger.Progress.GetBySlot(ctx, schoolID, slotID); er == nil {
		_, err = s.Ledger.UnmarkTaught(ctx, schoolID, slotID)
		return false, nil, err
	}
	rec, _, err = s.Ledger.MarkTaught(ctx, schoolID, slotID, nil, nil, markedBy)
	if err != nil {
		return false, nil, err
	}
	return true, rec, nil
}

/* =======================================================
   Internal helpers
   ======================================================= */

func collectRefIDs(slots []m.TimetableSlotModel) (subjects, teachers []uuid.UUID) {
	seenS := map[uuid.UUID]struct{}{}
	seenT := map[uuid.UUID]struct{}{}
	for i := range slots {
		if id := slots[i].TimetableSlotSubjectID; id != nil && *id != uuid.Nil {
			if _, ok := seenS[*id]; !ok {
				seenS[*id] = struct{}{}
				subjects = append(subjects, *id)
			}
		}
		if id := slots[i].TimetableSlotTeacherID; id != nil && *id != uuid.Nil {
			if _, ok := seenT[*id]; !ok {
				seenT[*id] = struct{}{}
				teachers = append(teachers, *id)
			}
		}
	}
	return subjects, teachers
}

// buildPatchFields memvalidasi patch terhadap kondisi slot dan
// menyusun map kolom → nilai untuk UpdateFields.
func buildPatchFields(
	current *m.TimetableSlotModel,
	patch SlotPatch,
	newStart, newEnd dbtime.Tod,
	timeChanged bool,
) (map[string]any, error) {
	fields := map[string]any{}

	if timeChanged {
		if !newEnd.After(newStart) {
			return nil, validationErrf("end_time harus lebih besar dari start_time")
		}
		if patch.StartTime != nil {
			fields[FieldStartTime] = newStart
		}
		if patch.EndTime != nil {
			fields[FieldEndTime] = newEnd
		}
	}

	if patch.Name != nil {
		if current.TimetableSlotKind == m.SlotKindBreak && *patch.Name == "" {
			return nil, validationErrf("name wajib untuk slot break")
		}
		fields["timetable_slot_name"] = patch.Name
	}

	// Subject & teacher: period yang lengkap butuh dua-duanya.
	// Patch yang bikin salah satu saja terisi ditolak saat commit.
	if patch.SubjectID != nil || patch.TeacherID != nil {
		if !current.IsPeriod() {
			return nil, validationErrf("subject/teacher hanya untuk slot period")
		}
		subj := current.TimetableSlotSubjectID
		teach := current.TimetableSlotTeacherID
		if patch.SubjectID != nil {
			subj = patch.SubjectID
		}
		if patch.TeacherID != nil {
			teach = patch.TeacherID
		}
		if (subj == nil) != (teach == nil) {
			return nil, validationErrf("subject_id dan teacher_id harus diisi bersamaan")
		}
		if patch.SubjectID != nil {
			fields["timetable_slot_subject_id"] = patch.SubjectID
		}
		if patch.TeacherID != nil {
			fields["timetable_slot_teacher_id"] = patch.TeacherID
		}
	}

	// Referensi silabus & lesson plan: sama seperti subject/teacher,
	// hanya slot period yang boleh punya.
	if patch.SyllabusChapterID != nil || patch.SyllabusTopicID != nil || patch.LessonPlan != nil {
		if !current.IsPeriod() {
			return nil, validationErrf("referensi silabus/lesson plan hanya untuk slot period")
		}
	}

	// Referensi silabus: chapter XOR topic - set salah satu otomatis
	// mengosongkan yang lain.
	if patch.SyllabusChapterID != nil && patch.SyllabusTopicID != nil {
		return nil, validationErrf("referensi silabus harus chapter ATAU topic, bukan dua-duanya")
	}
	if patch.SyllabusChapterID != nil {
		fields["timetable_slot_syllabus_chapter_id"] = patch.SyllabusChapterID
		fields["timetable_slot_syllabus_topic_id"] = nil
	}
	if patch.SyllabusTopicID != nil {
		fields["timetable_slot_syllabus_topic_id"] = patch.SyllabusTopicID
		fields["timetable_slot_syllabus_chapter_id"] = nil
	}

	if patch.LessonPlan != nil {
		fields["timetable_slot_lesson_plan"] = patch.LessonPlan
	}

	if len(fields) == 0 {
		return nil, validationErrf("patch kosong, tidak ada field yang diubah")
	}
	return fields, nil
}

// applyPatchToModel menyalin hasil patch ke struct in-memory untuk
// dipakai di response (tanpa read balik ke DB).
func applyPatchToModel(dst *m.TimetableSlotModel, patch SlotPatch, newStart, newEnd dbtime.Tod) {
	dst.TimetableSlotStartTime = newStart
	dst.TimetableSlotEndTime = newEnd
	if patch.Name != nil {
		dst.TimetableSlotName = patch.Name
	}
	if patch.SubjectID != nil {
		dst.TimetableSlotSubjectID = patch.SubjectID
	}
	if patch.TeacherID != nil {
		dst.TimetableSlotTeacherID = patch.TeacherID
	}
	if patch.SyllabusChapterID != nil {
		dst.TimetableSlotSyllabusChapterID = patch.SyllabusChapterID
		dst.TimetableSlotSyllabusTopicID = nil
	}
	if patch.SyllabusTopicID != nil {
		dst.TimetableSlotSyllabusTopicID = patch.SyllabusTopicID
		dst.TimetableSlotSyllabusChapterID = nil
	}
	if patch.LessonPlan != nil {
		dst.TimetableSlotLessonPlan = patch.LessonPlan
	}
}
