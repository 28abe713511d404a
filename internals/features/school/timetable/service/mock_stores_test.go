// file: internals/features/school/timetable/service/mock_stores_test.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/timetable/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =======================================================
   In-memory stores untuk test service tanpa DB.
   Semantik meniru implementasi GORM: unique index
   (school, class, date, seq) + ON CONFLICT DO NOTHING.
   ======================================================= */

type memSlotStore struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*m.TimetableSlotModel

	// slotID → error; simulasi UpdateFields gagal untuk slot tertentu
	failUpdates map[uuid.UUID]error
}

func newMemSlotStore() *memSlotStore {
	return &memSlotStore{
		slots:       map[uuid.UUID]*m.TimetableSlotModel{},
		failUpdates: map[uuid.UUID]error{},
	}
}

func dayKey(s *m.TimetableSlotModel) string {
	return fmt.Sprintf("%s|%s|%s|%d",
		s.TimetableSlotSchoolID, s.TimetableSlotClassID,
		s.TimetableSlotDate.Format("2006-01-02"), s.TimetableSlotSequenceNumber)
}

func (st *memSlotStore) ListByDay(_ context.Context, schoolID, classID uuid.UUID, date time.Time) ([]m.TimetableSlotModel, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	day := dateOnly(date)
	var out []m.TimetableSlotModel
	for _, s := range st.slots {
		if s.TimetableSlotSchoolID == schoolID &&
			s.TimetableSlotClassID == classID &&
			s.TimetableSlotDate.Equal(day) {
			out = append(out, *s)
		}
	}
	return SortByStartTime(out), nil
}

func (st *memSlotStore) GetByID(_ context.Context, schoolID, slotID uuid.UUID) (*m.TimetableSlotModel, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.slots[slotID]
	if !ok || s.TimetableSlotSchoolID != schoolID {
		return nil, notFoundErrf("slot %s", slotID)
	}
	cp := *s
	return &cp, nil
}

func (st *memSlotStore) InsertBatch(_ context.Context, slots []m.TimetableSlotModel) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	taken := map[string]bool{}
	for _, s := range st.slots {
		taken[dayKey(s)] = true
	}

	inserted := 0
	for i := range slots {
		s := slots[i]
		if taken[dayKey(&s)] {
			continue // DO NOTHING
		}
		if s.TimetableSlotID == uuid.Nil {
			s.TimetableSlotID = uuid.New()
		}
		slots[i].TimetableSlotID = s.TimetableSlotID
		cp := s
		st.slots[s.TimetableSlotID] = &cp
		taken[dayKey(&s)] = true
		inserted++
	}
	return inserted, nil
}

func (st *memSlotStore) UpdateFields(_ context.Context, schoolID, slotID uuid.UUID, fields map[string]any) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err, ok := st.failUpdates[slotID]; ok {
		return err
	}
	s, ok := st.slots[slotID]
	if !ok || s.TimetableSlotSchoolID != schoolID {
		return notFoundErrf("slot %s", slotID)
	}

	for k, v := range fields {
		switch k {
		case FieldStartTime:
			s.TimetableSlotStartTime = v.(dbtime.Tod)
		case FieldEndTime:
			s.TimetableSlotEndTime = v.(dbtime.Tod)
		case "timetable_slot_name":
			s.TimetableSlotName = v.(*string)
		case "timetable_slot_subject_id":
			s.TimetableSlotSubjectID = v.(*uuid.UUID)
		case "timetable_slot_teacher_id":
			s.TimetableSlotTeacherID = v.(*uuid.UUID)
		case "timetable_slot_syllabus_chapter_id":
			if v == nil {
				s.TimetableSlotSyllabusChapterID = nil
			} else {
				s.TimetableSlotSyllabusChapterID = v.(*uuid.UUID)
			}
		case "timetable_slot_syllabus_topic_id":
			if v == nil {
				s.TimetableSlotSyllabusTopicID = nil
			} else {
				s.TimetableSlotSyllabusTopicID = v.(*uuid.UUID)
			}
		case "timetable_slot_lesson_plan":
			s.TimetableSlotLessonPlan = v.(*string)
		default:
			return fmt.Errorf("mock: kolom %q tidak dikenal", k)
		}
	}
	return nil
}

func (st *memSlotStore) Delete(_ context.Context, schoolID, slotID uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.slots[slotID]
	if !ok || s.TimetableSlotSchoolID != schoolID {
		return notFoundErrf("slot %s", slotID)
	}
	delete(st.slots, slotID)
	return nil
}

type memProgressStore struct {
	mu   sync.Mutex
	recs map[uuid.UUID]*m.TaughtProgressModel // key = slot id
}

func newMemProgressStore() *memProgressStore {
	return &memProgressStore{recs: map[uuid.UUID]*m.TaughtProgressModel{}}
}

func (st *memProgressStore) ListTaught(_ context.Context, schoolID, classID uuid.UUID, date time.Time) ([]m.TaughtProgressModel, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	day := dateOnly(date)
	var out []m.TaughtProgressModel
	for _, r := range st.recs {
		if r.TaughtProgressSchoolID == schoolID &&
			r.TaughtProgressClassID == classID &&
			r.TaughtProgressDate.Equal(day) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (st *memProgressStore) GetBySlot(_ context.Context, schoolID, slotID uuid.UUID) (*m.TaughtProgressModel, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	r, ok := st.recs[slotID]
	if !ok || r.TaughtProgressSchoolID != schoolID {
		return nil, notFoundErrf("taught record slot %s", slotID)
	}
	cp := *r
	return &cp, nil
}

func (st *memProgressStore) InsertTaught(_ context.Context, rec *m.TaughtProgressModel) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.recs[rec.TaughtProgressTimetableSlotID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if rec.TaughtProgressID == uuid.Nil {
		rec.TaughtProgressID = uuid.New()
	}
	cp := *rec
	st.recs[rec.TaughtProgressTimetableSlotID] = &cp
	return nil
}

func (st *memProgressStore) DeleteTaught(_ context.Context, schoolID, slotID uuid.UUID) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	r, ok := st.recs[slotID]
	if !ok || r.TaughtProgressSchoolID != schoolID {
		return false, nil
	}
	delete(st.recs, slotID)
	return true, nil
}

/* =======================================================
   Fixture helpers
   ======================================================= */

var (
	testSchoolID = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	testClassID  = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	testDate     = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
)

func mustTod(t string) dbtime.Tod {
	tod, err := dbtime.Parse(t)
	if err != nil {
		panic(err)
	}
	return tod
}

func testSlot(seq int, kind m.SlotKind, start, end string) m.TimetableSlotModel {
	return m.TimetableSlotModel{
		TimetableSlotID:             uuid.New(),
		TimetableSlotSchoolID:       testSchoolID,
		TimetableSlotClassID:        testClassID,
		TimetableSlotDate:           testDate,
		TimetableSlotSequenceNumber: seq,
		TimetableSlotKind:           kind,
		TimetableSlotStartTime:      mustTod(start),
		TimetableSlotEndTime:        mustTod(end),
	}
}
