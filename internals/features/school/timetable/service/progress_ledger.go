// file: internals/features/school/timetable/service/progress_ledger.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Taught-progress ledger - toggle "slot ini sudah diajar"
   yang idempoten. Dua state per slot (belum/sudah), dua
   transisi (mark/unmark), dua-duanya aman diulang.
   ======================================================= */

type ProgressLedger struct {
	Slots    SlotStore
	Progress ProgressStore
}

func NewProgressLedger(slots SlotStore, progress ProgressStore) *ProgressLedger {
	return &ProgressLedger{Slots: slots, Progress: progress}
}

// MarkTaught: kalau record sudah ada → no-op, balikin yang lama.
// Kalau belum: denormalisasi class/date/subject/teacher + referensi
// silabus dari kondisi slot SAAT INI, lalu insert. Override silabus
// opsional (chapter XOR topic).
func (l *ProgressLedger) MarkTaught(
	ctx context.Context,
	schoolID, slotID uuid.UUID,
	chapterID, topicID *uuid.UUID,
	markedBy *uuid.UUID,
) (*m.TaughtProgressModel, bool, error) {
	if chapterID != nil && topicID != nil {
		return nil, false, validationErrf("referensi silabus harus chapter ATAU topic, bukan dua-duanya")
	}

	if existing, err := l.Progress.GetBySlot(ctx, schoolID, slotID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	slot, err := l.Slots.GetByID(ctx, schoolID, slotID)
	if err != nil {
		return nil, false, err
	}
	if (chapterID != nil || topicID != nil) && !slot.IsPeriod() {
		return nil, false, validationErrf("referensi silabus hanya untuk slot period")
	}

	rec := m.NewTaughtProgressFromSlot(slot, markedBy)
	if chapterID != nil {
		rec.TaughtProgressSyllabusChapterID = chapterID
		rec.TaughtProgressSyllabusTopicID = nil
	}
	if topicID != nil {
		rec.TaughtProgressSyllabusTopicID = topicID
		rec.TaughtProgressSyllabusChapterID = nil
	}

	if err := l.Progress.InsertTaught(ctx, &rec); err != nil {
		// Balapan mark vs mark: unique (school, slot) nolak insert kedua,
		// record yang menang yang dipakai.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, er2 := l.Progress.GetBySlot(ctx, schoolID, slotID); er2 == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	return &rec, true, nil
}

// UnmarkTaught: hapus record kalau ada; tidak ada → no-op tanpa error.
func (l *ProgressLedger) UnmarkTaught(ctx context.Context, schoolID, slotID uuid.UUID) (bool, error) {
	return l.Progress.DeleteTaught(ctx, schoolID, slotID)
}

// GetTaughtSet: himpunan slot id yang punya record aktif di hari itu.
func (l *ProgressLedger) GetTaughtSet(ctx context.Context, schoolID, classID uuid.UUID, date time.Time) (map[uuid.UUID]struct{}, error) {
	rows, err := l.Progress.ListTaught(ctx, schoolID, classID, date)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]struct{}, len(rows))
	for i := range rows {
		out[rows[i].TaughtProgressTimetableSlotID] = struct{}{}
	}
	return out, nil
}
