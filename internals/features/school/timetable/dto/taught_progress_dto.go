// file: internals/features/school/timetable/dto/taught_progress_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

// Body opsional untuk mark: override referensi silabus
// (chapter XOR topic - XOR-nya dicek service).
type MarkTaughtRequest struct {
	SyllabusChapterID *string `json:"syllabus_chapter_id,omitempty" validate:"omitempty,uuid4"`
	SyllabusTopicID   *string `json:"syllabus_topic_id,omitempty"   validate:"omitempty,uuid4"`
}

func (r *MarkTaughtRequest) SyllabusRefs() (chapterID, topicID *uuid.UUID, err error) {
	chapterID, err = uuidPtrFromString(r.SyllabusChapterID)
	if err != nil {
		return nil, nil, err
	}
	topicID, err = uuidPtrFromString(r.SyllabusTopicID)
	if err != nil {
		return nil, nil, err
	}
	return chapterID, topicID, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type TaughtProgressResponse struct {
	TaughtProgressID                uuid.UUID  `json:"taught_progress_id"`
	TaughtProgressTimetableSlotID   uuid.UUID  `json:"taught_progress_timetable_slot_id"`
	TaughtProgressClassID           uuid.UUID  `json:"taught_progress_class_id"`
	TaughtProgressDate              string     `json:"taught_progress_date"`
	TaughtProgressSubjectID         *uuid.UUID `json:"taught_progress_subject_id,omitempty"`
	TaughtProgressTeacherID         *uuid.UUID `json:"taught_progress_teacher_id,omitempty"`
	TaughtProgressSyllabusChapterID *uuid.UUID `json:"taught_progress_syllabus_chapter_id,omitempty"`
	TaughtProgressSyllabusTopicID   *uuid.UUID `json:"taught_progress_syllabus_topic_id,omitempty"`
	TaughtProgressMarkedBy          *uuid.UUID `json:"taught_progress_marked_by,omitempty"`
	TaughtProgressCreatedAt         time.Time  `json:"taught_progress_created_at"`
}

func NewTaughtProgressResponse(rec *m.TaughtProgressModel) TaughtProgressResponse {
	return TaughtProgressResponse{
		TaughtProgressID:                rec.TaughtProgressID,
		TaughtProgressTimetableSlotID:   rec.TaughtProgressTimetableSlotID,
		TaughtProgressClassID:           rec.TaughtProgressClassID,
		TaughtProgressDate:              rec.TaughtProgressDate.Format("2006-01-02"),
		TaughtProgressSubjectID:         rec.TaughtProgressSubjectID,
		TaughtProgressTeacherID:         rec.TaughtProgressTeacherID,
		TaughtProgressSyllabusChapterID: rec.TaughtProgressSyllabusChapterID,
		TaughtProgressSyllabusTopicID:   rec.TaughtProgressSyllabusTopicID,
		TaughtProgressMarkedBy:          rec.TaughtProgressMarkedBy,
		TaughtProgressCreatedAt:         rec.TaughtProgressCreatedAt,
	}
}
