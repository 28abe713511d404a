// file: internals/features/school/timetable/model/taught_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   TaughtProgressModel - map ke tabel taught_progress
   Maksimal satu baris aktif per slot (mark = insert,
   unmark = delete). Kolom class/date/subject/teacher dan
   referensi silabus di-denormalisasi saat marking supaya
   reporting tidak perlu join balik ke timetable_slots.
   ======================================================= */

type TaughtProgressModel struct {
	// PK
	TaughtProgressID uuid.UUID `json:"taught_progress_id" gorm:"type:uuid;primaryKey;column:taught_progress_id;default:gen_random_uuid()"`

	// Tenant / scope + slot (unik bareng)
	TaughtProgressSchoolID        uuid.UUID `json:"taught_progress_school_id" gorm:"type:uuid;not null;column:taught_progress_school_id;uniqueIndex:uq_taught_progress_slot"`
	TaughtProgressTimetableSlotID uuid.UUID `json:"taught_progress_timetable_slot_id" gorm:"type:uuid;not null;column:taught_progress_timetable_slot_id;uniqueIndex:uq_taught_progress_slot"`

	// Denormalisasi dari slot (kondisi saat marking)
	TaughtProgressClassID   uuid.UUID  `json:"taught_progress_class_id" gorm:"type:uuid;not null;column:taught_progress_class_id"`
	TaughtProgressDate      time.Time  `json:"taught_progress_date" gorm:"type:date;not null;column:taught_progress_date"`
	TaughtProgressSubjectID *uuid.UUID `json:"taught_progress_subject_id,omitempty" gorm:"type:uuid;column:taught_progress_subject_id"`
	TaughtProgressTeacherID *uuid.UUID `json:"taught_progress_teacher_id,omitempty" gorm:"type:uuid;column:taught_progress_teacher_id"`

	// Referensi silabus (chapter XOR topic, ikut slot saat marking)
	TaughtProgressSyllabusChapterID *uuid.UUID `json:"taught_progress_syllabus_chapter_id,omitempty" gorm:"type:uuid;column:taught_progress_syllabus_chapter_id"`
	TaughtProgressSyllabusTopicID   *uuid.UUID `json:"taught_progress_syllabus_topic_id,omitempty" gorm:"type:uuid;column:taught_progress_syllabus_topic_id"`

	// Snapshot slot lengkap (JSON) untuk audit/reporting
	TaughtProgressSlotSnapshot datatypes.JSONMap `json:"taught_progress_slot_snapshot,omitempty" gorm:"type:jsonb;column:taught_progress_slot_snapshot"`

	// Siapa yang menandai
	TaughtProgressMarkedBy *uuid.UUID `json:"taught_progress_marked_by,omitempty" gorm:"type:uuid;column:taught_progress_marked_by"`

	// Timestamps
	TaughtProgressCreatedAt time.Time `json:"taught_progress_created_at" gorm:"column:taught_progress_created_at;not null;autoCreateTime"`
	TaughtProgressUpdatedAt time.Time `json:"taught_progress_updated_at" gorm:"column:taught_progress_updated_at;not null;autoUpdateTime"`
}

/* =======================================================
   Table name
   ======================================================= */

func (TaughtProgressModel) TableName() string {
	return "taught_progress"
}

// NewTaughtProgressFromSlot membangun record dari kondisi slot saat marking.
func NewTaughtProgressFromSlot(slot *TimetableSlotModel, markedBy *uuid.UUID) TaughtProgressModel {
	snap := datatypes.JSONMap{
		"timetable_slot_id": slot.TimetableSlotID.String(),
		"kind":              string(slot.TimetableSlotKind),
		"start_time":        slot.TimetableSlotStartTime.String(),
		"end_time":          slot.TimetableSlotEndTime.String(),
	}
	putUUID(snap, "subject_id", slot.TimetableSlotSubjectID)
	putUUID(snap, "teacher_id", slot.TimetableSlotTeacherID)
	putUUID(snap, "syllabus_chapter_id", slot.TimetableSlotSyllabusChapterID)
	putUUID(snap, "syllabus_topic_id", slot.TimetableSlotSyllabusTopicID)

	return TaughtProgressModel{
		TaughtProgressSchoolID:          slot.TimetableSlotSchoolID,
		TaughtProgressTimetableSlotID:   slot.TimetableSlotID,
		TaughtProgressClassID:           slot.TimetableSlotClassID,
		TaughtProgressDate:              slot.TimetableSlotDate,
		TaughtProgressSubjectID:         slot.TimetableSlotSubjectID,
		TaughtProgressTeacherID:         slot.TimetableSlotTeacherID,
		TaughtProgressSyllabusChapterID: slot.TimetableSlotSyllabusChapterID,
		TaughtProgressSyllabusTopicID:   slot.TimetableSlotSyllabusTopicID,
		TaughtProgressSlotSnapshot:      snap,
		TaughtProgressMarkedBy:          markedBy,
	}
}

func putUUID(m datatypes.JSONMap, key string, v *uuid.UUID) {
	if v != nil && *v != uuid.Nil {
		m[key] = v.String()
	}
}
