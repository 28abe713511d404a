// file: internals/features/school/timetable/model/timetable_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/helpers/dbtime"
)

/* =======================================================
   Enum jenis slot (period = jam pelajaran, break = istirahat)
   ======================================================= */

type SlotKind string

const (
	SlotKindPeriod SlotKind = "period"
	SlotKindBreak  SlotKind = "break"
)

/* =======================================================
   TimetableSlotModel - map ke tabel timetable_slots
   Satu baris = satu interval terjadwal dalam sehari untuk
   satu kelas. sequence_number hanya untuk uniqueness di
   storage, BUKAN nomor urut tampilan (itu diturunkan saat
   read dari urutan start_time).
   ======================================================= */

type TimetableSlotModel struct {
	// PK
	TimetableSlotID uuid.UUID `json:"timetable_slot_id" gorm:"type:uuid;primaryKey;column:timetable_slot_id;default:gen_random_uuid()"`

	// Tenant / scope
	TimetableSlotSchoolID uuid.UUID `json:"timetable_slot_school_id" gorm:"type:uuid;not null;column:timetable_slot_school_id;uniqueIndex:uq_timetable_slot_day_seq"`

	// Partisi hari: kelas + tanggal
	TimetableSlotClassID uuid.UUID `json:"timetable_slot_class_id" gorm:"type:uuid;not null;column:timetable_slot_class_id;uniqueIndex:uq_timetable_slot_day_seq"`
	TimetableSlotDate    time.Time `json:"timetable_slot_date" gorm:"type:date;not null;column:timetable_slot_date;uniqueIndex:uq_timetable_slot_day_seq"`

	// Counter unik per hari (urutan emisi generator, bukan urutan tampilan)
	TimetableSlotSequenceNumber int `json:"timetable_slot_sequence_number" gorm:"type:int;not null;column:timetable_slot_sequence_number;uniqueIndex:uq_timetable_slot_day_seq"`

	// Jenis & label (name wajib untuk break, kosong untuk period)
	TimetableSlotKind SlotKind `json:"timetable_slot_kind" gorm:"type:text;not null;default:'period';column:timetable_slot_kind"`
	TimetableSlotName *string  `json:"timetable_slot_name,omitempty" gorm:"type:varchar(120);column:timetable_slot_name"`

	// Waktu pada tanggal tsb (end > start, tidak lintas hari)
	TimetableSlotStartTime dbtime.Tod `json:"timetable_slot_start_time" gorm:"type:time;not null;column:timetable_slot_start_time"`
	TimetableSlotEndTime   dbtime.Tod `json:"timetable_slot_end_time"   gorm:"type:time;not null;column:timetable_slot_end_time"`

	// Khusus period: pengampu & materi (diisi lewat edit setelah generate)
	TimetableSlotSubjectID *uuid.UUID `json:"timetable_slot_subject_id,omitempty" gorm:"type:uuid;column:timetable_slot_subject_id"`
	TimetableSlotTeacherID *uuid.UUID `json:"timetable_slot_teacher_id,omitempty" gorm:"type:uuid;column:timetable_slot_teacher_id"`

	// Referensi silabus: chapter XOR topic (maksimal salah satu terisi)
	TimetableSlotSyllabusChapterID *uuid.UUID `json:"timetable_slot_syllabus_chapter_id,omitempty" gorm:"type:uuid;column:timetable_slot_syllabus_chapter_id"`
	TimetableSlotSyllabusTopicID   *uuid.UUID `json:"timetable_slot_syllabus_topic_id,omitempty" gorm:"type:uuid;column:timetable_slot_syllabus_topic_id"`

	// Catatan rencana pembelajaran (opsional)
	TimetableSlotLessonPlan *string `json:"timetable_slot_lesson_plan,omitempty" gorm:"type:text;column:timetable_slot_lesson_plan"`

	// Audit
	TimetableSlotCreatedBy *uuid.UUID `json:"timetable_slot_created_by,omitempty" gorm:"type:uuid;column:timetable_slot_created_by"`

	// Timestamps eksplisit (auto create/update)
	TimetableSlotCreatedAt time.Time      `json:"timetable_slot_created_at" gorm:"column:timetable_slot_created_at;not null;autoCreateTime"`
	TimetableSlotUpdatedAt time.Time      `json:"timetable_slot_updated_at" gorm:"column:timetable_slot_updated_at;not null;autoUpdateTime"`
	TimetableSlotDeletedAt gorm.DeletedAt `json:"timetable_slot_deleted_at" gorm:"column:timetable_slot_deleted_at;index"`
}

/* =======================================================
   Table name
   ======================================================= */

func (TimetableSlotModel) TableName() string {
	return "timetable_slots"
}

// IsPeriod: true untuk slot jam pelajaran
func (m *TimetableSlotModel) IsPeriod() bool {
	return m.TimetableSlotKind == SlotKindPeriod
}
