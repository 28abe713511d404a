// file: internals/features/school/academics/directory/model/school_teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolTeacherModel struct {
	// PK
	SchoolTeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_teacher_id" json:"school_teacher_id"`

	// Tenant guard
	SchoolTeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;column:school_teacher_school_id" json:"school_teacher_school_id"`

	// Identitas
	SchoolTeacherCode *string `gorm:"type:varchar(40);column:school_teacher_code" json:"school_teacher_code,omitempty"`
	SchoolTeacherName string  `gorm:"type:varchar(160);not null;column:school_teacher_name" json:"school_teacher_name"`

	// Gelar opsional (dipakai saat render nama lengkap)
	SchoolTeacherTitlePrefix *string `gorm:"type:varchar(40);column:school_teacher_title_prefix" json:"school_teacher_title_prefix,omitempty"`
	SchoolTeacherTitleSuffix *string `gorm:"type:varchar(40);column:school_teacher_title_suffix" json:"school_teacher_title_suffix,omitempty"`

	// Audit
	SchoolTeacherCreatedAt time.Time      `gorm:"column:school_teacher_created_at;not null;autoCreateTime" json:"school_teacher_created_at"`
	SchoolTeacherUpdatedAt time.Time      `gorm:"column:school_teacher_updated_at;not null;autoUpdateTime" json:"school_teacher_updated_at"`
	SchoolTeacherDeletedAt gorm.DeletedAt `gorm:"column:school_teacher_deleted_at;index" json:"school_teacher_deleted_at,omitempty"`
}

func (SchoolTeacherModel) TableName() string {
	return "school_teachers"
}
