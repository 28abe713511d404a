// file: internals/features/school/academics/directory/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	// Tenant guard
	SubjectSchoolID uuid.UUID `gorm:"type:uuid;not null;column:subject_school_id" json:"subject_school_id"`

	// Identitas
	SubjectCode *string `gorm:"type:varchar(40);column:subject_code" json:"subject_code,omitempty"`
	SubjectName string  `gorm:"type:varchar(160);not null;column:subject_name" json:"subject_name"`

	// Audit
	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
