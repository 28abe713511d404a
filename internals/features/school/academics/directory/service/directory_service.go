// file: internals/features/school/academics/directory/service/directory_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dm "sekolahku_backend/internals/features/school/academics/directory/model"
	timetableSvc "sekolahku_backend/internals/features/school/timetable/service"
)

/* =======================================================
   Directory lookup - nama subject/teacher untuk render
   jadwal. Id gantung tidak error: cukup tidak ada di map,
   presentasi yang menampilkan "unknown".
   ======================================================= */

type GormDirectory struct{ DB *gorm.DB }

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{DB: db}
}

var _ timetableSvc.DirectoryLookup = (*GormDirectory)(nil)

func (d *GormDirectory) SubjectNames(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []dm.SubjectModel
	err := d.DB.WithContext(ctx).
		Where("subject_school_id = ? AND subject_id IN ?", schoolID, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].SubjectID] = rows[i].SubjectName
	}
	return out, nil
}

func (d *GormDirectory) TeacherNames(ctx context.Context, schoolID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []dm.SchoolTeacherModel
	err := d.DB.WithContext(ctx).
		Where("school_teacher_school_id = ? AND school_teacher_id IN ?", schoolID, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].SchoolTeacherID] = fullTeacherName(&rows[i])
	}
	return out, nil
}

// fullTeacherName: "<prefix> <nama> <suffix>", bagian kosong dilewati
func fullTeacherName(t *dm.SchoolTeacherModel) string {
	parts := make([]string, 0, 3)
	if t.SchoolTeacherTitlePrefix != nil && strings.TrimSpace(*t.SchoolTeacherTitlePrefix) != "" {
		parts = append(parts, strings.TrimSpace(*t.SchoolTeacherTitlePrefix))
	}
	parts = append(parts, strings.TrimSpace(t.SchoolTeacherName))
	if t.SchoolTeacherTitleSuffix != nil && strings.TrimSpace(*t.SchoolTeacherTitleSuffix) != "" {
		parts = append(parts, strings.TrimSpace(*t.SchoolTeacherTitleSuffix))
	}
	return strings.Join(parts, " ")
}
