// file: internals/features/school/academics/holidays/dto/school_holiday_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	hm "sekolahku_backend/internals/features/school/academics/holidays/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateSchoolHolidayRequest struct {
	SchoolHolidayClassID           *string `json:"school_holiday_class_id,omitempty" validate:"omitempty,uuid4"`
	SchoolHolidayStartDate         string  `json:"school_holiday_start_date"         validate:"required"`
	SchoolHolidayEndDate           string  `json:"school_holiday_end_date"           validate:"required"`
	SchoolHolidayTitle             string  `json:"school_holiday_title"              validate:"required,max=200"`
	SchoolHolidayReason            *string `json:"school_holiday_reason,omitempty"`
	SchoolHolidayIsRecurringYearly bool    `json:"school_holiday_is_recurring_yearly"`
}

func (r *CreateSchoolHolidayRequest) ToModel(schoolID uuid.UUID) (*hm.SchoolHolidayModel, error) {
	start, err := parseDate(r.SchoolHolidayStartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.SchoolHolidayEndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, errors.New("end_date tidak boleh sebelum start_date")
	}

	var classID *uuid.UUID
	if r.SchoolHolidayClassID != nil && strings.TrimSpace(*r.SchoolHolidayClassID) != "" {
		id, er := uuid.Parse(strings.TrimSpace(*r.SchoolHolidayClassID))
		if er != nil {
			return nil, er
		}
		classID = &id
	}

	return &hm.SchoolHolidayModel{
		SchoolHolidaySchoolID:          schoolID,
		SchoolHolidayClassID:           classID,
		SchoolHolidayStartDate:         start,
		SchoolHolidayEndDate:           end,
		SchoolHolidayTitle:             strings.TrimSpace(r.SchoolHolidayTitle),
		SchoolHolidayReason:            r.SchoolHolidayReason,
		SchoolHolidayIsActive:          true,
		SchoolHolidayIsRecurringYearly: r.SchoolHolidayIsRecurringYearly,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("tanggal harus format YYYY-MM-DD")
	}
	return d, nil
}

/* =======================================================
   Response DTOs
   ======================================================= */

type SchoolHolidayResponse struct {
	SchoolHolidayID                uuid.UUID  `json:"school_holiday_id"`
	SchoolHolidayClassID           *uuid.UUID `json:"school_holiday_class_id,omitempty"`
	SchoolHolidayStartDate         string     `json:"school_holiday_start_date"`
	SchoolHolidayEndDate           string     `json:"school_holiday_end_date"`
	SchoolHolidayTitle             string     `json:"school_holiday_title"`
	SchoolHolidayReason            *string    `json:"school_holiday_reason,omitempty"`
	SchoolHolidayIsActive          bool       `json:"school_holiday_is_active"`
	SchoolHolidayIsRecurringYearly bool       `json:"school_holiday_is_recurring_yearly"`
}

func NewSchoolHolidayResponse(h *hm.SchoolHolidayModel) SchoolHolidayResponse {
	return SchoolHolidayResponse{
		SchoolHolidayID:                h.SchoolHolidayID,
		SchoolHolidayClassID:           h.SchoolHolidayClassID,
		SchoolHolidayStartDate:         h.SchoolHolidayStartDate.Format("2006-01-02"),
		SchoolHolidayEndDate:           h.SchoolHolidayEndDate.Format("2006-01-02"),
		SchoolHolidayTitle:             h.SchoolHolidayTitle,
		SchoolHolidayReason:            h.SchoolHolidayReason,
		SchoolHolidayIsActive:          h.SchoolHolidayIsActive,
		SchoolHolidayIsRecurringYearly: h.SchoolHolidayIsRecurringYearly,
	}
}
