// file: internals/features/school/timetable/service/errors.go
package service

import (
	"errors"
	"fmt"
)

/* =======================================================
   Taksonomi error engine. Controller memetakan ke HTTP
   lewat errors.Is; service tidak pernah menelan error
   store diam-diam.
   ======================================================= */

var (
	// ErrValidation: request ditolak sebelum ada write, caller perbaiki input
	ErrValidation = errors.New("validasi gagal")

	// ErrConflict: hari sudah berisi slot / tabrakan unik di storage
	ErrConflict = errors.New("konflik data")

	// ErrNotFound: slot/record sudah tidak ada
	ErrNotFound = errors.New("data tidak ditemukan")
)

func validationErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func notFoundErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
