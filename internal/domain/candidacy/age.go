package candidacy

import (
	"fmt"
	"strings"
	"time"
)

const birthDateLayout = "2006-01-02"

// ParseBirthDate acepta YYYY-MM-DD.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("birth date required: %w", ErrInvalidInput)
	}
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("birth date must be YYYY-MM-DD: %w", ErrInvalidInput)
	}
	return t, nil
}

// AgeAt devuelve los años cumplidos a la fecha at.
// Compara fechas de calendario: de birth solo cuenta Y/M/D, y at se lee en su propia zona.
// Si birth es posterior a at el resultado es negativo; no se corrige.
func AgeAt(birth, at time.Time) int {
	by, bm, bd := birth.Date()
	ay, am, ad := at.Date()

	age := ay - by
	if am < bm || (am == bm && ad < bd) {
		age--
	}
	return age
}
