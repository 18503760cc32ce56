package candidacy

import "time"

// Status es el estado de una candidatura.
// @Enum approved, rejected
type Status string

const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Candidacy es el resultado de evaluar una candidatura de voluntario.
type Candidacy struct {
	ID string

	LikesAnimals bool
	Age          int // años cumplidos

	Status      Status
	EvaluatedAt time.Time
}

func (c Candidacy) IsApproved() bool {
	return c.Status == StatusApproved
}
