package candidacy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"volunteer-candidacy/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service no guarda estado entre llamadas; es seguro usarlo desde varias goroutines.
type Service struct {
	log logger.Logger
	now func() time.Time
}

func NewService(log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		log: log.With(map[string]any{"module": "candidacy"}),
		now: time.Now,
	}
}

type EvaluateInput struct {
	LikesAnimals bool
	Age          int
}

func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) (Candidacy, error) {
	if err := ctx.Err(); err != nil {
		return Candidacy{}, err
	}

	c := Candidacy{
		ID:           uuid.NewString(),
		LikesAnimals: in.LikesAnimals,
		Age:          in.Age,
		Status:       StatusFor(in.LikesAnimals, in.Age),
		EvaluatedAt:  s.now(),
	}

	s.log.Debug("candidacy evaluated", map[string]any{
		"candidacy_id":  c.ID,
		"likes_animals": c.LikesAnimals,
		"age":           c.Age,
		"status":        string(c.Status),
	})
	return c, nil
}

// EvaluateBirthDate calcula la edad a partir de la fecha de nacimiento (YYYY-MM-DD)
// usando el reloj del servicio y luego evalúa igual que Evaluate.
func (s *Service) EvaluateBirthDate(ctx context.Context, likesAnimals bool, birthDate string) (Candidacy, error) {
	birth, err := ParseBirthDate(birthDate)
	if err != nil {
		s.log.Warn("candidacy rejected input", map[string]any{"error": err.Error()})
		return Candidacy{}, err
	}

	return s.Evaluate(ctx, EvaluateInput{
		LikesAnimals: likesAnimals,
		Age:          AgeAt(birth, s.now()),
	})
}
