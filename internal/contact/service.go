package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Service accepts form submissions. Logging is the only side effect: nothing
// is stored or forwarded.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Submit writes one log record for the submission and returns the id it was
// tagged with.
func (s *Service) Submit(ctx context.Context, sub Submission) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate submission id: %w", err)
	}

	s.logger.InfoContext(ctx, "new form submission",
		"submission_id", id.String(),
		"type", sub.Type,
		"name", sub.Name,
		"email", sub.Email,
		"message", sub.Message,
	)

	return id, nil
}
