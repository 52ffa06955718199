// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueCoachingDigest queues a weekly coaching digest email.
func (s *Service) QueueCoachingDigest(ctx context.Context, input adapter.QueueCoachingDigestInput) error {
	subject := "Your Weekly Cash Coach Digest"

	templateData := map[string]interface{}{
		"user_name":         input.UserName,
		"top_category":      input.TopCategory,
		"top_amount":        input.TopAmount,
		"recommendations":   input.Recommendations,
		"insights":          input.Insights,
		"savings_potential": input.SavingsPotential,
	}

	job := entity.NewEmailJob(
		entity.TemplateCoachingDigest,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue coaching digest email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
