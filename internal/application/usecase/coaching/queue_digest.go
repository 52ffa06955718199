package coaching

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashcoach/backend/internal/application/adapter"
	"github.com/cashcoach/backend/internal/domain/entity"
)

// QueueDigestInput represents the input for queueing a coaching digest email.
type QueueDigestInput struct {
	UserID uuid.UUID
}

// QueueDigestUseCase renders the user's current coaching report into a
// digest email job. The actual sending happens asynchronously in the email
// worker.
type QueueDigestUseCase struct {
	getReport    *GetReportUseCase
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewQueueDigestUseCase creates a new QueueDigestUseCase instance.
func NewQueueDigestUseCase(
	getReport *GetReportUseCase,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *QueueDigestUseCase {
	return &QueueDigestUseCase{
		getReport:    getReport,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute queues a digest email built from the user's current report.
func (uc *QueueDigestUseCase) Execute(ctx context.Context, input QueueDigestInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	reportOut, err := uc.getReport.Execute(ctx, GetReportInput{UserID: input.UserID})
	if err != nil {
		return err
	}
	report := reportOut.Report

	digest := adapter.QueueCoachingDigestInput{
		UserEmail: user.Email,
		UserName:  user.Name,
	}

	if len(report.Patterns) > 0 {
		digest.TopCategory = report.Patterns[0].Category
		digest.TopAmount = report.Patterns[0].Amount.StringFixed(2)
	}

	for _, rec := range report.Recommendations {
		digest.Recommendations = append(digest.Recommendations, rec.Title)
	}
	for _, in := range report.Insights {
		digest.Insights = append(digest.Insights, in.Title)
	}

	digest.SavingsPotential = totalPotentialSavings(report).StringFixed(2)

	return uc.emailService.QueueCoachingDigest(ctx, digest)
}

// totalPotentialSavings sums the positive potential savings across the
// report's recommendations. Negative values (budget headroom) are excluded
// from the digest headline.
func totalPotentialSavings(report *entity.CoachingReport) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range report.Recommendations {
		if rec.PotentialSavings.IsPositive() {
			total = total.Add(rec.PotentialSavings)
		}
	}
	return total
}
