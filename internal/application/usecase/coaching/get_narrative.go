package coaching

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashcoach/backend/internal/application/adapter"
	domainerror "github.com/cashcoach/backend/internal/domain/error"
)

// GetNarrativeInput represents the input for generating a coach narrative.
type GetNarrativeInput struct {
	UserID uuid.UUID
}

// GetNarrativeOutput represents the output of generating a coach narrative.
type GetNarrativeOutput struct {
	Narrative string
}

// GetNarrativeUseCase produces a natural-language summary of the user's
// current coaching report via the narrative service.
type GetNarrativeUseCase struct {
	getReport *GetReportUseCase
	userRepo  adapter.UserRepository
	narrative adapter.NarrativeService
}

// NewGetNarrativeUseCase creates a new GetNarrativeUseCase instance.
func NewGetNarrativeUseCase(
	getReport *GetReportUseCase,
	userRepo adapter.UserRepository,
	narrative adapter.NarrativeService,
) *GetNarrativeUseCase {
	return &GetNarrativeUseCase{
		getReport: getReport,
		userRepo:  userRepo,
		narrative: narrative,
	}
}

// Execute generates the narrative for the user's current report.
func (uc *GetNarrativeUseCase) Execute(ctx context.Context, input GetNarrativeInput) (*GetNarrativeOutput, error) {
	if uc.narrative == nil || !uc.narrative.IsAvailable() {
		return nil, domainerror.NewCoachingError(
			domainerror.ErrCodeNarrativeUnavailable,
			"coach narrative service is not available",
			domainerror.ErrNarrativeUnavailable,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	reportOut, err := uc.getReport.Execute(ctx, GetReportInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	summary, err := uc.narrative.Summarize(ctx, user.Name, reportOut.Report)
	if err != nil {
		return nil, domainerror.NewCoachingError(
			domainerror.ErrCodeNarrativeGenerationFailed,
			"failed to generate coach narrative",
			err,
		)
	}

	return &GetNarrativeOutput{Narrative: summary}, nil
}
