package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formbite/internal/testprep/entity"
)

type OptionsOutput struct {
	Tests         []string
	LookingFor    []string
	CoachingModes []string
	TakenBefore   []string
}

// Options returns the enumerations a form needs to render its choices.
func (s *Usecase) Options(ctx context.Context) *OptionsOutput {
	_, span := s.startSpan(ctx, "Options")
	defer span.End()

	return &OptionsOutput{
		Tests:      append([]string(nil), entity.TestNames...),
		LookingFor: append([]string(nil), entity.ServiceNames...),
		CoachingModes: lo.Map(entity.CoachingModes, func(m entity.CoachingMode, _ int) string {
			return m.String()
		}),
		TakenBefore: append([]string(nil), entity.TakenBefore...),
	}
}
