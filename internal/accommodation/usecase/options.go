package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
)

type OptionsOutput struct {
	Budgets               []string
	AccommodationTypes    []string
	Dependents            []string
	MaxAccommodationTypes int
}

// Options returns the enumerations a form needs to render its choices.
func (s *Usecase) Options(ctx context.Context) *OptionsOutput {
	_, span := s.startSpan(ctx, "Options")
	defer span.End()

	return &OptionsOutput{
		Budgets: lo.Map(entity.Budgets, func(b entity.Budget, _ int) string {
			return b.String()
		}),
		AccommodationTypes: lo.Map(entity.AccommodationTypes, func(t entity.AccommodationType, _ int) string {
			return t.String()
		}),
		Dependents:            append([]string(nil), entity.Dependents...),
		MaxAccommodationTypes: entity.MaxAccommodationTypes,
	}
}
