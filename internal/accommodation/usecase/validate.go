package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
)

type AccommodationInput struct {
	FullName          string `validate:"required"`
	Email             string `validate:"required,formemail"`
	Contact           string `validate:"required"`
	UniversityCity    string `validate:"required"`
	MoveInMonth       string `validate:"required"`
	MoveInYear        string `validate:"required"`
	Budget            string `validate:"required"`
	AccommodationType []string
	Dependents        string `validate:"required,oneof=Yes No"`
}

var accommodationMessages = map[string]string{
	"fullName.required":       "Full name is required",
	"email.required":          "Email is required",
	"email.formemail":         "Invalid email format",
	"contact.required":        "Contact info (email or WhatsApp) is required",
	"universityCity.required": "University or city is required",
	"moveInMonth.required":    "Move-in month is required",
	"moveInYear.required":     "Move-in year is required",
	"budget.required":         "Budget is required",
	"dependents.required":     "Dependents status is required",
	"dependents.oneof":        "{VALUE} is not a valid dependents status",
}

func (AccommodationInput) ValidationMessages() map[string]string {
	return accommodationMessages
}

// normalize trims every free-text field and drops repeated accommodation
// types. Email keeps its case.
func (in AccommodationInput) normalize() AccommodationInput {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Contact = strings.TrimSpace(in.Contact)
	in.UniversityCity = strings.TrimSpace(in.UniversityCity)
	in.MoveInMonth = strings.TrimSpace(in.MoveInMonth)
	in.MoveInYear = strings.TrimSpace(in.MoveInYear)
	in.Budget = strings.TrimSpace(in.Budget)
	in.Dependents = strings.TrimSpace(in.Dependents)
	in.AccommodationType = lo.Uniq(lo.Map(in.AccommodationType, func(t string, _ int) string {
		return strings.TrimSpace(t)
	}))

	return in
}

var budgetList = strings.Join(lo.Map(entity.Budgets, func(b entity.Budget, _ int) string {
	return b.String()
}), ", ")

var accommodationRules = []validator.Rule[AccommodationInput]{
	validator.When("budget", "Budget must be one of: "+budgetList, func(in AccommodationInput) bool {
		return in.Budget != "" && !lo.Contains(entity.Budgets, entity.Budget(in.Budget))
	}),
	func(in AccommodationInput) validator.FieldErrors {
		var errs validator.FieldErrors
		for _, t := range in.AccommodationType {
			if !lo.Contains(entity.AccommodationTypes, entity.AccommodationType(t)) {
				errs = append(errs, validator.FieldError{
					Field:   "accommodationType",
					Message: fmt.Sprintf("%q is not a valid accommodation type", t),
				})
			}
		}
		return errs
	},
	validator.When("accommodationType", "At least one accommodation type must be selected", func(in AccommodationInput) bool {
		return len(in.AccommodationType) == 0
	}),
	validator.When("accommodationType", "A maximum of two accommodation types can be selected", func(in AccommodationInput) bool {
		return len(in.AccommodationType) > entity.MaxAccommodationTypes
	}),
}

// Validate checks an accommodation form and returns the normalized request.
// Every violation is reported, field-level checks first.
func (s *Usecase) Validate(ctx context.Context, in AccommodationInput) (*entity.AccommodationRequest, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	return s.validate(ctx, in)
}

func (s *Usecase) validate(ctx context.Context, in AccommodationInput) (*entity.AccommodationRequest, error) {
	in = in.normalize()

	if err := validator.Check(s.validator, in, accommodationRules...); err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, goerror.NewInvalidInput(fieldErrs)
		}

		slog.ErrorContext(ctx, "failed to run accommodation validation", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &entity.AccommodationRequest{
		FullName:       in.FullName,
		Email:          in.Email,
		Contact:        in.Contact,
		UniversityCity: in.UniversityCity,
		MoveInMonth:    in.MoveInMonth,
		MoveInYear:     in.MoveInYear,
		Budget:         entity.Budget(in.Budget),
		AccommodationType: lo.Map(in.AccommodationType, func(t string, _ int) entity.AccommodationType {
			return entity.AccommodationType(t)
		}),
		Dependents: in.Dependents,
	}, nil
}
