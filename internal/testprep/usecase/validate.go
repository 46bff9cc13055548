package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/formbite/internal/pkg/goerror"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
	"github.com/shandysiswandi/formbite/internal/testprep/entity"
)

type TestPrepInput struct {
	FullName        string `validate:"required,min=2"`
	Email           string `validate:"required,formemail"`
	Phone           string `validate:"required"`
	Tests           entity.Tests
	OtherTest       string
	NotSureYet      bool
	TargetTestDate  string
	TakenBefore     string `validate:"required,oneof=Yes No"`
	PreviousScore   string
	TargetScore     string `validate:"required"`
	LookingFor      entity.LookingFor
	OtherLookingFor string
	CoachingMode    string `validate:"required,oneof=Online In-person Both"`
	AdditionalInfo  string
}

var testPrepMessages = map[string]string{
	"fullName.required":     "Full name is required",
	"fullName.min":          "Full name must be at least 2 characters",
	"email.required":        "Email is required",
	"email.formemail":       "Please provide a valid email address",
	"phone.required":        "Phone number is required",
	"takenBefore.required":  "Please specify if you have taken the test before",
	"takenBefore.oneof":     "Please select either Yes or No for taken before",
	"targetScore.required":  "Target score is required",
	"coachingMode.required": "Please select a coaching mode preference",
	"coachingMode.oneof":    "{VALUE} is not a valid coaching mode",
}

func (TestPrepInput) ValidationMessages() map[string]string {
	return testPrepMessages
}

// normalize trims free text and lower-cases the email. A previous score
// given together with takenBefore "No" is dropped.
func (in TestPrepInput) normalize() TestPrepInput {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.OtherTest = strings.TrimSpace(in.OtherTest)
	in.TargetTestDate = strings.TrimSpace(in.TargetTestDate)
	in.TakenBefore = strings.TrimSpace(in.TakenBefore)
	in.PreviousScore = strings.TrimSpace(in.PreviousScore)
	in.TargetScore = strings.TrimSpace(in.TargetScore)
	in.OtherLookingFor = strings.TrimSpace(in.OtherLookingFor)
	in.CoachingMode = strings.TrimSpace(in.CoachingMode)
	in.AdditionalInfo = strings.TrimSpace(in.AdditionalInfo)

	if in.TakenBefore == entity.AnswerNo {
		in.PreviousScore = ""
	}

	return in
}

var testPrepRules = []validator.Rule[TestPrepInput]{
	validator.When("targetTestDate", "Please select a target test date or check 'Not sure yet'", func(in TestPrepInput) bool {
		return !in.NotSureYet && validator.Blank(in.TargetTestDate)
	}),
	validator.When("previousScore", "Previous score is required since you indicated you have taken the test before", func(in TestPrepInput) bool {
		return in.TakenBefore == entity.AnswerYes && validator.Blank(in.PreviousScore)
	}),
	validator.When("tests", "Please select at least one test type or specify in 'Other'", func(in TestPrepInput) bool {
		t := in.Tests
		return !validator.AnyOrText(in.OtherTest, t.IELTS, t.SAT, t.LNAT, t.TOEFL)
	}),
	validator.When("lookingFor", "Please select at least one service you are looking for", func(in TestPrepInput) bool {
		l := in.LookingFor
		return !validator.AnyOrText(in.OtherLookingFor, l.FullCourse, l.SpecificCoaching, l.PracticeTests)
	}),
}

// Validate checks a test preparation inquiry and returns the normalized record.
// Cross-field rules run even when field-level checks fail.
func (s *Usecase) Validate(ctx context.Context, in TestPrepInput) (*entity.TestPrepInquiry, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	return s.validate(ctx, in)
}

func (s *Usecase) validate(ctx context.Context, in TestPrepInput) (*entity.TestPrepInquiry, error) {
	in = in.normalize()

	if err := validator.Check(s.validator, in, testPrepRules...); err != nil {
		var fieldErrs validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, goerror.NewInvalidInput(fieldErrs)
		}

		slog.ErrorContext(ctx, "failed to run test prep validation", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &entity.TestPrepInquiry{
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		Tests:           in.Tests,
		OtherTest:       in.OtherTest,
		NotSureYet:      in.NotSureYet,
		TargetTestDate:  in.TargetTestDate,
		TakenBefore:     in.TakenBefore,
		PreviousScore:   in.PreviousScore,
		TargetScore:     in.TargetScore,
		LookingFor:      in.LookingFor,
		OtherLookingFor: in.OtherLookingFor,
		CoachingMode:    entity.CoachingMode(in.CoachingMode),
		AdditionalInfo:  in.AdditionalInfo,
	}, nil
}
