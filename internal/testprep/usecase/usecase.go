package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
	"github.com/shandysiswandi/formbite/internal/testprep/entity"
	"go.opentelemetry.io/otel/trace"
)

type TestPrepSubmittedEvent struct {
	ID           int64
	Reference    string
	FullName     string
	Email        string
	Tests        []string
	CoachingMode string
	CreatedAt    time.Time
}

type repoMessaging interface {
	PublishTestPrepSubmitted(ctx context.Context, msg TestPrepSubmittedEvent) error
}

type repoDB interface {
	CreateTestPrepInquiry(ctx context.Context, in entity.NewTestPrepInquiry) (*entity.Submission, error)
	GetSubmissionByReference(ctx context.Context, reference string) (*entity.Submission, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	uid           uid.NumberID
	ref           uid.StringID
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	UID           uid.NumberID
	Reference     uid.StringID
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		uid:           dep.UID,
		ref:           dep.Reference,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("testprep.usecase").Start(ctx, name)
}
