package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/formbite/internal/accommodation/entity"
	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepoDB struct {
	mock.Mock
}

func (m *mockRepoDB) CreateAccommodationRequest(ctx context.Context, in entity.NewAccommodationRequest) (*entity.Submission, error) {
	args := m.Called(ctx, in)
	sub, _ := args.Get(0).(*entity.Submission)
	return sub, args.Error(1)
}

func (m *mockRepoDB) GetSubmissionByReference(ctx context.Context, reference string) (*entity.Submission, error) {
	args := m.Called(ctx, reference)
	sub, _ := args.Get(0).(*entity.Submission)
	return sub, args.Error(1)
}

type mockRepoMessaging struct {
	mock.Mock
}

func (m *mockRepoMessaging) PublishAccommodationSubmitted(ctx context.Context, msg AccommodationSubmittedEvent) error {
	return m.Called(ctx, msg).Error(0)
}

type seqNumberID struct {
	next int64
}

func (s *seqNumberID) Generate() int64 {
	s.next++
	return s.next
}

type seqReference struct {
	refs []string
	i    int
}

func (s *seqReference) Generate() string {
	ref := s.refs[s.i%len(s.refs)]
	s.i++
	return ref
}

type fixture struct {
	uc  *Usecase
	db  *mockRepoDB
	msg *mockRepoMessaging
}

func newFixture(t *testing.T, idemp idempotency.Idempotency, refs ...string) fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	if len(refs) == 0 {
		refs = []string{"ACC-3F9K2QX7PL"}
	}
	if idemp == nil {
		idemp = idempotency.Noop{}
	}

	f := fixture{db: &mockRepoDB{}, msg: &mockRepoMessaging{}}
	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.msg,
		Idempotency:   idemp,
		Validator:     v,
		UID:           &seqNumberID{next: 1000},
		Reference:     &seqReference{refs: refs},
		Instrument:    instrument.NewNoop(),
	})

	t.Cleanup(func() {
		f.db.AssertExpectations(t)
		f.msg.AssertExpectations(t)
	})

	return f
}

func validInput() AccommodationInput {
	return AccommodationInput{
		FullName:          "Amara Okafor",
		Email:             "amara.okafor@example.com",
		Contact:           "+44 7700 900123",
		UniversityCity:    "Manchester",
		MoveInMonth:       "September",
		MoveInYear:        "2026",
		Budget:            "£500–£700",
		AccommodationType: []string{"Ensuite", "Studio"},
		Dependents:        "No",
	}
}
