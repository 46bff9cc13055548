package db

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/formbite/internal/testprep/entity"
)

type document struct {
	FullName        string             `json:"fullName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Tests           testsDocument      `json:"tests"`
	OtherTest       string             `json:"otherTest"`
	NotSureYet      bool               `json:"notSureYet"`
	TargetTestDate  string             `json:"targetTestDate,omitempty"`
	TakenBefore     string             `json:"takenBefore"`
	PreviousScore   string             `json:"previousScore,omitempty"`
	TargetScore     string             `json:"targetScore"`
	LookingFor      lookingForDocument `json:"lookingFor"`
	OtherLookingFor string             `json:"otherLookingFor"`
	CoachingMode    string             `json:"coachingMode"`
	AdditionalInfo  string             `json:"additionalInfo"`
}

type testsDocument struct {
	IELTS bool `json:"IELTS"`
	SAT   bool `json:"SAT"`
	LNAT  bool `json:"LNAT"`
	TOEFL bool `json:"TOEFL"`
}

type lookingForDocument struct {
	FullCourse       bool `json:"fullCourse"`
	SpecificCoaching bool `json:"specificCoaching"`
	PracticeTests    bool `json:"practiceTests"`
}

func newDocument(inq entity.TestPrepInquiry) document {
	return document{
		FullName:        inq.FullName,
		Email:           inq.Email,
		Phone:           inq.Phone,
		Tests:           testsDocument(inq.Tests),
		OtherTest:       inq.OtherTest,
		NotSureYet:      inq.NotSureYet,
		TargetTestDate:  inq.TargetTestDate,
		TakenBefore:     inq.TakenBefore,
		PreviousScore:   inq.PreviousScore,
		TargetScore:     inq.TargetScore,
		LookingFor:      lookingForDocument(inq.LookingFor),
		OtherLookingFor: inq.OtherLookingFor,
		CoachingMode:    inq.CoachingMode.String(),
		AdditionalInfo:  inq.AdditionalInfo,
	}
}

const queryInsertTestPrepInquiry = `
INSERT INTO testprep_inquiries (id, reference, document)
VALUES ($1, $2, $3)
RETURNING id, reference, created_at, updated_at`

func (s *DB) CreateTestPrepInquiry(ctx context.Context, in entity.NewTestPrepInquiry) (_ *entity.Submission, err error) {
	ctx, span := s.startSpan(ctx, "CreateTestPrepInquiry")
	defer func() { s.endSpan(span, err) }()

	doc, err := json.Marshal(newDocument(in.Inquiry))
	if err != nil {
		return nil, err
	}

	var sub entity.Submission
	err = s.conn.QueryRow(ctx, queryInsertTestPrepInquiry, in.ID, in.Reference, doc).
		Scan(&sub.ID, &sub.Reference, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &sub, nil
}
