package inbound

import (
	"net/http"
	"time"
)

// HeaderIdempotencyKey lets a client retry a submission without storing it twice.
const HeaderIdempotencyKey = "Idempotency-Key"

type TestsRequest struct {
	IELTS bool `json:"IELTS"`
	SAT   bool `json:"SAT"`
	LNAT  bool `json:"LNAT"`
	TOEFL bool `json:"TOEFL"`
}

type LookingForRequest struct {
	FullCourse       bool `json:"fullCourse"`
	SpecificCoaching bool `json:"specificCoaching"`
	PracticeTests    bool `json:"practiceTests"`
}

type TestPrepRequest struct {
	FullName        string            `json:"fullName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Tests           TestsRequest      `json:"tests"`
	OtherTest       string            `json:"otherTest"`
	NotSureYet      bool              `json:"notSureYet"`
	TargetTestDate  string            `json:"targetTestDate"`
	TakenBefore     string            `json:"takenBefore"`
	PreviousScore   string            `json:"previousScore"`
	TargetScore     string            `json:"targetScore"`
	LookingFor      LookingForRequest `json:"lookingFor"`
	OtherLookingFor string            `json:"otherLookingFor"`
	CoachingMode    string            `json:"coachingMode"`
	AdditionalInfo  string            `json:"additionalInfo"`
}

type SubmitResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SubmitResponse) StatusCode() int {
	return http.StatusCreated
}

func (SubmitResponse) Message() string {
	return "Your test preparation inquiry has been received."
}

type ValidateResponse TestPrepRequest

func (ValidateResponse) Message() string {
	return "Test preparation inquiry is valid"
}

type SubmissionResponse struct {
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type OptionsResponse struct {
	Tests         []string `json:"tests"`
	LookingFor    []string `json:"lookingFor"`
	CoachingModes []string `json:"coachingModes"`
	TakenBefore   []string `json:"takenBefore"`
}
