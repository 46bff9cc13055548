package inbound

import (
	"net/http"
	"time"
)

// HeaderIdempotencyKey lets a client retry a submission without storing it twice.
const HeaderIdempotencyKey = "Idempotency-Key"

type AccommodationRequest struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Contact           string   `json:"contact"`
	UniversityCity    string   `json:"universityCity"`
	MoveInMonth       string   `json:"moveInMonth"`
	MoveInYear        string   `json:"moveInYear"`
	Budget            string   `json:"budget"`
	AccommodationType []string `json:"accommodationType"`
	Dependents        string   `json:"dependents"`
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
	return "Your accommodation request has been received."
}

type ValidateResponse AccommodationRequest

func (ValidateResponse) Message() string {
	return "Accommodation request is valid"
}

type SubmissionResponse struct {
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type OptionsResponse struct {
	Budgets               []string `json:"budgets"`
	AccommodationTypes    []string `json:"accommodationTypes"`
	Dependents            []string `json:"dependents"`
	MaxAccommodationTypes int      `json:"maxAccommodationTypes"`
}
