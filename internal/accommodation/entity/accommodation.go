package entity

import "time"

// Budget is the monthly rent band a student is looking for.
type Budget string

const (
	BudgetUnder500 Budget = "< £500"
	Budget500To700 Budget = "£500–£700"
	Budget700To900 Budget = "£700–£900"
	BudgetAbove900 Budget = "£900+"
)

const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// MaxAccommodationTypes is how many accommodation types one request may pick.
const MaxAccommodationTypes = 2

// Budgets lists the accepted budgets in display order.
var Budgets = []Budget{BudgetUnder500, Budget500To700, Budget700To900, BudgetAbove900}

func (b Budget) String() string {
	return string(b)
}

// AccommodationType is a kind of room.
type AccommodationType string

const (
	AccommodationTypeEnsuite    AccommodationType = "Ensuite"
	AccommodationTypeStudio     AccommodationType = "Studio"
	AccommodationTypeSharedFlat AccommodationType = "Shared Flat"
	AccommodationTypeFamily     AccommodationType = "Family Accommodation"
)

// AccommodationTypes lists the accepted accommodation types in display order.
var AccommodationTypes = []AccommodationType{
	AccommodationTypeEnsuite,
	AccommodationTypeStudio,
	AccommodationTypeSharedFlat,
	AccommodationTypeFamily,
}

func (t AccommodationType) String() string {
	return string(t)
}

// Dependents lists the accepted answers to "are you bringing dependents".
var Dependents = []string{AnswerYes, AnswerNo}

// AccommodationRequest is a validated accommodation form.
type AccommodationRequest struct {
	FullName          string
	Email             string
	Contact           string
	UniversityCity    string
	MoveInMonth       string
	MoveInYear        string
	Budget            Budget
	AccommodationType []AccommodationType
	Dependents        string
}

// NewAccommodationRequest is what gets stored.
type NewAccommodationRequest struct {
	ID        int64
	Reference string
	Request   AccommodationRequest
}

// Submission is the public view of a stored request. It carries no personal data.
type Submission struct {
	ID        int64
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusReceived is the only status a stored request has.
const StatusReceived = "received"
