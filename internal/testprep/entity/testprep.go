package entity

import "time"

// CoachingMode is how a student wants to be coached.
type CoachingMode string

const (
	CoachingModeOnline   CoachingMode = "Online"
	CoachingModeInPerson CoachingMode = "In-person"
	CoachingModeBoth     CoachingMode = "Both"
)

// CoachingModes lists the accepted coaching modes in display order.
var CoachingModes = []CoachingMode{CoachingModeOnline, CoachingModeInPerson, CoachingModeBoth}

func (m CoachingMode) String() string {
	return string(m)
}

const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)

// TakenBefore lists the accepted answers to "have you taken the test before".
var TakenBefore = []string{AnswerYes, AnswerNo}

// Test names, in display order.
const (
	TestIELTS = "IELTS"
	TestSAT   = "SAT"
	TestLNAT  = "LNAT"
	TestTOEFL = "TOEFL"
)

var TestNames = []string{TestIELTS, TestSAT, TestLNAT, TestTOEFL}

// Tests holds one flag per supported test.
type Tests struct {
	IELTS bool
	SAT   bool
	LNAT  bool
	TOEFL bool
}

// Selected returns the names of the flagged tests.
func (t Tests) Selected() []string {
	var out []string
	for i, on := range []bool{t.IELTS, t.SAT, t.LNAT, t.TOEFL} {
		if on {
			out = append(out, TestNames[i])
		}
	}
	return out
}

// Service names, in display order.
const (
	ServiceFullCourse       = "fullCourse"
	ServiceSpecificCoaching = "specificCoaching"
	ServicePracticeTests    = "practiceTests"
)

var ServiceNames = []string{ServiceFullCourse, ServiceSpecificCoaching, ServicePracticeTests}

// LookingFor holds one flag per offered service.
type LookingFor struct {
	FullCourse       bool
	SpecificCoaching bool
	PracticeTests    bool
}

// Selected returns the names of the flagged services.
func (l LookingFor) Selected() []string {
	var out []string
	for i, on := range []bool{l.FullCourse, l.SpecificCoaching, l.PracticeTests} {
		if on {
			out = append(out, ServiceNames[i])
		}
	}
	return out
}

// TestPrepInquiry is a validated test preparation inquiry.
type TestPrepInquiry struct {
	FullName        string
	Email           string
	Phone           string
	Tests           Tests
	OtherTest       string
	NotSureYet      bool
	TargetTestDate  string
	TakenBefore     string
	PreviousScore   string
	TargetScore     string
	LookingFor      LookingFor
	OtherLookingFor string
	CoachingMode    CoachingMode
	AdditionalInfo  string
}

// NewTestPrepInquiry is what gets stored.
type NewTestPrepInquiry struct {
	ID        int64
	Reference string
	Inquiry   TestPrepInquiry
}

// Submission is the public view of a stored inquiry. It carries no personal data.
type Submission struct {
	ID        int64
	Reference string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusReceived is the only status a stored inquiry has.
const StatusReceived = "received"
