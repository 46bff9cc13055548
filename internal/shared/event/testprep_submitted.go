package event

import "time"

// TestPrepSubmittedDestination is the topic an accepted test-prep inquiry is published to.
const TestPrepSubmittedDestination string = "testprep_submitted"

// TestPrepSubmittedConsumerNotification is the consumer group of the notification module.
const TestPrepSubmittedConsumerNotification string = "testprep_submitted_notification"

// TestPrepSubmittedMessage is published after a test-prep inquiry is stored.
type TestPrepSubmittedMessage struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Tests        []string  `json:"tests"`
	CoachingMode string    `json:"coachingMode"`
	CreatedAt    time.Time `json:"createdAt"`
}
