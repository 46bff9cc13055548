package event

import "time"

// AccommodationSubmittedDestination is the topic an accepted accommodation request is published to.
const AccommodationSubmittedDestination string = "accommodation_submitted"

// AccommodationSubmittedConsumerNotification is the consumer group of the notification module.
const AccommodationSubmittedConsumerNotification string = "accommodation_submitted_notification"

// AccommodationSubmittedMessage is published after an accommodation request is stored.
type AccommodationSubmittedMessage struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	UniversityCity string    `json:"universityCity"`
	MoveIn         string    `json:"moveIn"`
	CreatedAt      time.Time `json:"createdAt"`
}
