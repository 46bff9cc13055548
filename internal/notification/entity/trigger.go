package entity

// TriggerKey names the event an email is sent for.
type TriggerKey int16

const (
	TriggerKeyUnknown TriggerKey = iota
	TriggerKeyAccommodationSubmitted
	TriggerKeyTestPrepSubmitted
)

func (t TriggerKey) String() string {
	switch t {
	case TriggerKeyAccommodationSubmitted:
		return "accommodation_submitted"
	case TriggerKeyTestPrepSubmitted:
		return "testprep_submitted"
	default:
		return "unknown"
	}
}

// TemplateName is the embedded template file rendered for t.
func (t TriggerKey) TemplateName() string {
	return t.String() + ".txt"
}
