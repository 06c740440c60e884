package dto

// RegistrationConfirmation is the payload of a confirmation mail task.
type RegistrationConfirmation struct {
	RegistrantID int64  `json:"registrant_id"`
	EventID      int64  `json:"event_id"`
	EventName    string `json:"event_name"`
	EventDate    string `json:"event_date"`
	EventVenue   string `json:"event_venue"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}
