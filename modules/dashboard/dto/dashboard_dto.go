package dto

import (
	eventEntity "event-portal/modules/event/entity"
	registrationEntity "event-portal/modules/registration/entity"
)

// EventGroup is one dashboard row: an event with its registrants.
type EventGroup struct {
	Event       eventEntity.Event
	Registrants []registrationEntity.Registrant
}

type EventDetail struct {
	Event       *eventEntity.Event
	Registrants []registrationEntity.Registrant
}

// Export is a rendered registrant CSV. Location is set when the file was
// uploaded to object storage.
type Export struct {
	Filename string
	Content  []byte
	Location string
}
