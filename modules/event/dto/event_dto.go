package dto

// EventRequest is the dashboard create/edit form.
type EventRequest struct {
	Name        string `form:"event_name" validate:"notblank"`
	Date        string `form:"event_date" validate:"notblank"`
	Venue       string `form:"event_venue"`
	Description string `form:"event_description"`
}
