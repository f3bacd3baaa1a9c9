package event

import "fmt"

// Event represents a running event scraped from the listing page.
// Events are constructed once by the parser and never mutated.
type Event struct {
	Name            string `json:"name"`
	Location        string `json:"location"`
	State           string `json:"state"`
	Distance        string `json:"distance"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	RegistrationURL string `json:"registration_url"`
}

// New creates an Event. Name and Date form the identity of the record;
// State and Distance are best-effort derivations and may be empty.
func New(name, location, state, distance, date, registrationURL string) *Event {
	return &Event{
		Name:            name,
		Location:        location,
		State:           state,
		Distance:        distance,
		Date:            date,
		RegistrationURL: registrationURL,
	}
}

// Key returns the duplicate-detection key for an event. Two events with the
// same name and date are duplicates regardless of location or URL differences.
func (e *Event) Key() string {
	return e.Name + "|" + e.Date
}

// String returns a short representation for logging
func (e *Event) String() string {
	return fmt.Sprintf("%s (%s) - %s", e.Name, e.Date, e.Location)
}
