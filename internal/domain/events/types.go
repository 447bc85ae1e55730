package events

type EventType string

const (
	EventTypeRescue        EventType = "rescue"
	EventTypeMedical       EventType = "medical"
	EventTypeVaccination   EventType = "vaccination"
	EventTypeSterilization EventType = "sterilization"
	EventTypeFoster        EventType = "foster"
	EventTypeAdoption      EventType = "adoption"
	EventTypeSighting      EventType = "sighting"
	EventTypeStatusChange  EventType = "status_change"
	EventTypeNote          EventType = "note"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeRescue, EventTypeMedical, EventTypeVaccination, EventTypeSterilization,
		EventTypeFoster, EventTypeAdoption, EventTypeSighting, EventTypeStatusChange, EventTypeNote:
		return true
	default:
		return false
	}
}
