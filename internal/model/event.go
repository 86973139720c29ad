package model

import "time"

// EventType names a catalog domain event.
type EventType string

const (
	EventItemCreated     EventType = "item.created"
	EventItemUpdated     EventType = "item.updated"
	EventItemDeleted     EventType = "item.deleted"
	EventItemRestored    EventType = "item.restored"
	EventItemActivated   EventType = "item.activated"
	EventItemDeactivated EventType = "item.deactivated"
)

// DomainEvent is an immutable fact recorded by a mutation. Events are made
// visible to consumers only inside the transaction window that persists the
// mutation; a failed dispatch abandons the write.
type DomainEvent struct {
	Key         string                 // unique event key
	Type        EventType              // what happened
	PracticeKey string                 // tenant boundary
	ItemKey     string                 // affected catalog item
	ItemType    ItemType               // variant of the affected item
	OccurredAt  time.Time              // when the mutation happened
	Payload     map[string]interface{} // additional event data
}
