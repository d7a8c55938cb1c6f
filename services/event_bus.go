package services

// FoodEvent is what live subscribers receive when an owner's items change.
type FoodEvent struct {
	Kind       string `json:"kind"`
	OwnerEmail string `json:"ownerEmail"`
	ItemID     string `json:"itemId,omitempty"`
	Item       any    `json:"item,omitempty"`
}

// EventBus forwards item-change events to the realtime hub. A nil bus
// is valid and drops everything, so services can emit unconditionally.
type EventBus struct {
	hub *RealtimeHub
}

func NewEventBus(hub *RealtimeHub) *EventBus {
	return &EventBus{hub: hub}
}

func (b *EventBus) Emit(ownerEmail, kind, itemID string, item any) {
	if b == nil || b.hub == nil {
		return
	}
	b.hub.Broadcast(ownerEmail, FoodEvent{
		Kind:       kind,
		OwnerEmail: ownerEmail,
		ItemID:     itemID,
		Item:       item,
	})
}
