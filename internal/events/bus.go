package events

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// TriggerListener processes trigger events
type TriggerListener interface {
	HandleTrigger(trigger *combat.TriggerContext) error
	Priority() int
	ID() string
}

// Bus distributes trigger events to listeners in priority order
type Bus struct {
	listeners map[combat.TriggerType][]TriggerListener
	mu        sync.RWMutex
}

// NewBus creates a new trigger bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[combat.TriggerType][]TriggerListener),
	}
}

// Subscribe adds a listener for a specific trigger type
func (b *Bus) Subscribe(triggerType combat.TriggerType, listener TriggerListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[triggerType] = append(b.listeners[triggerType], listener)

	// Sort by priority
	sort.SliceStable(b.listeners[triggerType], func(i, j int) bool {
		return b.listeners[triggerType][i].Priority() < b.listeners[triggerType][j].Priority()
	})

	log.Printf("TriggerBus: subscribed listener %s to %s with priority %d",
		listener.ID(), triggerType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(triggerType combat.TriggerType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[triggerType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[triggerType] = append(listeners[:i], listeners[i+1:]...)
		log.Printf("TriggerBus: unsubscribed listener %s from %s", listenerID, triggerType)
		return
	}
}

// Emit sends a trigger to all registered listeners. Propagation stops as
// soon as a listener cancels the trigger.
func (b *Bus) Emit(trigger *combat.TriggerContext) error {
	if trigger == nil {
		return nil
	}

	b.mu.RLock()
	listeners := make([]TriggerListener, len(b.listeners[trigger.Type]))
	copy(listeners, b.listeners[trigger.Type])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if trigger.WasCancelled {
			log.Printf("TriggerBus: trigger %s cancelled, stopping propagation", trigger.Type)
			break
		}

		if err := listener.HandleTrigger(trigger); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[combat.TriggerType][]TriggerListener)
}
