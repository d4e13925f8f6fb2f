package service

import (
	"sync"

	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
)

const (
	EventStatus   = "status"
	EventProgress = "progress"
)

const subscriberBuffer = 16

// Event is one status change or per-clip progress report of an assembly.
type Event struct {
	Type       string `json:"type"`
	AssemblyID string `json:"assembly_id"`
	Status     string `json:"status,omitempty"`
	Step       string `json:"step,omitempty"`
	Pos        int    `json:"pos,omitempty"`
	Total      int    `json:"total,omitempty"`
	Message    string `json:"message,omitempty"`
}

type EventPublisher interface {
	Publish(assemblyID string, event Event)
}

type EventBus struct {
	subscribers map[string][]chan Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
	}
}

func (eb *EventBus) Subscribe(assemblyID string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	eb.subscribers[assemblyID] = append(eb.subscribers[assemblyID], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(assemblyID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[assemblyID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[assemblyID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[assemblyID]) == 0 {
		delete(eb.subscribers, assemblyID)
	}
}

// Publish never blocks. A subscriber that is behind loses progress events;
// a status event evicts its oldest queued event instead, so streams always
// see the terminal state.
func (eb *EventBus) Publish(assemblyID string, event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	event.AssemblyID = assemblyID
	for _, ch := range eb.subscribers[assemblyID] {
		select {
		case ch <- event:
			continue
		default:
		}

		if event.Type != EventStatus {
			logger.Debugf("subscriber of %s is behind, dropped %s event", assemblyID, event.Type)
			continue
		}

		var evicted Event
		select {
		case evicted = <-ch:
		default:
		}
		select {
		case ch <- event:
			logger.Debugf("subscriber of %s is behind, evicted %s event for status %s", assemblyID, evicted.Type, event.Status)
		default:
			logger.Warnf("subscriber of %s is behind, dropped status %s", assemblyID, event.Status)
		}
	}
}

func (eb *EventBus) SubscriberCount(assemblyID string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers[assemblyID])
}
