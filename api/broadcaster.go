package api

import "sync"

// EventType distinguishes the broadcast events a session emits.
type EventType string

const (
	EventProgress EventType = "progress"
	EventDone     EventType = "done"
	EventError    EventType = "error"
)

// BroadcastEvent is one assembly-progress update sent to WebSocket
// clients.
type BroadcastEvent struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
	Line      int       `json:"line,omitempty"`
	Address   string    `json:"address,omitempty"`
	Hex       string    `json:"hex,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// Subscription is a client's subscription to one session's events.
type Subscription struct {
	SessionID string
	Channel   chan BroadcastEvent
}

// Broadcaster fans events out to subscribed WebSocket clients. Each
// session's progress events reach only subscribers for that session.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.SessionID != "" && sub.SessionID != event.SessionID {
					continue
				}
				select {
				case sub.Channel <- event:
				default:
					// Slow client; drop the event rather than block the broadcaster.
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe creates a subscription to sessionID's events (empty string
// subscribes to all sessions).
func (b *Broadcaster) Subscribe(sessionID string) *Subscription {
	sub := &Subscription{
		SessionID: sessionID,
		Channel:   make(chan BroadcastEvent, 64),
	}
	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends event to every matching subscription.
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
		// Broadcast channel is full; drop rather than block the caller.
	}
}

// Close shuts the broadcaster down, closing all subscriptions.
func (b *Broadcaster) Close() {
	close(b.done)
}
