package notification

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Service pushes admin dashboard events over the websocket.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return nil
	}
	return s.m.Broadcast([]byte(message))
}

// Event is the wire shape of a dashboard notification.
type Event struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type MessageBuilder struct {
	event Event
}

func NewBookingEvent(reference string, totalAmount float64) *MessageBuilder {
	return &MessageBuilder{event: Event{
		Type: "booking.created",
		Text: fmt.Sprintf("New booking %s (%.2f)", reference, totalAmount),
	}}
}

func NewContactEvent(name, subject string) *MessageBuilder {
	return &MessageBuilder{event: Event{
		Type: "message.received",
		Text: fmt.Sprintf("New message from %s: %s", name, subject),
	}}
}

func NewSweepEvent(count int) *MessageBuilder {
	return &MessageBuilder{event: Event{
		Type: "bookings.swept",
		Text: fmt.Sprintf("%d bookings auto checked out", count),
	}}
}

func (b *MessageBuilder) Build() string {
	data, _ := json.Marshal(b.event)
	return string(data)
}
