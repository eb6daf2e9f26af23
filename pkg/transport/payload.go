package transport

import "github.com/lucasreis/escala-bot/pkg/roster"

// Payload models the two message shapes a provider can deliver: a plain
// conversation message, or an extended text message carrying mention context.
// Exactly one of the fields is set. Providers resolve it once, at the
// boundary, so the core never inspects payload shapes.
type Payload struct {
	Conversation string
	Extended     *ExtendedText
}

// ExtendedText is the extended-message variant: formatted text plus the
// worker tokens mentioned in it, in order of appearance.
type ExtendedText struct {
	Text     string
	Mentions []roster.WorkerID
}

// Text returns the message body regardless of variant.
func (p Payload) Text() string {
	if p.Extended != nil {
		return p.Extended.Text
	}
	return p.Conversation
}

// Mentions returns the mentioned worker tokens; only the extended variant
// can carry mentions.
func (p Payload) Mentions() []roster.WorkerID {
	if p.Extended != nil {
		return p.Extended.Mentions
	}
	return nil
}

// Resolve builds the Inbound value the core consumes from a raw delivery.
func Resolve(sender roster.WorkerID, group roster.GroupID, p Payload) Inbound {
	return Inbound{
		Sender:   sender,
		Group:    group,
		Text:     p.Text(),
		Mentions: p.Mentions(),
	}
}
