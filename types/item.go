package types

import "time"

// Capability is a bit-set of things an item *can* do. Whether an action
// is currently permitted is a rules question, not a data question.
type Capability uint16

const (
	CapTakeable Capability = 1 << iota
	CapUsable
	CapConsumable
	CapOpenable
	CapReadable
	CapBreakable
	CapContainer
	CapHideable
	CapSavePoint
	CapDevice
	// CapPowerSource marks an item that can charge a device when the
	// room has power.
	CapPowerSource
)

// Has reports whether all bits in cap are set.
func (c Capability) Has(cap Capability) bool { return c&cap == cap }

// ReadableSpec is generic readable content: placards, manuals, notes.
// Devices with message queues use PhoneSpec instead.
type ReadableSpec struct {
	Title string
	Text  string
}

// ContainerSpec describes what an item can hold.
type ContainerSpec struct {
	Capacity    int
	AllowedTags []string
}

// MessageState is the lifecycle of a device message.
// Unseen: the player doesn't know it exists.
// Seen: the player knows a message is waiting but hasn't opened it.
// Read: the player opened it; its contents are fair game.
type MessageState int

const (
	MessageUnseen MessageState = iota
	MessageSeen
	MessageRead
)

// Message is one entry in a device's ordered message queue. State only
// moves forward (Unseen → Seen → Read) and timestamps are recorded once.
type Message struct {
	From    string
	Subject string
	Body    string

	State  MessageState
	SeenAt time.Time
	ReadAt time.Time
}

// MarkSeen advances an unseen message to seen. No-op otherwise.
func (m *Message) MarkSeen(now time.Time) {
	if m.State == MessageUnseen {
		m.State = MessageSeen
		m.SeenAt = now
	}
}

// MarkRead advances a message to read, recording SeenAt if the message
// jumps straight from unseen.
func (m *Message) MarkRead(now time.Time) {
	if m.State == MessageRead {
		return
	}
	if m.State == MessageUnseen {
		m.SeenAt = now
	}
	m.State = MessageRead
	m.ReadAt = now
}

// PhoneSpec is the device payload for items with CapDevice.
type PhoneSpec struct {
	Messages []*Message
}

// UnreadCount returns how many messages have not been read yet.
func (p *PhoneSpec) UnreadCount() int {
	n := 0
	for _, m := range p.Messages {
		if m.State != MessageRead {
			n++
		}
	}
	return n
}

// Item is a world object. Capability flags and their payload objects are
// mutually required: CapReadable ⇔ Readable, CapContainer ⇔ Container,
// CapDevice ⇔ Phone. Construction-time validation enforces this.
type Item struct {
	ID          int
	Name        string
	Description string

	// Aliases are normalized match tokens. The normalized name is
	// always a member.
	Aliases []string

	Capabilities Capability

	Readable  *ReadableSpec
	Container *ContainerSpec
	Phone     *PhoneSpec
}
