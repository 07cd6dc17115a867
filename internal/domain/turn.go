package domain

import "time"

// Speaker identifies who authored a chat turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// WelcomeTurnID marks the seeded greeting turn. It is shown in the chat but
// never included in transcripts sent to the backend.
const WelcomeTurnID = "welcome"

// Attachment is an image carried by a single turn.
type Attachment struct {
	MimeType   string
	Base64Data string
}

// ChatTurn is one message of a conversation. Immutable once appended;
// append order is both the display order and the transcript order.
type ChatTurn struct {
	ID         string
	Speaker    Speaker
	Text       string
	Attachment *Attachment
	CreatedAt  time.Time
	IsError    bool
}

func (t ChatTurn) IsWelcome() bool {
	return t.ID == WelcomeTurnID
}
