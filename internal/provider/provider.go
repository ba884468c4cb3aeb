package provider

import "context"

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one prior turn of dialogue history sent for continuity.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Part is one ordered segment of the final message: either literal text or a
// binary payload tagged with its media type (PDF pages, lecture audio, ...).
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

func TextPart(text string) Part { return Part{Text: text} }

func DataPart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// Request is one generation call. System is the fixed tutor instruction,
// History carries prior user/model turns, Parts form the final message in
// order.
type Request struct {
	System  string
	History []Message
	Parts   []Part
}

type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
	Model() string
}
