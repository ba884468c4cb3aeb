package tutor

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/mode"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/prompt"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/provider"
)

const (
	// FallbackReply covers a successful call that produced no text.
	FallbackReply = "I'm sorry, I couldn't generate a response regarding that legal concept."
	// ErrorReply is the fixed system turn shown when the model service fails.
	ErrorReply = "Sorry, I encountered an error connecting to the Tutor."
)

// Manager runs the grounded dialogue. Every submit re-snapshots the bank,
// assembles the evidence payload, and appends exactly one follow-up turn.
type Manager struct {
	conv  *Conversation
	store *bank.Store
	prov  provider.Provider
	modes *mode.Controller
	log   *zap.Logger

	// callMu serializes model calls per conversation so overlapping submits
	// append their follow-up turns in call order.
	callMu sync.Mutex
}

func NewManager(store *bank.Store, prov provider.Provider, modes *mode.Controller, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		conv:  NewConversation(),
		store: store,
		prov:  prov,
		modes: modes,
		log:   log,
	}
}

func (m *Manager) Conversation() *Conversation { return m.conv }

// Clear empties the conversation only. Materials belong to the bank.
func (m *Manager) Clear() {
	m.conv.Clear()
}

// Submit sends userText to the tutor. The user turn is appended before the
// call suspends, so the caller can render it while waiting. Whitespace-only
// input is a no-op. Service failures never escape: they become a system
// turn after being logged.
func (m *Manager) Submit(ctx context.Context, userText string) {
	if strings.TrimSpace(userText) == "" {
		return
	}

	// Optimistic append: the user sees their message immediately.
	own := m.conv.append(RoleUser, userText)

	// An answer requested from the exam lab must land in the chat view.
	if m.modes != nil && m.modes.LeaveExamForDialogue() {
		m.log.Info("mode auto-switch", zap.String("to", mode.Dialogue.String()))
	}

	// Serialized per conversation: a submit queued behind an in-flight call
	// builds its request only after that call's follow-up turn has landed,
	// so the prior exchange is part of the history this one sends.
	m.callMu.Lock()
	defer m.callMu.Unlock()

	// History excludes system turns (our own error notices) and this
	// submit's own turn, which travels as the final message instead.
	turns := m.conv.Turns()
	history := make([]provider.Message, 0, len(turns))
	for _, t := range turns {
		if t.Role == RoleSystem || t.ID == own.ID {
			continue
		}
		history = append(history, provider.Message{Role: provider.Role(t.Role), Content: t.Content})
	}

	// Snapshot at request-build time: edits racing this call cannot change
	// what it grounds on.
	parts := prompt.Assemble(m.store.Snapshot())
	parts = append(parts, provider.TextPart(userText))

	reply, err := m.prov.Generate(ctx, provider.Request{
		System:  prompt.SystemInstruction,
		History: history,
		Parts:   parts,
	})
	if err != nil {
		m.log.Error("tutor call failed", zap.Error(err))
		m.conv.append(RoleSystem, ErrorReply)
		return
	}
	if reply == "" {
		reply = FallbackReply
	}
	m.conv.append(RoleModel, reply)
}
