// Package mode holds the single process-wide UI mode as a closed
// enumeration with explicit transitions, so the exam-to-chat auto-switch is
// one well-defined rule instead of a side effect of view code.
package mode

import "sync"

type Mode int

const (
	// Dialogue is the chat view with the tutor.
	Dialogue Mode = iota
	// Editing is the knowledge-bank editor.
	Editing
	// ExamPractice is the hypothetical-generation lab.
	ExamPractice
)

func (m Mode) String() string {
	switch m {
	case Dialogue:
		return "dialogue"
	case Editing:
		return "editing"
	case ExamPractice:
		return "exam-practice"
	}
	return "unknown"
}

// Controller tracks the active mode. Transitions never touch the
// conversation or the knowledge bank.
type Controller struct {
	mu      sync.Mutex
	current Mode
}

func NewController() *Controller {
	return &Controller{current: Dialogue}
}

func (c *Controller) Current() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set is explicit user navigation; any mode can reach any other.
func (c *Controller) Set(m Mode) {
	c.mu.Lock()
	c.current = m
	c.mu.Unlock()
}

// LeaveExamForDialogue performs the one automatic transition: when an exam
// answer is requested, the chat view must be the one showing it. Reports
// whether a switch happened. No other state triggers it.
func (c *Controller) LeaveExamForDialogue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != ExamPractice {
		return false
	}
	c.current = Dialogue
	return true
}
