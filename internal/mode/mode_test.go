package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerStartsInDialogue(t *testing.T) {
	c := NewController()
	assert.Equal(t, Dialogue, c.Current())
}

func TestSetReachesAnyMode(t *testing.T) {
	c := NewController()
	for _, m := range []Mode{ExamPractice, Editing, Dialogue, ExamPractice} {
		c.Set(m)
		assert.Equal(t, m, c.Current())
	}
}

func TestLeaveExamForDialogue(t *testing.T) {
	c := NewController()

	// No-op from dialogue and editing.
	assert.False(t, c.LeaveExamForDialogue())
	assert.Equal(t, Dialogue, c.Current())

	c.Set(Editing)
	assert.False(t, c.LeaveExamForDialogue())
	assert.Equal(t, Editing, c.Current())

	// The one automatic transition.
	c.Set(ExamPractice)
	assert.True(t, c.LeaveExamForDialogue())
	assert.Equal(t, Dialogue, c.Current())
}
