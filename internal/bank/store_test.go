package bank

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTextRejectsEmpty(t *testing.T) {
	s := NewStore(nil)

	_, err := s.AddText("   \n\t ", CategoryReading)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, s.Len())
}

func TestAddTextAndRemoveRoundTrip(t *testing.T) {
	s := NewStore(nil)

	m, err := s.AddText("The CFAA prohibits unauthorized access.", CategoryStatute)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, KindText, m.Kind)
	assert.Equal(t, CategoryStatute, m.Category)
	assert.NotEmpty(t, m.ID)

	s.Remove(m.ID)
	assert.Equal(t, 0, s.Len())
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	s := NewStore(nil)
	_, err := s.AddText("note", CategoryLecture)
	require.NoError(t, err)

	s.Remove("no-such-id")
	assert.Equal(t, 1, s.Len())
}

func TestAddFileEnforcesPerItemLimit(t *testing.T) {
	s := NewStore(nil)
	s.SetSizeLimit(16)

	// Middle item of a batch is oversized; its siblings still land.
	batch := []struct {
		name string
		data []byte
	}{
		{"a.pdf", bytes.Repeat([]byte{1}, 10)},
		{"b.pdf", bytes.Repeat([]byte{2}, 32)},
		{"c.pdf", bytes.Repeat([]byte{3}, 10)},
	}

	var errs []error
	for _, f := range batch {
		_, err := s.AddFile(f.data, "application/pdf", f.name, CategoryReading)
		errs = append(errs, err)
	}

	require.NoError(t, errs[0])
	require.NoError(t, errs[2])
	var serr *SizeLimitError
	require.ErrorAs(t, errs[1], &serr)
	assert.Equal(t, "b.pdf", serr.Name)
	assert.Equal(t, int64(32), serr.Size)

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a.pdf", snap[0].Name)
	assert.Equal(t, "c.pdf", snap[1].Name)
}

func TestSnapshotIsImmuneToLaterMutation(t *testing.T) {
	s := NewStore(nil)
	m1, err := s.AddFile([]byte{1, 2, 3}, "application/pdf", "brief.pdf", CategoryCase)
	require.NoError(t, err)
	_, err = s.AddText("holding: access was authorized", CategoryCase)
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap, 2)

	s.Remove(m1.ID)
	s.Clear()

	// The copy is untouched, payload bytes included.
	require.Len(t, snap, 2)
	assert.Equal(t, []byte{1, 2, 3}, snap[0].Data)
}

func TestSnapshotCopiesPayloadBytes(t *testing.T) {
	s := NewStore(nil)
	_, err := s.AddFile([]byte("original"), "text/plain", "n.txt", CategoryLecture)
	require.NoError(t, err)

	snap := s.Snapshot()
	snap[0].Data[0] = 'X'

	again := s.Snapshot()
	assert.Equal(t, byte('o'), again[0].Data[0])
}

func TestWatchFiresOnMutationsOnly(t *testing.T) {
	s := NewStore(nil)
	fired := 0
	s.Watch(func() { fired++ })

	_, err := s.AddText("note", CategoryReading)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	s.Remove("no-such-id")
	assert.Equal(t, 1, fired, "failed remove must not notify")

	s.Clear()
	assert.Equal(t, 2, fired)
}

func TestSeedAddsChapterOne(t *testing.T) {
	s := NewStore(nil)
	s.Seed()

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, CategoryReading, snap[0].Category)
	assert.Contains(t, snap[0].Text, "Confidentiality")
}
