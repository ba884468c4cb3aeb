package bank

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSizeLimit caps a single uploaded file at 10 MiB, matching the
// payload ceiling of the model API for inline data.
const DefaultSizeLimit = 10 * 1024 * 1024

// Store owns the ordered set of materials. Mutations are atomic from the
// caller's point of view and notify observers after the fact; Snapshot
// returns a copy that later mutations cannot touch.
type Store struct {
	mu        sync.Mutex
	materials []Material
	sizeLimit int64
	log       *zap.Logger
	observers []func()
}

func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{sizeLimit: DefaultSizeLimit, log: log}
}

// SetSizeLimit overrides the per-file upload cap. Zero or negative keeps
// the current limit.
func (s *Store) SetSizeLimit(limit int64) {
	if limit <= 0 {
		return
	}
	s.mu.Lock()
	s.sizeLimit = limit
	s.mu.Unlock()
}

// Watch registers fn to run after every successful mutation. Observers run
// outside the store lock and must not block.
func (s *Store) Watch(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	obs := make([]func(), len(s.observers))
	copy(obs, s.observers)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

// AddText stores a typed note. The display name carries the wall-clock time
// so repeated quick notes stay distinguishable.
func (s *Store) AddText(content string, category Category) (Material, error) {
	return s.addText("Text Note - "+time.Now().Format("15:04:05"), content, category)
}

// addText stores a text material under a caller-chosen name. Materials are
// immutable once created, so the name must be final here.
func (s *Store) addText(name, content string, category Category) (Material, error) {
	if strings.TrimSpace(content) == "" {
		return Material{}, &ValidationError{Field: "note", Reason: "content is empty"}
	}
	m := Material{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     KindText,
		Category: category,
		Text:     content,
	}
	s.append(m)
	s.log.Info("material added",
		zap.String("id", m.ID),
		zap.String("kind", string(KindText)),
		zap.String("category", string(category)))
	s.notify()
	return m, nil
}

// AddFile stores an uploaded file. Oversized payloads are rejected
// individually; callers uploading a batch keep going with the rest.
func (s *Store) AddFile(data []byte, mimeType, name string, category Category) (Material, error) {
	s.mu.Lock()
	limit := s.sizeLimit
	s.mu.Unlock()
	if int64(len(data)) > limit {
		return Material{}, &SizeLimitError{Name: name, Size: int64(len(data)), Limit: limit}
	}
	m := Material{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     KindFile,
		Category: category,
		Data:     data,
		MIMEType: mimeType,
	}
	s.append(m)
	s.log.Info("material added",
		zap.String("id", m.ID),
		zap.String("kind", string(KindFile)),
		zap.String("mime", mimeType),
		zap.Int("bytes", len(data)))
	s.notify()
	return m, nil
}

func (s *Store) append(m Material) {
	s.mu.Lock()
	s.materials = append(s.materials, m)
	s.mu.Unlock()
}

// Remove deletes a material by id. Unknown ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	removed := false
	for i, m := range s.materials {
		if m.ID == id {
			s.materials = append(s.materials[:i], s.materials[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.log.Info("material removed", zap.String("id", id))
		s.notify()
	}
}

// Clear empties the bank.
func (s *Store) Clear() {
	s.mu.Lock()
	s.materials = nil
	s.mu.Unlock()
	s.notify()
}

// Len reports the current material count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.materials)
}

// Snapshot returns the materials in insertion order. The returned slice and
// its payloads are copies: an edit racing an in-flight model call cannot
// change what that call grounds on.
func (s *Store) Snapshot() []Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Material, len(s.materials))
	for i, m := range s.materials {
		out[i] = m
		if m.Data != nil {
			out[i].Data = make([]byte, len(m.Data))
			copy(out[i].Data, m.Data)
		}
	}
	return out
}
