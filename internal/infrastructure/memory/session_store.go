// Package memory implementa almacenamiento en memoria para las sesiones de
// captura (formularios y lotes). Nada sobrevive a un reinicio del proceso.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	owner     string
	value     T
	touchedAt time.Time
}

// SessionStore almacén concurrente de sesiones indexado por ID (UUID).
// Cada sesión pertenece a un único usuario; otro usuario no la ve.
type SessionStore[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionStore crea el almacén. ttl <= 0 desactiva la expiración.
func NewSessionStore[T any](ttl time.Duration) *SessionStore[T] {
	return &SessionStore[T]{
		entries: make(map[string]*entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create guarda v y devuelve el ID de la sesión.
func (s *SessionStore[T]) Create(owner string, v T) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &entry[T]{owner: owner, value: v, touchedAt: s.now()}
	return id
}

// Get devuelve la sesión si existe, pertenece a owner y no expiró.
func (s *SessionStore[T]) Get(owner, id string) (T, bool) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.owner != owner {
		return zero, false
	}
	if s.expired(e) {
		delete(s.entries, id)
		return zero, false
	}
	e.touchedAt = s.now()
	return e.value, true
}

// Delete elimina la sesión. Devuelve false si no existía para ese usuario.
func (s *SessionStore[T]) Delete(owner, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.owner != owner {
		return false
	}
	delete(s.entries, id)
	return true
}

// Sweep elimina las sesiones expiradas y devuelve cuántas borró.
func (s *SessionStore[T]) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Len número de sesiones guardadas.
func (s *SessionStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *SessionStore[T]) expired(e *entry[T]) bool {
	return s.ttl > 0 && s.now().Sub(e.touchedAt) > s.ttl
}
