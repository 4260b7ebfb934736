package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_AisladoPorUsuario(t *testing.T) {
	s := NewSessionStore[string](0)
	id := s.Create("ana", "borrador")

	v, ok := s.Get("ana", id)
	require.True(t, ok)
	assert.Equal(t, "borrador", v)

	_, ok = s.Get("luis", id)
	assert.False(t, ok, "otro usuario no ve la sesión")
	assert.False(t, s.Delete("luis", id))

	assert.True(t, s.Delete("ana", id))
	_, ok = s.Get("ana", id)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStore_ExpiraPorInactividad(t *testing.T) {
	now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	s := NewSessionStore[int](30 * time.Minute)
	s.now = func() time.Time { return now }

	viva := s.Create("ana", 1)
	vieja := s.Create("ana", 2)

	now = now.Add(20 * time.Minute)
	_, ok := s.Get("ana", viva) // renueva
	require.True(t, ok)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, s.Sweep())
	_, ok = s.Get("ana", vieja)
	assert.False(t, ok)
	_, ok = s.Get("ana", viva)
	assert.True(t, ok)
}

func TestSessionStore_SinTTLNoBarre(t *testing.T) {
	s := NewSessionStore[int](0)
	s.Create("ana", 1)
	assert.Equal(t, 0, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_Concurrente(t *testing.T) {
	s := NewSessionStore[int](time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := s.Create("ana", i)
			v, ok := s.Get("ana", id)
			assert.True(t, ok)
			assert.Equal(t, i, v)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
