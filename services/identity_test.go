package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapSession map[string]string

func (m mapSession) Get(k string) (string, bool) {
	v, ok := m[k]
	return v, ok
}

func (m mapSession) Set(k, v string) { m[k] = v }

func (m mapSession) Clear() {
	for k := range m {
		delete(m, k)
	}
}

func TestResolveActorMintsGuestOnce(t *testing.T) {
	s := mapSession{}

	first := ResolveActor(s)
	assert.True(t, first.IsGuest())
	assert.Equal(t, string(first), s[SessionGuestID])
	assert.Equal(t, first, ResolveActor(s))
}

func TestResolveActorPrefersUser(t *testing.T) {
	s := mapSession{SessionGuestID: "guest_0123456789abcdef", SessionUserID: "42"}

	a := ResolveActor(s)
	assert.Equal(t, ActorID("42"), a)
	id, ok := a.UserID()
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestActorUserID(t *testing.T) {
	_, ok := ActorID("guest_0123456789abcdef").UserID()
	assert.False(t, ok)
	_, ok = ActorID("").UserID()
	assert.False(t, ok)
	assert.Equal(t, ActorID("7"), UserActor(7))
}
