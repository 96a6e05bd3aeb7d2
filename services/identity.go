package services

import (
	"strconv"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
)

// ActorID identifies the owner of a cart or an order: a user id in decimal
// or a guest_ id.
type ActorID string

func UserActor(id uint) ActorID { return ActorID(strconv.FormatUint(uint64(id), 10)) }

func (a ActorID) IsGuest() bool { return utils.IsGuestID(string(a)) }

// UserID returns the numeric id of a logged-in actor.
func (a ActorID) UserID() (uint, bool) {
	if a.IsGuest() {
		return 0, false
	}
	n, err := strconv.ParseUint(string(a), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// Session keys.
const (
	SessionUserID    = "user_id"
	SessionRole      = "role"
	SessionUserName  = "user_name"
	SessionUserEmail = "user_email"
	SessionGuestID   = "guest_id"
)

// SessionStore is the per-client key/value session.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear()
}

// ResolveActor returns the logged-in user, else the session's guest id. A
// session with neither gets a fresh guest id stored in it, so repeated calls
// return the same actor.
func ResolveActor(s SessionStore) ActorID {
	if uid, ok := s.Get(SessionUserID); ok && uid != "" {
		return ActorID(uid)
	}
	if gid, ok := s.Get(SessionGuestID); ok && gid != "" {
		return ActorID(gid)
	}
	gid := utils.NewGuestID()
	s.Set(SessionGuestID, gid)
	return ActorID(gid)
}
