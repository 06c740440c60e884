package session

import (
	"event-portal/core/constants"

	"github.com/labstack/echo/v4"
)

// Role is the privilege level a session currently holds.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Identity is the authenticated account carried by a user session.
type Identity struct {
	UserID   int64  `json:"uid"`
	Username string `json:"usr"`
}

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

type Flash struct {
	Kind    string `json:"k"`
	Message string `json:"m"`
}

// Session is the per-client state. The user identity and the admin flag are
// independent: a browser may be logged in as a user and as admin at once.
type Session struct {
	ID      string
	User    *Identity
	Admin   bool
	Flashes []Flash

	dirty bool
}

func New() *Session {
	return &Session{}
}

// Role reports the highest privilege held.
func (s *Session) Role() Role {
	switch {
	case s.Admin:
		return RoleAdmin
	case s.User != nil:
		return RoleUser
	default:
		return RoleAnonymous
	}
}

func (s *Session) IsUser() bool {
	return s.User != nil && s.User.UserID > 0
}

func (s *Session) IsAdmin() bool {
	return s.Admin
}

// UserID returns the authenticated user's id, or 0 for none.
func (s *Session) UserID() int64 {
	if !s.IsUser() {
		return 0
	}
	return s.User.UserID
}

func (s *Session) Login(id Identity) {
	s.User = &id
	s.dirty = true
}

func (s *Session) GrantAdmin() {
	s.Admin = true
	s.dirty = true
}

func (s *Session) RevokeAdmin() {
	if s.Admin {
		s.Admin = false
		s.dirty = true
	}
}

func (s *Session) AddFlash(kind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
	s.dirty = true
}

// PopFlashes returns and clears pending flash messages.
func (s *Session) PopFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.dirty = true
	return out
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}

// FromContext returns the session attached by the session middleware, or a
// fresh anonymous one.
func FromContext(c echo.Context) *Session {
	if s, ok := c.Get(constants.ContextSession).(*Session); ok && s != nil {
		return s
	}
	s := New()
	c.Set(constants.ContextSession, s)
	return s
}
