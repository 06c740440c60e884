package session

import (
	"context"
	"net/http"
	"time"

	"event-portal/core/cache"
	"event-portal/core/constants"
	"event-portal/core/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type claims struct {
	User    *Identity `json:"user,omitempty"`
	Admin   bool      `json:"adm,omitempty"`
	Flashes []Flash   `json:"fl,omitempty"`
	jwt.RegisteredClaims
}

// Manager encodes sessions into HMAC-signed JWT cookies. Logged out session
// ids are remembered in the cache until their token would have expired.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	cache  cache.Cache
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool, c cache.Cache) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		cache:  c,
		now:    time.Now,
	}
}

// Load decodes the session cookie. A missing, forged, expired or revoked
// cookie yields an anonymous session.
func (m *Manager) Load(ctx context.Context, r *http.Request) *Session {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return New()
	}

	parsed := &claims{}
	_, err = jwt.ParseWithClaims(cookie.Value, parsed, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constants.SessionIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		logger.Debug("Session:Load:InvalidToken", "error", err)
		return New()
	}

	if parsed.ID != "" {
		revoked, err := m.cache.IsSessionRevoked(ctx, parsed.ID)
		if err != nil {
			logger.Error("Session:Load:IsSessionRevoked:Error", "error", err)
			return New()
		}
		if revoked {
			return New()
		}
	}

	return &Session{
		ID:      parsed.ID,
		User:    parsed.User,
		Admin:   parsed.Admin,
		Flashes: parsed.Flashes,
	}
}

// Save signs the session and writes it as a cookie. It must run before the
// response body is written.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := m.now()
	c := claims{
		User:    s.User,
		Admin:   s.Admin,
		Flashes: s.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Issuer:    constants.SessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.dirty = false
	return nil
}

// Destroy revokes the session id, expires the cookie and resets s to an
// anonymous session.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	var err error
	if s.ID != "" {
		err = m.cache.RevokeSession(ctx, s.ID, m.ttl)
		if err != nil {
			logger.Error("Session:Destroy:RevokeSession:Error", "error", err, "sessionID", s.ID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	*s = Session{}
	return err
}
