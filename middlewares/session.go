package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/configs"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/services"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"github.com/gin-gonic/gin"
)

const ctxSession = "session"

// Session is a services.SessionStore kept in a signed JWT. Every change is
// written back as the session cookie on the current response.
type Session struct {
	c      *gin.Context
	claims utils.Claims
	secret string
	cookie string
	ttl    time.Duration
	secure bool
}

var _ services.SessionStore = (*Session)(nil)

func (s *Session) Get(key string) (string, bool) {
	var v string
	switch key {
	case services.SessionUserID:
		if s.claims.UserID != 0 {
			v = strconv.FormatUint(uint64(s.claims.UserID), 10)
		}
	case services.SessionRole:
		v = s.claims.Role
	case services.SessionUserName:
		v = s.claims.Name
	case services.SessionUserEmail:
		v = s.claims.Email
	case services.SessionGuestID:
		v = s.claims.GuestID
	}
	return v, v != ""
}

func (s *Session) Set(key, value string) {
	switch key {
	case services.SessionUserID:
		id, _ := strconv.ParseUint(value, 10, 64)
		s.claims.UserID = uint(id)
	case services.SessionRole:
		s.claims.Role = value
	case services.SessionUserName:
		s.claims.Name = value
	case services.SessionUserEmail:
		s.claims.Email = value
	case services.SessionGuestID:
		s.claims.GuestID = value
	default:
		return
	}
	s.save()
}

func (s *Session) Clear() {
	s.claims = utils.Claims{}
	s.writeCookie("", -1)
}

// Login replaces the session with a logged-in one. The guest id is dropped.
func (s *Session) Login(userID uint, role, name, email string) {
	s.claims = utils.Claims{UserID: userID, Role: role, Name: name, Email: email}
	s.save()
}

// Token returns the signed session, for clients that send it as a bearer
// token instead of the cookie.
func (s *Session) Token() (string, error) {
	return utils.GenerateToken(s.claims, s.secret, s.ttl)
}

func (s *Session) save() {
	token, err := s.Token()
	if err != nil {
		_ = s.c.Error(err)
		return
	}
	s.writeCookie(token, int(s.ttl.Seconds()))
}

// writeCookie replaces any session cookie already queued on the response.
func (s *Session) writeCookie(value string, maxAge int) {
	h := s.c.Writer.Header()
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, s.cookie+"=") {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
	http.SetCookie(s.c.Writer, &http.Cookie{
		Name:     s.cookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if t, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(t)
	}
	return ""
}

// SessionMiddleware loads the session from the bearer token or the cookie.
// An invalid or expired token starts an empty session.
func SessionMiddleware(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &Session{
			c:      c,
			secret: cfg.JWTSecret,
			cookie: cfg.CookieName,
			ttl:    cfg.SessionTTL,
			secure: cfg.CookieSecure,
		}

		raw := bearerToken(c)
		if raw == "" {
			raw, _ = c.Cookie(cfg.CookieName)
		}
		if raw != "" {
			if claims, err := utils.ParseToken(raw, cfg.JWTSecret); err == nil {
				s.claims = *claims
			}
		}

		c.Set(ctxSession, s)
		if s.claims.UserID != 0 {
			c.Set(utils.CtxUserID, s.claims.UserID)
			c.Set(utils.CtxRole, s.claims.Role)
		}
		c.Next()
	}
}

// SessionFrom returns the request session. It panics when SessionMiddleware
// is not installed.
func SessionFrom(c *gin.Context) *Session {
	return c.MustGet(ctxSession).(*Session)
}

// Actor resolves the cart and order owner of the request.
func Actor(c *gin.Context) services.ActorID {
	return services.ResolveActor(SessionFrom(c))
}
