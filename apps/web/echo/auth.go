package echoweb

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/session"
)

// SessionCookie carries the signed session token.
const SessionCookie = "ccdbms_session"

var signingMethod = jwt.SigningMethodHS256

// mockable
var nowFunc = time.Now

// Claims represents the session claims transmitted via the session cookie.
type Claims struct {
	jwt.StandardClaims
	Name string       `json:"name,omitempty"`
	Role session.Role `json:"role,omitempty"`
}

func NewClaims(id session.Identity, conf *core.Config) *Claims {
	now := nowFunc()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    conf.AppName,
			Subject:   id.ID,
			ExpiresAt: now.Add(conf.Server.SessionLifetime).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name: id.Name,
		Role: id.Role,
	}
}

func (c Claims) Identity() session.Identity {
	return session.Identity{ID: c.Subject, Name: c.Name, Role: c.Role}
}

// GenerateToken generates a signed JWT token string representing the session Claims.
func GenerateToken(claims *Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(signingMethod, claims)

	ss, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// ParseToken verifies the signature and expiry of a session token and returns its claims.
func ParseToken(token, secret string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != signingMethod.Alg() {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}
	if _, err = session.ParseRole(string(claims.Role)); err != nil {
		return nil, errors.Wrap(err, "checking role")
	}
	return claims, nil
}

// restoreSession returns the session manager carried by the request cookie.
// Missing, tampered and expired cookies mean logged out.
func restoreSession(ctx echo.Context, conf *core.Config) *session.Manager {
	cookie, err := ctx.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return session.NewManager(session.DemoCredentials)
	}
	claims, err := ParseToken(cookie.Value, conf.SecretKey)
	if err != nil {
		return session.NewManager(session.DemoCredentials)
	}
	return session.Restore(session.DemoCredentials, claims.Identity())
}

func setSessionCookie(ctx echo.Context, id session.Identity, conf *core.Config) error {
	claims := NewClaims(id, conf)
	token, err := GenerateToken(claims, conf.SecretKey)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	ctx.SetCookie(newCookie(SessionCookie, token, conf, time.Unix(claims.ExpiresAt, 0)))
	return nil
}

func clearSessionCookie(ctx echo.Context, conf *core.Config) {
	ctx.SetCookie(expiredCookie(SessionCookie, conf))
}

func newCookie(name, value string, conf *core.Config, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   conf.Env == "PROD",
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredCookie(name string, conf *core.Config) *http.Cookie {
	cookie := newCookie(name, "", conf, time.Unix(0, 0))
	cookie.MaxAge = -1
	return cookie
}
