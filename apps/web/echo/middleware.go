package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/session"
)

var contextSessionKey = "session"

// sessionMiddleware restores the session manager of the request from its cookie.
func sessionMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(contextSessionKey, restoreSession(ctx, conf))
			return next(ctx)
		}
	}
}

func getContextSession(ctx echo.Context) *session.Manager {
	if mgr, ok := ctx.Get(contextSessionKey).(*session.Manager); ok {
		return mgr
	}
	return session.NewManager(session.DemoCredentials)
}

func getContextIdentity(ctx echo.Context) (session.Identity, bool) {
	return getContextSession(ctx).Current()
}

// loginRequiredMiddleware sends anonymous users to the login page.
func loginRequiredMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := getContextIdentity(ctx); !ok {
			return ctx.Redirect(http.StatusSeeOther, loginPath)
		}
		return next(ctx)
	}
}

// roleMiddleware only lets the identity post to the actions of its own role.
func roleMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, ok := getContextIdentity(ctx)
		if !ok {
			return errUnauthorized
		}
		role, err := session.ParseRole(ctx.Param("portal"))
		if err != nil {
			return errHttpNotFound
		}
		if role != id.Role {
			return errHttpForbidden
		}
		return next(ctx)
	}
}
