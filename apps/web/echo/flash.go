package echoweb

import (
	"encoding/base64"
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/core"
)

// FlashCookie carries the toast of the next render.
const FlashCookie = "ccdbms_flash"

func setFlash(ctx echo.Context, toast ui.Toast, conf *core.Config) error {
	if toast.Message == "" {
		return nil
	}
	data, err := json.Marshal(toast)
	if err != nil {
		return errors.Wrap(err, "marshalling toast")
	}
	cookie := newCookie(FlashCookie, base64.RawURLEncoding.EncodeToString(data), conf, nowFunc().Add(conf.Server.SessionLifetime))
	ctx.SetCookie(cookie)
	return nil
}

// popFlash returns the pending toast and clears it, so it is shown exactly once.
func popFlash(ctx echo.Context, conf *core.Config) *ui.Toast {
	cookie, err := ctx.Cookie(FlashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	ctx.SetCookie(expiredCookie(FlashCookie, conf))

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var toast ui.Toast
	if err = json.Unmarshal(data, &toast); err != nil || toast.Message == "" {
		return nil
	}
	return &toast
}
