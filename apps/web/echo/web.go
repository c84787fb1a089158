package echoweb

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/apps/web/views"
	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/session"
)

const (
	loginPath  = "/login"
	logoutPath = "/logout"

	msgMissingFields      = "Please fill all fields"
	msgInvalidCredentials = "Invalid credentials"
)

type webApp struct {
	conf     *core.Config
	logger   core.Logger
	metrics  *metrics
	views    *views.Deps
	validate *validator.Validate
}

func registerWebApp(e *echo.Echo, app *webApp, sess echo.MiddlewareFunc) {
	g := e.Group("", sess)

	g.GET("/", app.home)
	g.GET(loginPath, app.loginPage)
	g.POST(loginPath, app.login)
	g.POST(logoutPath, app.logout)

	dg := g.Group(views.DashboardPath, loginRequiredMiddleware)
	dg.GET("", app.dashboard)
	dg.POST("/:portal/:op", app.action, roleMiddleware)
}

// LoginForm is the submitted login form. Every field must be filled.
// A whitespace-only password is a wrong password, not a missing one.
type LoginForm struct {
	Username string `form:"username" validate:"notblank"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role" validate:"notblank"`
}

// Handlers

func (app *webApp) home(ctx echo.Context) error {
	if _, ok := getContextIdentity(ctx); ok {
		return ctx.Redirect(http.StatusFound, views.DashboardPath)
	}
	return ctx.Redirect(http.StatusFound, loginPath)
}

func (app *webApp) loginPage(ctx echo.Context) error {
	if _, ok := getContextIdentity(ctx); ok {
		return ctx.Redirect(http.StatusFound, views.DashboardPath)
	}

	var form LoginForm
	if role, err := session.ParseRole(ctx.QueryParam("demo")); err == nil {
		if cred, ok := session.CredentialFor(role); ok {
			form = LoginForm{Username: cred.Username, Password: cred.Password, Role: cred.Role.String()}
		}
	}
	return app.renderLogin(ctx, http.StatusOK, form, popFlash(ctx, app.conf))
}

func (app *webApp) login(ctx echo.Context) error {
	var form LoginForm
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding to LoginForm")
	}

	if err := app.validate.Struct(form); err != nil {
		if _, ok := errors.Cause(err).(validator.ValidationErrors); !ok {
			return errors.Wrap(err, "validating login form")
		}
		app.metrics.login(roleLabel(form.Role), "incomplete")
		form.Password = ""
		return app.renderLogin(ctx, http.StatusBadRequest, form, &ui.Toast{Message: msgMissingFields, Type: ui.ToastError})
	}

	mgr := getContextSession(ctx)
	role, err := session.ParseRole(form.Role)
	if err != nil || !mgr.Login(form.Username, form.Password, role) {
		app.metrics.login(roleLabel(form.Role), "failure")
		form.Password = ""
		return app.renderLogin(ctx, http.StatusUnauthorized, form, &ui.Toast{Message: msgInvalidCredentials, Type: ui.ToastError})
	}

	id, _ := mgr.Current()
	if err = setSessionCookie(ctx, id, app.conf); err != nil {
		return errors.Wrap(err, "setting session cookie")
	}
	app.metrics.login(role.String(), "success")
	app.logger.Info("user logged in", id)
	return ctx.Redirect(http.StatusSeeOther, views.DashboardPath)
}

func (app *webApp) logout(ctx echo.Context) error {
	mgr := getContextSession(ctx)
	if id, ok := mgr.Current(); ok {
		app.logger.Info("user logged out", id)
	}
	mgr.Logout()
	clearSessionCookie(ctx, app.conf)
	return ctx.Redirect(http.StatusSeeOther, loginPath)
}

func (app *webApp) dashboard(ctx echo.Context) error {
	id, _ := getContextIdentity(ctx)

	var st views.State
	if err := ctx.Bind(&st); err != nil {
		return errors.Wrap(err, "binding to views.State")
	}
	view, err := views.For(id.Role, app.views)
	if err != nil {
		return errors.Wrap(err, "getting role view")
	}

	page := view.Page(id, st)
	page.Toast = popFlash(ctx, app.conf)
	return ctx.Render(http.StatusOK, ui.DashboardTemplate, page)
}

func (app *webApp) action(ctx echo.Context) error {
	id, _ := getContextIdentity(ctx)
	action := ctx.Param("op")

	view, err := views.For(id.Role, app.views)
	if err != nil {
		return errors.Wrap(err, "getting role view")
	}

	res, err := view.Do(id, action, ctx.Bind)
	if err != nil {
		if errors.Cause(err) == views.ErrUnknownAction {
			return errHttpNotFound
		}
		return errors.Wrapf(err, "performing %s", action)
	}
	app.metrics.action(id.Role.String(), action, res.Toast.Type)

	if err = setFlash(ctx, res.Toast, app.conf); err != nil {
		return errors.Wrap(err, "setting flash")
	}
	return ctx.Redirect(http.StatusSeeOther, views.Href(views.State{View: res.View}))
}

func (app *webApp) renderLogin(ctx echo.Context, code int, form LoginForm, toast *ui.Toast) error {
	page := ui.LoginPage{
		Title:    "Login",
		AppName:  app.conf.AppName,
		Username: form.Username,
		Password: form.Password,
		Role:     form.Role,
		Toast:    toast,
	}
	for _, role := range session.AllRoles {
		page.Roles = append(page.Roles, ui.Option{
			Value:    role.String(),
			Label:    role.Label(),
			Selected: role.String() == form.Role,
		})
	}
	for _, cred := range session.DemoCredentials {
		page.Demos = append(page.Demos, ui.Button{
			Label: cred.Label,
			Href:  loginPath + "?demo=" + cred.Role.String(),
			Tone:  ui.ToneDefault,
		})
	}
	return ctx.Render(code, ui.LoginTemplate, page)
}

// roleLabel keeps metric labels to the known roles.
func roleLabel(s string) string {
	if role, err := session.ParseRole(s); err == nil {
		return role.String()
	}
	return "unknown"
}
