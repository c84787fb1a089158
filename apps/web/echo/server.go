package echoweb

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/trezcool/ccdbms/apps/web/ui"
	"github.com/trezcool/ccdbms/apps/web/views"
	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/college"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		Store          *college.Service
		Validate       *validator.Validate
		Translator     ut.Translator
		Renderer       *ui.Renderer
		DisableReqLogs bool
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(ctx context.Context) error
		Close() error
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		metrics  *metrics
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	if deps.Renderer == nil {
		deps.Renderer = ui.NewRenderer(deps.Conf)
	}
	s := &server{
		deps:     deps,
		app:      echo.New(),
		metrics:  newMetrics(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(s.metrics.middleware)

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(conf.AppName, s.deps.Logger)
	s.app.Renderer = templateRenderer{s.deps.Renderer}
	s.app.Debug = conf.Debug

	s.app.GET("/healthz", s.healthz)
	if conf.Server.Metrics {
		s.app.GET("/metrics", echo.WrapHandler(s.metrics.handler()))
	}

	web := &webApp{
		conf:    conf,
		logger:  s.deps.Logger,
		metrics: s.metrics,
		views: &views.Deps{
			Store:      s.deps.Store,
			Conf:       conf,
			Validate:   s.deps.Validate,
			Translator: s.deps.Translator,
		},
		validate: s.deps.Validate,
	}
	registerWebApp(s.app, web, sessionMiddleware(conf))
}

func (s *server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- errors.Wrap(err, "starting server")
	}
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok", "build": s.deps.Conf.Build})
}

// templateRenderer plugs the page renderer into echo.Context.Render.
type templateRenderer struct {
	*ui.Renderer
}

func (r templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.Renderer.Render(w, name, data)
}
