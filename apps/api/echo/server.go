package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/connectingcampuses/backend/core"
	"github.com/connectingcampuses/backend/core/attendance"
	"github.com/connectingcampuses/backend/core/carpool"
	"github.com/connectingcampuses/backend/core/lostfound"
	"github.com/connectingcampuses/backend/core/market"
	"github.com/connectingcampuses/backend/core/newsroom"
	"github.com/connectingcampuses/backend/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool
		Logger         core.Logger

		UserSvc       *user.Service
		AttendanceSvc *attendance.Service
		NewsroomSvc   *newsroom.Service
		LostFoundSvc  *lostfound.Service
		CarpoolSvc    *carpool.Service
		MarketSvc     *market.Service
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     core.Conf.Server.AllowedOrigins,
		AllowCredentials: true,
	}))
	s.app.Use(metricsMiddleware())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(metricsHandler()))

	api := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(appJWTConfig)
	session := []echo.MiddlewareFunc{cookieTokenMiddleware, jwt}

	registerUserAPI(api, session, s.opts.UserSvc)
	registerAttendanceAPI(api, session, s.opts.AttendanceSvc)
	registerNewsroomAPI(api, session, s.opts.NewsroomSvc)
	registerLostFoundAPI(api, session, s.opts.LostFoundSvc)
	registerCarpoolAPI(api, session, s.opts.CarpoolSvc)
	registerMarketAPI(api, session, s.opts.MarketSvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Addr); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Errors() <-chan error { return s.errors }

func (s *server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

// signalShutdown requests a graceful shutdown of the server loop.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
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

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Connecting Campuses API!")
}
