package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/usly/internal/feedback"
	"github.com/Decentr-net/usly/internal/geo"
	"github.com/Decentr-net/usly/internal/health"
	"github.com/Decentr-net/usly/internal/render"
	"github.com/Decentr-net/usly/internal/server"
	"github.com/Decentr-net/usly/internal/service/impl"
	"github.com/Decentr-net/usly/internal/session"
	"github.com/Decentr-net/usly/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"migrations/postgres" description:"postgres migrations directory"`

	FeedbackURL     string        `long:"feedback.url" env:"FEEDBACK_URL" description:"base url bug reports are posted to, reports are only acknowledged when empty"`
	FeedbackTimeout time.Duration `long:"feedback.timeout" env:"FEEDBACK_TIMEOUT" default:"10s" description:"timeout for posting a bug report"`

	SessionTTL          time.Duration `long:"session.ttl" env:"SESSION_TTL" default:"30m" description:"idle session lifetime"`
	SessionHistoryLimit int           `long:"session.history_limit" env:"SESSION_HISTORY_LIMIT" default:"256" description:"maximal navigation history length"`
	SessionToastTTL     time.Duration `long:"session.toast_ttl" env:"SESSION_TOAST_TTL" default:"2.2s" description:"transient notification lifetime"`

	GeoTimeout time.Duration `long:"geo.timeout" env:"GEO_TIMEOUT" default:"8s" description:"location request timeout"`
	GeoMaxAge  time.Duration `long:"geo.max_age" env:"GEO_MAX_AGE" default:"2m" description:"maximal age of an accepted location"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "USLY"
	parser.LongDescription = "USLY session service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "usly",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()
	s := postgres.New(db)

	reg := prometheus.NewRegistry()
	renderMetrics, sessionMetrics := render.NewMetrics(), session.NewMetrics()
	if err := renderMetrics.Register(reg); err != nil {
		logrus.WithError(err).Fatal("failed to register render metrics")
	}
	if err := sessionMetrics.Register(reg); err != nil {
		logrus.WithError(err).Fatal("failed to register session metrics")
	}

	m := session.NewManager(opts.SessionTTL, session.Options{
		HistoryLimit: opts.SessionHistoryLimit,
		ToastTTL:     opts.SessionToastTTL,
		Geo: geo.Options{
			Timeout: opts.GeoTimeout,
			MaxAge:  opts.GeoMaxAge,
		},
		Sender:        newSender(),
		RenderMetrics: renderMetrics,
		Metrics:       sessionMetrics,
	})

	r := chi.NewMux()
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", s.Ping),
		m,
	))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Group(func(r chi.Router) {
		server.SetupRouter(m, impl.New(s), r, opts.RequestTimeout)
	})

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return m.Run(ctx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

func newSender() feedback.Sender {
	if opts.FeedbackURL == "" {
		logrus.Warn("empty feedback url, bug reports will only be acknowledged")
		return nil
	}

	return feedback.NewClient(opts.FeedbackURL, opts.FeedbackTimeout)
}
