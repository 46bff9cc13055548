package app

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/formbite/internal/pkg/clock"
	"github.com/shandysiswandi/formbite/internal/pkg/config"
	"github.com/shandysiswandi/formbite/internal/pkg/goroutine"
	"github.com/shandysiswandi/formbite/internal/pkg/idempotency"
	"github.com/shandysiswandi/formbite/internal/pkg/instrument"
	"github.com/shandysiswandi/formbite/internal/pkg/mail"
	"github.com/shandysiswandi/formbite/internal/pkg/messaging"
	"github.com/shandysiswandi/formbite/internal/pkg/router"
	"github.com/shandysiswandi/formbite/internal/pkg/uid"
	"github.com/shandysiswandi/formbite/internal/pkg/validator"
)

func (a *App) initConfig() {
	config.LoadDotEnv(".env")

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	snow, err := uid.NewSnowflake(a.config.GetInt64("app.snowflake_node"))
	if err != nil {
		slog.Error("failed to init uid number snowflake", "error", err)
		os.Exit(1)
	}
	a.uid = snow
}

// ping retries fn with a capped fibonacci backoff until it succeeds or attempts run out.
func (a *App) ping(name string, fn func(ctx context.Context) error) error {
	b := retry.NewFibonacci(200 * time.Millisecond)
	b = retry.WithCappedDuration(3*time.Second, b)
	b = retry.WithMaxRetries(uint64(max(a.config.GetInt("app.startup_ping_retries"), 0)), b)

	return retry.Do(a.ctx, b, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := fn(pingCtx); err != nil {
			slog.Warn("ping failed, retrying", "resource", name, "error", err)
			return retry.RetryableError(err)
		}

		return nil
	})
}

func (a *App) initDatabase() {
	config, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
	if err != nil {
		slog.Error("failed to parse DB connection string.", "error", err)
		os.Exit(1)
	}

	config.MaxConns = a.config.GetInt32("database.pool.max_conns")
	config.MinConns = a.config.GetInt32("database.pool.min_conns")
	config.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	config.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	config.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, config)
	if err != nil {
		slog.Error("failed to create DB connection pool", "error", err)
		os.Exit(1)
	}

	if err := a.ping("database", pool.Ping); err != nil {
		slog.Error("failed to ping DB", "error", err)
		os.Exit(1)
	}

	a.dbConn = pool
}

func (a *App) initCache() {
	if !a.config.GetBool("redis.enabled") {
		slog.Info("redis disabled, idempotency keys are not tracked")
		a.idemp = &idempotency.Noop{}
		return
	}

	opt, err := redis.ParseURL(a.config.GetString("redis.url"))
	if err != nil {
		slog.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(opt)

	if err := a.ping("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() }); err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	a.cacheConn = rdb
	a.idemp = idempotency.New(a.cacheConn)
}

func (a *App) initMail() {
	if strings.TrimSpace(a.config.GetString("mail.driver")) != "smtp" {
		a.mail = mail.NewLog()
		return
	}

	mail, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     a.config.GetString("mail.host"),
		Port:     a.config.GetInt("mail.port"),
		Username: a.config.GetString("mail.username"),
		Password: a.config.GetString("mail.password"),
		From:     a.config.GetString("mail.from"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail
}

func (a *App) initMessaging() {
	driver := a.config.GetString("messaging.driver")
	client, err := messaging.NewFromDriver(a.ctx, driver, messaging.FactoryOptions{
		Kafka: messaging.KafkaConfig{
			Brokers:                a.config.GetArray("messaging.kafka.brokers"),
			BatchTimeout:           a.config.GetMillisecond("messaging.kafka.batch_timeout_ms"),
			AllowAutoTopicCreation: a.config.GetBool("messaging.kafka.allow_auto_topic_creation"),
			ReaderMaxWait:          a.config.GetMillisecond("messaging.kafka.reader_max_wait_ms"),
		},
		NATS: messaging.NATSConfig{
			URL: a.config.GetString("messaging.nats.url"),
			Options: []nats.Option{
				nats.Name(a.config.GetString("messaging.nats.name")),
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
				nats.Timeout(a.config.GetSecond("messaging.nats.timeout_seconds")),
				nats.ReconnectWait(a.config.GetSecond("messaging.nats.reconnect_wait_seconds")),
				nats.PingInterval(a.config.GetSecond("messaging.nats.ping_interval_seconds")),
				nats.MaxPingsOutstanding(a.config.GetInt("messaging.nats.max_pings_outstanding")),
				nats.RetryOnFailedConnect(a.config.GetBool("messaging.nats.retry_on_failed_connect")),
			},
		},
		NSQ: messaging.NSQConfig{
			ProducerAddr: a.config.GetString("messaging.nsq.producer_addr"),
			NSQDAddrs:    a.config.GetArray("messaging.nsq.nsqd_addrs"),
			LookupdAddrs: a.config.GetArray("messaging.nsq.lookupd_addrs"),
			MaxAttempts:  uint16(min(max(a.config.GetInt("messaging.nsq.max_attempts"), 0), math.MaxUint16)),
		},
		PubSub: messaging.PubSubConfig{
			ProjectID:       a.config.GetString("messaging.pubsub.project_id"),
			Endpoint:        a.config.GetString("messaging.pubsub.endpoint"),
			CredentialsFile: a.config.GetString("messaging.pubsub.credentials_file"),
		},
	})
	if err != nil {
		slog.Error("failed to init messaging", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.messaging = client
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Messaging",
			fn: func(context.Context) error {
				return a.messaging.Close()
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Redis",
			fn: func(context.Context) error {
				if a.cacheConn == nil {
					return nil
				}

				return a.cacheConn.Close()
			},
		},
		{
			name: "Database",
			fn: func(context.Context) error {
				a.dbConn.Close()

				return nil
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
