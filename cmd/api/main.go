package main

import (
	"context"
	"expvar"
	"fmt"
	"os"
	"runtime"

	"tenthouse/internal/auth"
	"tenthouse/internal/config"
	"tenthouse/internal/db"
	"tenthouse/internal/domain/inquiries"
	"tenthouse/internal/domain/storage"
	"tenthouse/internal/domain/testimonials"
	"tenthouse/internal/mailer"
	"tenthouse/internal/metrics"
	"tenthouse/internal/notifications"
	"tenthouse/internal/ratelimiter"

	"github.com/9ssi7/exponent"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			Mahadev Tent House API
//	@description	Customer testimonials and event inquiries for the Mahadev Tent House website.

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@securityDefinitions.basic	BasicAuth

func main() {
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	// Database
	if err := db.Migrate(context.Background(), cfg.DB.Addr); err != nil {
		logger.Fatalw("migration failed", "error", err)
	}

	pool, err := db.New(cfg.DB.Addr, cfg.DB.MaxConns, cfg.DB.MaxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool)

	// Notifications: email when SMTP is configured, Expo push to configured
	// and registered admin devices
	var mail mailer.Client
	if cfg.Mail.MailEnabled() {
		smtpMailer, err := mailer.NewSMTPMailer(
			cfg.Mail.Host,
			cfg.Mail.Port,
			cfg.Mail.Username,
			cfg.Mail.Password,
			cfg.Mail.FromEmail,
			cfg.Mail.FromName,
		)
		if err != nil {
			logger.Fatal(err)
		}
		mail = smtpMailer
	} else {
		logger.Warn("SMTP is not configured, email notifications are disabled")
	}

	expo := exponent.NewClient()
	if cfg.Push.AccessToken != "" {
		expo = exponent.NewClient(exponent.WithAccessToken(cfg.Push.AccessToken))
	}
	push := notifications.NewExpoAdapter(expo)

	notifier := notifications.NewAdminNotifier(mail, cfg.Mail.NotificationEmail, push, cfg.Push.AdminTokens).
		WithRegistry(store.PushTokens)

	// Services
	tcfg := testimonials.DefaultConfig()
	tcfg.RateLimit = testimonials.RateLimitConfig{
		Enabled: cfg.Testimonial.RateLimitEnabled,
		Max:     cfg.Testimonial.RateLimitMax,
		Window:  cfg.Testimonial.RateLimitWindow,
	}
	tcfg.Page = testimonials.PageConfig{
		DefaultLimit: cfg.Testimonial.DefaultLimit,
		MaxLimit:     cfg.Testimonial.MaxLimit,
	}
	if len(cfg.Testimonial.SpamWords) > 0 {
		tcfg.Validator.SpamWords = cfg.Testimonial.SpamWords
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.RateLimiter.RequestsPerTimeFrame,
		cfg.RateLimiter.TimeFrame,
	)

	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.Auth.TokenSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.Issuer,
		cfg.Auth.Issuer,
		cfg.Auth.AccessTokenExp,
		cfg.Auth.RefreshTokenExp,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := &application{
		config:        cfg,
		logger:        logger,
		testimonials:  testimonials.NewService(store.Testimonials, notifier, logger, tcfg),
		moderation:    testimonials.NewAdminService(store.Testimonials, logger, tcfg.Page),
		inquiries:     inquiries.NewService(store.Inquiries, notifier, logger),
		pushTokens:    store.PushTokens,
		authenticator: jwtAuthenticator,
		rateLimiter:   rateLimiter,
		metrics:       metrics.New(reg),
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		s := pool.Stat()
		return map[string]any{
			"total_conns":    s.TotalConns(),
			"idle_conns":     s.IdleConns(),
			"acquired_conns": s.AcquiredConns(),
			"max_conns":      s.MaxConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
