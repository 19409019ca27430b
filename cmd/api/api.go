package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tenthouse/docs" //this is required to generate swagger docs
	"tenthouse/internal/auth"
	"tenthouse/internal/config"
	"tenthouse/internal/domain/inquiries"
	"tenthouse/internal/domain/pushtokens"
	"tenthouse/internal/domain/testimonials"
	"tenthouse/internal/metrics"
	"tenthouse/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// testimonialService is the public testimonial surface used by handlers.
type testimonialService interface {
	Submit(ctx context.Context, in testimonials.SubmitInput) (*testimonials.SubmitResult, error)
	ListApproved(ctx context.Context, limit, offset int) ([]testimonials.Testimonial, error)
	Statistics(ctx context.Context) testimonials.Statistics
	RateLimitWindow() time.Duration
}

type moderationService interface {
	ListAll(ctx context.Context, limit, offset int, status string) ([]testimonials.Testimonial, error)
	Get(ctx context.Context, id int64) (*testimonials.Testimonial, error)
	SetStatus(ctx context.Context, id int64, status string) error
	BulkApprove(ctx context.Context, ids []int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type inquiryService interface {
	Submit(ctx context.Context, in inquiries.SubmitInput) (*inquiries.SubmitResult, error)
	List(ctx context.Context, limit, offset int) ([]inquiries.Inquiry, error)
}

type application struct {
	config        config.Config
	logger        *zap.SugaredLogger
	testimonials  testimonialService
	moderation    moderationService
	inquiries     inquiryService
	pushTokens    pushtokens.Store
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	metrics       *metrics.Metrics
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// forwarded headers are client controlled unless a proxy sets them
	if app.config.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.With(app.BasicAuthMiddleware()).Handle("/metrics", app.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.Addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", app.listTestimonialsHandler)
			r.With(app.RateLimiterMiddleware).Post("/", app.submitTestimonialHandler)
			r.Get("/stats", app.testimonialStatsHandler)
		})

		r.With(app.RateLimiterMiddleware).Post("/inquiries", app.submitInquiryHandler)

		r.Route("/admin", func(r chi.Router) {
			r.With(app.BasicAuthMiddleware()).Post("/token", app.createAdminTokenHandler)
			r.Post("/token/refresh", app.refreshAdminTokenHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AdminTokenMiddleware)

				r.Route("/testimonials", func(r chi.Router) {
					r.Get("/", app.adminListTestimonialsHandler)
					r.Post("/bulk-approve", app.adminBulkApproveHandler)
					r.Get("/{testimonialID}", app.adminGetTestimonialHandler)
					r.Patch("/{testimonialID}/status", app.adminSetStatusHandler)
					r.Delete("/{testimonialID}", app.adminDeleteTestimonialHandler)
				})
				r.Get("/inquiries", app.adminListInquiriesHandler)

				r.Route("/push-tokens", func(r chi.Router) {
					r.Post("/", app.savePushTokenHandler)
					r.Delete("/", app.removePushTokenHandler)
					r.Post("/prune", app.pruneStaleTokensHandler)
				})
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.ExternalURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.Addr, "env", app.config.Env)

	return nil
}
