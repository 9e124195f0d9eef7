// Package dependency wires the application together.
package dependency

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rentaldesk/backend/config"
	"github.com/rentaldesk/backend/internal/application/adapter"
	"github.com/rentaldesk/backend/internal/application/usecase/auth"
	"github.com/rentaldesk/backend/internal/application/usecase/availability"
	"github.com/rentaldesk/backend/internal/application/usecase/channel"
	"github.com/rentaldesk/backend/internal/application/usecase/dashboard"
	"github.com/rentaldesk/backend/internal/application/usecase/expense"
	"github.com/rentaldesk/backend/internal/application/usecase/payment"
	"github.com/rentaldesk/backend/internal/application/usecase/property"
	"github.com/rentaldesk/backend/internal/application/usecase/reconciliation"
	"github.com/rentaldesk/backend/internal/application/usecase/reservation"
	"github.com/rentaldesk/backend/internal/infra/db"
	"github.com/rentaldesk/backend/internal/infra/scheduler"
	"github.com/rentaldesk/backend/internal/infra/server/router"
	"github.com/rentaldesk/backend/internal/integration/adapters"
	"github.com/rentaldesk/backend/internal/integration/email"
	"github.com/rentaldesk/backend/internal/integration/email/templates"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/controller"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/middleware"
	"github.com/rentaldesk/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *db.Database
	Router      *router.Router
	EmailWorker *email.Worker
	Scheduler   *scheduler.Scheduler
}

// NewInjector creates a new injector with all dependencies wired up.
// redisClient may be nil, in which case rate limiting stays in memory.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client) (*Injector, error) {
	gdb := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gdb)
	tokenRepo := persistence.NewTokenRepository(gdb)
	propertyRepo := persistence.NewPropertyRepository(gdb)
	channelRepo := persistence.NewChannelRepository(gdb)
	reservationRepo := persistence.NewReservationRepository(gdb)
	paymentRepo := persistence.NewPaymentRepository(gdb)
	expenseRepo := persistence.NewExpenseRepository(gdb)
	emailQueueRepo := persistence.NewEmailQueueRepository(gdb)

	// Adapters
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:            cfg.JWT.AccessTokenExpiry,
		Refresh:           cfg.JWT.RefreshTokenExpiry,
		RememberMeAccess:  cfg.JWT.RememberMeAccessExpiry,
		RememberMeRefresh: cfg.JWT.RememberMeRefreshExpiry,
	}, tokenRepo)

	// Guest e-mail
	emailService := email.NewService(emailQueueRepo)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	sender, err := newEmailSender(cfg.Email)
	if err != nil {
		return nil, err
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	vat := decimal.NewFromFloat(cfg.Booking.DefaultVATPercent)
	reconciler := reconciliation.NewService(reservationRepo, paymentRepo, propertyRepo, emailService, vat)
	settings := availability.Settings{
		MinNights:     cfg.Booking.MinNights,
		MaxPeriods:    cfg.Booking.MaxPeriods,
		MaxWindowDays: cfg.Booking.MaxWindowDays,
	}

	// Controllers
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)

	propertyController := controller.NewPropertyController(
		property.NewCreatePropertyUseCase(propertyRepo),
		property.NewListPropertiesUseCase(propertyRepo),
		property.NewUpdatePropertyUseCase(propertyRepo),
		property.NewDeletePropertyUseCase(propertyRepo, reservationRepo),
	)

	channelController := controller.NewChannelController(
		channel.NewCreateChannelUseCase(channelRepo, vat),
		channel.NewListChannelsUseCase(channelRepo),
		channel.NewDeleteChannelUseCase(channelRepo, reservationRepo),
		channel.NewSetOverrideUseCase(channelRepo, propertyRepo),
		channel.NewListOverridesUseCase(channelRepo, propertyRepo),
	)

	reservationController := controller.NewReservationController(
		reservation.NewCreateReservationUseCase(reservationRepo, propertyRepo, channelRepo, reconciler, emailService),
		reservation.NewUpdateReservationUseCase(reservationRepo, propertyRepo, channelRepo, reconciler),
		reservation.NewDeleteReservationUseCase(reservationRepo),
		reservation.NewGetReservationUseCase(reconciler),
		reservation.NewListReservationsUseCase(reservationRepo),
		reconciliation.NewGetFinancialsUseCase(reconciler),
	)

	paymentController := controller.NewPaymentController(
		payment.NewCreatePaymentUseCase(paymentRepo, reservationRepo, reconciler),
		payment.NewUpdatePaymentUseCase(paymentRepo, reconciler),
		payment.NewDeletePaymentUseCase(paymentRepo, reconciler),
		payment.NewListPaymentsUseCase(paymentRepo),
	)

	availabilityController := controller.NewAvailabilityController(
		availability.NewCheckAvailabilityUseCase(reservationRepo, propertyRepo),
		availability.NewListAvailablePeriodsUseCase(reservationRepo, propertyRepo, settings),
		availability.NewGetCalendarUseCase(reservationRepo, propertyRepo, settings),
	)

	expenseController := controller.NewExpenseController(
		expense.NewCreateExpenseUseCase(expenseRepo, propertyRepo),
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
	)

	dashboardController := controller.NewDashboardController(
		dashboard.NewGetPropertyDashboardUseCase(propertyRepo, reservationRepo, channelRepo, paymentRepo, expenseRepo, reconciler),
	)

	var redisPing controller.Pinger
	if redisClient != nil {
		redisPing = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	healthController := controller.NewHealthController(database.Ping, redisPing)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(
		redisClient,
		cfg.Server.LoginMaxAttempts,
		cfg.Server.LoginWindow,
		cfg.Server.RateLimitEnabled,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(router.Controllers{
		Health:       healthController,
		Auth:         authController,
		Property:     propertyController,
		Channel:      channelController,
		Reservation:  reservationController,
		Payment:      paymentController,
		Availability: availabilityController,
		Expense:      expenseController,
		Dashboard:    dashboardController,
	}, loginRateLimiter, authMiddleware)

	// Maintenance jobs
	sched, err := scheduler.New(scheduler.NewJobs(tokenRepo, emailQueueRepo, reservationRepo, loginRateLimiter, cfg.Email.RetentionDays))
	if err != nil {
		return nil, err
	}

	return &Injector{
		Config:      cfg,
		DB:          database,
		Router:      r,
		EmailWorker: emailWorker,
		Scheduler:   sched,
	}, nil
}

func newEmailSender(cfg config.EmailConfig) (adapter.EmailSender, error) {
	if cfg.Provider == "resend" && cfg.ResendAPIKey != "" {
		return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail, cfg.ReplyTo, cfg.ResendBaseURL)
	}
	if cfg.Provider == "resend" {
		slog.Warn("Resend API key missing, guest e-mails will only be logged")
	}
	return email.NewLogSender(), nil
}
