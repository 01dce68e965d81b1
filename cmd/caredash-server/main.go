package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/caredash/caredash/internal/config"
	"github.com/caredash/caredash/internal/domain/account"
	"github.com/caredash/caredash/internal/domain/appointment"
	"github.com/caredash/caredash/internal/domain/availability"
	"github.com/caredash/caredash/internal/domain/doctor"
	"github.com/caredash/caredash/internal/domain/notification"
	"github.com/caredash/caredash/internal/domain/patient"
	"github.com/caredash/caredash/internal/domain/payment"
	"github.com/caredash/caredash/internal/domain/specialization"
	"github.com/caredash/caredash/internal/domain/user"
	"github.com/caredash/caredash/internal/platform/middleware"
	"github.com/caredash/caredash/internal/platform/session"
	"github.com/caredash/caredash/internal/platform/upstream"
)

// PatientSummaryAdapter adapts the patient service to the appointment
// enrichment interface, avoiding a circular import between the appointment
// and patient packages.
type PatientSummaryAdapter struct {
	svc *patient.Service
}

// Summary implements appointment.PatientSource.
func (a *PatientSummaryAdapter) Summary(ctx context.Context, id string) (appointment.PersonSummary, error) {
	p, err := a.svc.FetchOne(ctx, id)
	if err != nil {
		return appointment.PersonSummary{}, err
	}
	return appointment.PersonSummary{ID: p.ID, Name: p.DisplayName}, nil
}

// DoctorSummaryAdapter adapts the doctor service to the appointment
// enrichment interface.
type DoctorSummaryAdapter struct {
	svc *doctor.Service
}

// Summary implements appointment.DoctorSource.
func (a *DoctorSummaryAdapter) Summary(ctx context.Context, id string) (appointment.PersonSummary, error) {
	d, err := a.svc.FetchOne(ctx, id)
	if err != nil {
		return appointment.PersonSummary{}, err
	}
	return appointment.PersonSummary{ID: d.ID, Name: d.DisplayName}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "caredash-server",
		Short: "Admin console gateway for the medical platform",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(whoamiCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the console gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in against the upstream platform and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			app, err := buildApp()
			if err != nil {
				return err
			}
			sess, err := app.accounts.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("signed in as %s (%s)\n", sess.Name, sess.Email)
			return nil
		},
	}
	cmd.Flags().String("email", "", "account email")
	cmd.Flags().String("password", "", "account password")
	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the current session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			sess, ok := app.accounts.Whoami()
			if !ok {
				return fmt.Errorf("not signed in")
			}
			fmt.Printf("%s <%s> role=%s\n", sess.Name, sess.Email, sess.Role)
			return nil
		},
	}
}

// app holds the wired services shared by the subcommands.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	sessions *session.Store
	up       *upstream.Client
	accounts *account.Service

	doctors         *doctor.Service
	patients        *patient.Service
	appointments    *appointment.Service
	payments        *payment.Service
	users           *user.Service
	specializations *specialization.Service
	availability    *availability.Service
	notifications   *notification.Service
}

func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "caredash").Logger()

	sessions := session.NewStore(cfg.SessionPath, cfg.SessionKeyPrefix, log)
	if err := sessions.Init(); err != nil {
		return nil, err
	}

	up := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, sessions, log)

	doctors := doctor.NewService(up, log, cfg.FallbackSeed)
	patients := patient.NewService(up, log, cfg.FallbackSeed)

	return &app{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		up:       up,
		accounts: account.NewService(up, sessions, log),

		doctors:  doctors,
		patients: patients,
		appointments: appointment.NewService(
			up,
			&PatientSummaryAdapter{svc: patients},
			&DoctorSummaryAdapter{svc: doctors},
			log,
			cfg.EnrichConcurrency,
			cfg.FallbackSeed,
		),
		payments:        payment.NewService(up, log, cfg.FallbackSeed),
		users:           user.NewService(up, log, cfg.FallbackSeed),
		specializations: specialization.NewService(up, log, cfg.FallbackSeed),
		availability:    availability.NewService(up, log, cfg.FallbackSeed),
		notifications:   notification.NewService(up, log, cfg.FallbackSeed),
	}, nil
}

func runServer() error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	log := app.log

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: app.cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	account.NewHandler(app.accounts).RegisterRoutes(api)
	doctor.NewHandler(app.doctors).RegisterRoutes(api)
	patient.NewHandler(app.patients).RegisterRoutes(api)
	appointment.NewHandler(app.appointments).RegisterRoutes(api)
	payment.NewHandler(app.payments).RegisterRoutes(api)
	user.NewHandler(app.users).RegisterRoutes(api)
	specialization.NewHandler(app.specializations).RegisterRoutes(api)
	availability.NewHandler(app.availability).RegisterRoutes(api)
	notification.NewHandler(app.notifications).RegisterRoutes(api)

	// Start server
	go func() {
		addr := ":" + app.cfg.Port
		log.Info().Str("addr", addr).Str("upstream", app.cfg.UpstreamBaseURL).Msg("starting console gateway")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
