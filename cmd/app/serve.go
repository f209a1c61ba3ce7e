package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"aitrip/cmd/fx/account_fx"
	"aitrip/cmd/fx/api_key_fx"
	"aitrip/cmd/fx/config_fx"
	"aitrip/cmd/fx/controllers_fx"
	"aitrip/cmd/fx/dashboard_fx"
	"aitrip/cmd/fx/db_fx"
	"aitrip/cmd/fx/logger_fx"
	"aitrip/cmd/fx/memcache_fx"
	"aitrip/cmd/fx/planner_fx"
	"aitrip/cmd/fx/trip_fx"
	"aitrip/internal/api/controllers"
	"aitrip/internal/config"
	"aitrip/pkg/middleware"
	mem "aitrip/pkg/memcache"
	"aitrip/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		api_key_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.NewCORSHandler(cfg.CORSOrigins)(engine),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config    config.Config
	Log       *zap.Logger
	Issuer    *utils.TokenIssuer
	Denylist  mem.TokenDenylist
	Health    *controllers.HealthController
	Account   *controllers.AccountController
	Trip      *controllers.TripController
	Expense   *controllers.ExpenseController
	APIKey    *controllers.APIKeyController
	AI        *controllers.AIController
	Dashboard *controllers.DashboardController
}

func ProvideRouter(p routerParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	r.GET("/health", p.Health.Health)

	api := r.Group("/api")
	auth := middleware.JWTAuthMiddleware(p.Issuer, p.Denylist)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", p.Account.Register)
	authGroup.POST("/login", p.Account.Login)
	authGroup.POST("/logout", auth, p.Account.Logout)
	authGroup.GET("/me", auth, p.Account.Me)

	tripsGroup := api.Group("/trips", auth)
	tripsGroup.GET("", p.Trip.ListTrips)
	tripsGroup.POST("", p.Trip.CreateTrip)
	tripsGroup.GET("/:id", p.Trip.GetTrip)
	tripsGroup.PUT("/:id", p.Trip.UpdateTrip)
	tripsGroup.DELETE("/:id", p.Trip.DeleteTrip)
	tripsGroup.POST("/:id/generate-plan", p.Trip.GeneratePlan)
	tripsGroup.GET("/:id/expenses", p.Trip.ListTripExpenses)
	tripsGroup.POST("/:id/expenses", p.Trip.CreateTripExpense)

	expensesGroup := api.Group("/expenses", auth)
	expensesGroup.GET("", p.Expense.ListExpenses)
	expensesGroup.POST("", p.Expense.CreateExpense)
	expensesGroup.DELETE("/:id", p.Expense.DeleteExpense)

	keysGroup := api.Group("/api-keys", auth)
	keysGroup.GET("", p.APIKey.GetAPIKeys)
	keysGroup.POST("", p.APIKey.UpsertAPIKeys)

	aiGroup := api.Group("/ai", auth)
	aiGroup.POST("/generate-plan", p.AI.GeneratePlan)
	aiGroup.POST("/parse-voice", p.AI.ParseVoice)

	api.GET("/dashboard", auth, p.Dashboard.GetDashboard)
}
