package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/handler"
	"github.com/mmynk/consorcio/internal/metrics"
	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/service"
)

// Options carries the services and settings the routes depend on.
type Options struct {
	// Mode is the gin mode; empty leaves the global mode untouched.
	Mode string

	Ledger   *service.LedgerService
	Auth     *service.AuthService
	Receipts *service.ReceiptService
	JWT      *auth.JWTManager
	Metrics  *metrics.Metrics
	Logger   *slog.Logger

	// RequireAuth makes every mutating route demand a valid bearer token
	// once the first account is registered.
	RequireAuth bool
}

// SetupRouter configures the gin engine with middleware and all API routes.
func SetupRouter(opts Options) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.CORS(),
		middleware.OptionalAuth(opts.JWT),
		middleware.Logging(opts.Logger),
		middleware.Metrics(opts.Metrics),
	)

	// Mutating routes pass through guard.
	guard := func(c *gin.Context) { c.Next() }
	if opts.RequireAuth {
		guard = middleware.RequireAuthOnceEnrolled(opts.JWT, opts.Ledger.HasAccounts)
	}

	r.GET("/", handler.Info)
	r.GET("/health", handler.Health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	authHandler := handler.NewAuthHandler(opts.Auth)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", guard, authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.PUT("/accounts/:participantId", guard, authHandler.SetActive)
	}

	participants := handler.NewParticipantHandler(opts.Ledger)
	pg := r.Group("/participants")
	{
		pg.GET("", participants.List)
		pg.POST("", guard, participants.Create)
		pg.GET("/:id", participants.Get)
		pg.PUT("/:id", guard, participants.Update)
		pg.DELETE("/:id", guard, participants.Delete)
		pg.GET("/:id/expenses", participants.Expenses)
		pg.GET("/:id/payments", participants.Payments)
		pg.GET("/:id/balance", participants.Balance)
	}

	expenses := handler.NewExpenseHandler(opts.Ledger)
	eg := r.Group("/expenses")
	{
		eg.GET("", expenses.List)
		eg.POST("", guard, expenses.Create)
		eg.GET("/:id", expenses.Get)
		eg.PUT("/:id", guard, expenses.Update)
		eg.DELETE("/:id", guard, expenses.Delete)
	}

	payments := handler.NewPaymentHandler(opts.Ledger)
	pay := r.Group("/payments")
	{
		pay.GET("", payments.List)
		pay.POST("", guard, payments.Create)
		pay.GET("/:id", payments.Get)
		pay.PUT("/:id", guard, payments.Update)
		pay.DELETE("/:id", guard, payments.Delete)
	}

	currentUser := handler.NewCurrentUserHandler(opts.Ledger)
	cu := r.Group("/current-user")
	{
		cu.GET("", currentUser.Get)
		cu.PUT("", guard, currentUser.Set)
		cu.DELETE("", guard, currentUser.Clear)
		cu.POST("/:participantId", guard, currentUser.SetFromParticipant)
	}

	reports := handler.NewReportHandler(opts.Ledger)
	r.GET("/balances", reports.Balances)
	r.GET("/debts", reports.Debts)
	r.GET("/summary", reports.Summary)

	receiptHandler := handler.NewReceiptHandler(opts.Receipts)
	up := r.Group("/upload")
	{
		up.POST("/receipt", guard, receiptHandler.Upload)
		up.GET("/receipt/:filename", receiptHandler.Download)
	}

	return r
}
