package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/handler"
	"github.com/noah-isme/campus-erp-api/internal/middleware"
	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/service"
	"github.com/noah-isme/campus-erp-api/internal/snapshot"
	"github.com/noah-isme/campus-erp-api/internal/store"
	"github.com/noah-isme/campus-erp-api/pkg/config"
	"github.com/noah-isme/campus-erp-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-erp-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-erp-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	persist, err := newSnapshotStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init persistence", "backend", cfg.Persistence.Backend, "error", err)
	}

	writer := snapshot.NewWriter(persist, 16, logr)
	writer.Start(ctx)
	defer writer.Stop()

	directory := store.New(
		loadOrSeed(ctx, persist, logr),
		logr,
		store.WithCommitHook(writer.EnqueueSnapshot),
		store.WithSessionHook(writer.EnqueueSession),
	)
	restoreSession(ctx, persist, directory, logr)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	authSvc := service.NewAuthService(directory, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	ledgerSvc := service.NewLedgerService(directory, cfg.Ledger.CourseFee, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(directory, ledgerSvc, logr)
	adminSvc := service.NewAdminService(directory, enrollmentSvc, validate, logr)
	catalogSvc := service.NewCatalogService(directory, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, metricsSvc)
	ledgerHandler := handler.NewLedgerHandler(ledgerSvc, metricsSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, ledgerSvc, catalogSvc, metricsSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	exportHandler := handler.NewExportHandler(catalogSvc, cfg.Ledger.Currency)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	authed.GET("/me", catalogHandler.Me)
	authed.GET("/courses", catalogHandler.Courses)

	students := authed.Group("")
	students.Use(middleware.RequireRoles(models.RoleStudent))
	students.GET("/courses/available", catalogHandler.AvailableCourses)
	students.GET("/timetable", catalogHandler.Timetable)
	students.POST("/enrollments", enrollmentHandler.Enroll)
	students.DELETE("/enrollments/:courseId", enrollmentHandler.Drop)
	students.POST("/payments", ledgerHandler.RecordPayment)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/students", adminHandler.Students)
	admin.POST("/students", adminHandler.CreateStudent)
	admin.GET("/faculty", adminHandler.Faculty)
	admin.POST("/faculty", adminHandler.CreateFaculty)
	admin.POST("/courses", adminHandler.CreateCourse)
	admin.POST("/enrollments", adminHandler.EnrollStudent)
	admin.POST("/fines", adminHandler.ApplyFine)
	admin.GET("/payments/recent", adminHandler.RecentPayments)
	admin.GET("/courses/:courseId/roster.csv", exportHandler.CourseRosterCSV)
	admin.GET("/students/:id/payments.csv", exportHandler.StudentPaymentsCSV)
	admin.GET("/students/:id/statement.pdf", exportHandler.FeeStatementPDF)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Persistence.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newSnapshotStore selects the persistence backend. The memory backend
// keeps everything in-process and loses state on exit.
func newSnapshotStore(cfg *config.Config) (snapshot.Store, error) {
	switch cfg.Persistence.Backend {
	case config.BackendRedis:
		return snapshot.NewRedisStore(cfg.Persistence.Redis)
	case config.BackendPostgres:
		return snapshot.NewPostgresStore(cfg.Persistence.Postgres)
	case config.BackendMemory:
		return snapshot.NewMemoryStore(), nil
	default:
		return snapshot.NewFileStore(cfg.Persistence.DataDir)
	}
}

// loadOrSeed returns the persisted aggregate, falling back to the seed
// dataset when nothing is stored or the document is unreadable.
func loadOrSeed(ctx context.Context, persist snapshot.Store, logr *zap.Logger) *models.Snapshot {
	snap, err := persist.Load(ctx)
	if err != nil {
		if err != snapshot.ErrNotFound {
			logr.Warn("failed to load persisted state, falling back to seed", zap.Error(err))
		}
		return store.Seed()
	}
	return snap
}

// restoreSession re-establishes the persisted session reference when it
// still resolves to a known account.
func restoreSession(ctx context.Context, persist snapshot.Store, directory *store.Directory, logr *zap.Logger) {
	accountID, err := persist.LoadSession(ctx)
	if err != nil {
		if err != snapshot.ErrNotFound {
			logr.Warn("failed to load persisted session", zap.Error(err))
		}
		return
	}
	if directory.Snapshot().AccountByID(accountID) == nil {
		return
	}
	directory.RestoreSession(accountID)
}
