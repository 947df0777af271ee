package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/gyver-dev/wedding-planner/internal/config"
	dbpkg "github.com/gyver-dev/wedding-planner/internal/db"
	"github.com/gyver-dev/wedding-planner/internal/middleware"
	"github.com/gyver-dev/wedding-planner/internal/routes"
	"github.com/gyver-dev/wedding-planner/internal/schema"
)

func main() {

	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Schema setup happens before anything can serve traffic; a broken or
	// unreachable store fails the boot instead of limping along.
	if err := schema.EnsureDatabase(ctx, "pgx", cfg.AdminDSN(), cfg.DBName); err != nil {
		logrus.Fatalf("failed to ensure database: %v", err)
	}

	gw, err := dbpkg.Open(dbpkg.Config{
		DSN:             cfg.DSN(),
		DriverName:      "pgx",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
		QueryTimeout:    5 * time.Second,
	})
	if err != nil {
		logrus.Fatalf("failed to open database pool: %v", err)
	}
	defer gw.Close()

	if err := schema.EnsureTables(ctx, gw); err != nil {
		logrus.Fatalf("failed to ensure tables: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, gw)

	logrus.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
