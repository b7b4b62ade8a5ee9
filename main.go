package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"portfolio-monitor/config"
	"portfolio-monitor/database"
	"portfolio-monitor/handlers"
	"portfolio-monitor/market"
	"portfolio-monitor/middleware"
	"portfolio-monitor/news"
	"portfolio-monitor/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to create indexes")
	}
	cancel()

	router := newRouter(cfg, db)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("database disconnect failed")
	}
}

func newRouter(cfg *config.Config, db *database.DB) *gin.Engine {
	users := store.NewMongoUserStore(db.Users())
	portfolios := store.NewMongoPortfolioStore(db.Portfolios())
	alerts := store.NewMongoAlertStore(db.Alerts())

	secret := []byte(cfg.JWTSecret)
	authHandler := &handlers.AuthHandler{Users: users, Secret: secret, TokenTTL: cfg.TokenTTL}
	portfolioHandler := &handlers.PortfolioHandler{Portfolios: portfolios}
	alertHandler := &handlers.AlertHandler{Alerts: alerts}
	marketHandler := &handlers.MarketHandler{
		Provider: market.NewMockProvider(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
	newsHandler := &handlers.NewsHandler{Provider: news.NewStaticProvider()}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := router.Group("/api")

	// Public routes
	api.POST("/users", authHandler.Register)
	api.POST("/token", authHandler.Token)
	api.GET("/market/stock/:symbol", marketHandler.Quote)
	api.GET("/market/watchlist", marketHandler.Watchlist)

	// Protected routes
	auth := api.Group("/")
	auth.Use(middleware.RequireUser(users, secret))
	{
		auth.GET("/users/me", authHandler.Me)

		auth.POST("/portfolios", portfolioHandler.Create)
		auth.GET("/portfolios", portfolioHandler.List)
		auth.GET("/portfolios/:id", portfolioHandler.Get)
		auth.PUT("/portfolios/:id", portfolioHandler.Update)
		auth.DELETE("/portfolios/:id", portfolioHandler.Delete)
		auth.POST("/portfolios/:id/assets", portfolioHandler.AddAsset)
		auth.GET("/portfolios/:id/assets", portfolioHandler.ListAssets)

		auth.GET("/news", newsHandler.List)

		auth.POST("/alerts", alertHandler.Create)
		auth.GET("/alerts", alertHandler.List)
		auth.DELETE("/alerts/:id", alertHandler.Delete)
	}

	return router
}
