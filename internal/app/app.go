package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	guestbookHTTP "guestbook/internal/controller/http"
	"guestbook/internal/repo/persistent"
	"guestbook/internal/usecase"
	"guestbook/pkg/config"
	"guestbook/pkg/jwt"
	"guestbook/pkg/logger"
	"guestbook/pkg/middleware"
	"guestbook/pkg/queue"
	"guestbook/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "guestbook/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, redisClient, queueClient, log)
	userUseCase := usecase.NewUserUseCase(userRepo, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)

	// Initialize HTTP handlers
	postHandler := guestbookHTTP.NewPostHandler(postUseCase, log)
	userHandler := guestbookHTTP.NewUserHandler(userUseCase, log)
	authHandler := guestbookHTTP.NewAuthHandler(authUseCase, log)

	guestbookHTTP.RegisterValidators()

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Session issuance is open; everything else requires a session.
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, log, cfg.RateLimitRequests, cfg.RateLimitWindow))

	{
		api.POST("/messages", postHandler.PostMessage)
		api.GET("/messages", postHandler.GetAllMessages)
		api.PUT("/messages/:id", postHandler.UpdateMessage)
		api.DELETE("/messages/:id", postHandler.DeleteMessage)
		api.POST("/messages/:id/like", postHandler.LikeMessage)
		api.DELETE("/messages/:id/like", postHandler.UnlikeMessage)
		api.POST("/messages/:id/comments", postHandler.AddComment)
		api.GET("/comments", postHandler.GetAllComments)
		api.DELETE("/comments/:id", postHandler.DeleteComment)

		api.GET("/user/subscription", userHandler.SubscriptionStatus)
		api.GET("/user/address", userHandler.GetAddress)
		api.POST("/user/address", userHandler.AddAddress)
		api.PUT("/user/address", userHandler.UpdateAddress)

		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/avatar", authHandler.UploadAvatar)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Guestbook service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down guestbook service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Guestbook service exited")
}
