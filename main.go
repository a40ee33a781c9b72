package main

import (
	"context"
	"gin-wardrobe/controllers"
	"gin-wardrobe/infra"
	"gin-wardrobe/middlewares"
	"gin-wardrobe/models"
	"gin-wardrobe/repositories"
	"gin-wardrobe/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg infra.Config) *gin.Engine {

	documentRepository := repositories.NewDocumentRepository(db)

	tokenService := services.NewTokenService(cfg.SecretKey, cfg.TokenTTL)
	userService := services.NewUserService(documentRepository, tokenService)
	itemService := services.NewItemService(documentRepository)
	submissionService := services.NewSubmissionService(documentRepository)

	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	itemController := controllers.NewItemController(itemService)
	submissionController := controllers.NewSubmissionController(submissionService)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	r.POST("/users", authController.Register)
	r.POST("/tokens", authController.Login)

	userRouter := r.Group("/users/me", middlewares.AuthMiddleware(tokenService))
	userRouter.GET("", userController.Me)
	userRouter.PUT("", userController.UpdateMe)
	userRouter.DELETE("", userController.DeleteMe)

	itemRouter := r.Group("/items", middlewares.AuthMiddleware(tokenService))
	itemRouter.POST("", itemController.Create)
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouter.PUT("/:id", itemController.Update)
	itemRouter.DELETE("/:id", itemController.Delete)

	submissionRouter := r.Group("/submissions", middlewares.AuthMiddleware(tokenService))
	submissionRouter.POST("", submissionController.Create)
	submissionRouter.GET("", submissionController.FindAll)
	submissionRouter.GET("/:id", submissionController.FindById)
	submissionRouter.PUT("/:id", submissionController.Update)
	submissionRouter.DELETE("/:id", submissionController.Delete)

	return r
}

func initDB() *gorm.DB {
	db := infra.SetupDB()

	// The in-memory database always needs its schema; persistent databases
	// migrate on demand.
	if os.Getenv("DB_NAME") == "" || os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.StoredDocument{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	infra.Initialize()
	cfg := infra.LoadConfig()
	db := initDB()
	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
