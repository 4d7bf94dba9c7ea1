package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdullahwaheed/fsnd-capstone/internal/config"
	"github.com/abdullahwaheed/fsnd-capstone/internal/handler"
	"github.com/abdullahwaheed/fsnd-capstone/internal/middleware"
	pgRepo "github.com/abdullahwaheed/fsnd-capstone/internal/repository/postgres"
	"github.com/abdullahwaheed/fsnd-capstone/internal/service"
	"github.com/abdullahwaheed/fsnd-capstone/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции: схема и стартовый набор вопросов
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики
	questionHandler := handler.NewQuestionHandler(questionService, categoryService)
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Ограничение частоты мутирующих запросов включается конфигурацией.
	// Redis нужен только ему, поэтому подключение тоже условное.
	var writeLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		redisClient, errRedis := database.NewUniversalRedisClient(cfg.Redis)
		if errRedis != nil {
			log.Printf("Failed to connect to Redis: %v", errRedis)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		limitConfig := middleware.DefaultWriteRateLimitConfig()
		if cfg.RateLimit.MaxRequests > 0 {
			limitConfig.MaxRequests = cfg.RateLimit.MaxRequests
		}
		if cfg.RateLimit.WindowSec > 0 {
			limitConfig.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
		}
		writeLimiter = middleware.NewRateLimiter(redisClient).Limit(limitConfig)
	}

	// Инициализируем роутер Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(handler.Recovery()))
	router.Use(middleware.RequestID())

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// В development: доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS: API публичный, фронтенд ходит с любого origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Ошибки маршрутизации отдаем в том же конверте, что и остальные ответы
	router.HandleMethodNotAllowed = true
	router.NoRoute(handler.NoRoute())
	router.NoMethod(handler.NoMethod())

	router.GET("/health", handler.Health)

	// Категории
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)

		// Группа маршрутов, требующих categoryID
		categoryWithID := categories.Group("/:id")
		categoryWithID.Use(middleware.ExtractUintParam("id", "categoryID"))
		{
			categoryWithID.GET("/questions", categoryHandler.ListCategoryQuestions)
		}
	}

	// Вопросы
	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.POST("/search", questionHandler.SearchQuestions)

		// Мутирующие маршруты, при включенном лимитере - под ним
		writeQuestions := questions.Group("")
		if writeLimiter != nil {
			writeQuestions.Use(writeLimiter)
		}
		{
			writeQuestions.POST("", questionHandler.CreateQuestion)
			writeQuestions.DELETE("/:id",
				middleware.ExtractUintParam("id", "questionID"),
				questionHandler.DeleteQuestion)
		}
	}

	// Викторина
	router.POST("/quizzes", quizHandler.NextQuestion)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// После получения сигнала SIGINT или SIGTERM корректно завершаем работу
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
