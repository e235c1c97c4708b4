package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"meetgo/backend/internal/api/handler"
	"meetgo/backend/internal/chat"
	"meetgo/backend/internal/config"
	"meetgo/backend/internal/meethub"
	"meetgo/backend/internal/models"
	"meetgo/backend/internal/storage"
	"meetgo/backend/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Meeting{},
		&models.MeetingParticipant{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting MeetGo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	pipeline := chat.NewPipeline(cfg.CensoredWords)
	hub := meethub.NewManagerService(s, pipeline)

	var notifier *telegram.Notifier
	if cfg.TelegramToken != "" {
		notifier, err = telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramOpsChatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
	}

	go hub.Run()
	hub.StartEventListener()
	hub.RecoverActiveMeetings()

	r := gin.Default()
	h := handler.NewHandler(hub, s, notifier, cfg.JWTSecret)

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	auth := r.Group("/", h.AuthRequired())
	auth.GET("/dashboard", h.Dashboard)
	auth.POST("/meetings", h.CreateMeeting)
	auth.POST("/meetings/join", h.JoinMeeting)
	auth.GET("/meetings/:meeting_id", h.MeetingRoom)
	auth.POST("/meetings/:meeting_id/end", h.EndMeeting)
	auth.POST("/admin/mute_participant", h.MuteParticipant)
	auth.POST("/admin/unmute_participant", h.UnmuteParticipant)
	auth.POST("/admin/remove_participant", h.RemoveParticipant)
	auth.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
