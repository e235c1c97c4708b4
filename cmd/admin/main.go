package main

import (
	"fmt"
	"log"
	"os"

	"meetgo/backend/internal/config"
	"meetgo/backend/internal/models"
	"meetgo/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Operator CLI for meeting cleanup when the host is unreachable.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	storageSvc := storage.NewStorageService(db, rdb)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		meetings, err := storageSvc.ListActiveMeetings()
		if err != nil {
			log.Fatalf("Error listing meetings: %v", err)
		}
		for _, m := range meetings {
			fmt.Printf("%s  %q  creator=%d  created=%s\n",
				m.MeetingID, m.Title, m.CreatorID, m.CreatedAt.Format("2006-01-02 15:04"))
		}
	case "end":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin end <meeting_id>")
			os.Exit(1)
		}
		meetingID := os.Args[2]
		if err := endMeeting(storageSvc, meetingID); err != nil {
			log.Fatalf("Error ending meeting: %v", err)
		}
		fmt.Printf("Meeting %s has been ended.\n", meetingID)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func endMeeting(s storage.Storage, meetingID string) error {
	if _, err := s.GetActiveMeeting(meetingID); err != nil {
		return err
	}
	if err := s.EndMeeting(meetingID); err != nil {
		return err
	}
	return s.PublishEvent(meetingID, models.Event{
		Type:      models.EventMeetingEnded,
		MeetingID: meetingID,
		Body:      "Meeting has been ended by an operator",
		System:    true,
	})
}
