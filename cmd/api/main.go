package main

import (
	"log"
	"time"

	"github.com/arabicvideomaker/backend/config"
	"github.com/arabicvideomaker/backend/internal/bootstrap"
	"github.com/arabicvideomaker/backend/internal/projects/repository"
	"github.com/arabicvideomaker/backend/internal/speech"
	"github.com/arabicvideomaker/backend/internal/videogen"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	var store repository.Repository
	switch cfg.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Store.RedisAddr})
		store = repository.NewRedisRepository(client)
		log.Printf("using redis project store at %s", cfg.Store.RedisAddr)
	default:
		store = repository.NewMemoryRepository()
		log.Println("using in-memory project store")
	}

	speechClient := speech.NewClient(cfg.Speech.BaseURL, cfg.Speech.APIKey)
	speechSvc := speech.NewService(speechClient, cfg.Media.Dir, cfg.Media.BaseURL)

	videoClient := videogen.NewClient(cfg.Video.BaseURL, cfg.Video.APIKey, time.Duration(cfg.Video.TimeoutSeconds)*time.Second)
	videoSvc := videogen.NewService(store, videoClient)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "arabic-video-backend",
		Version:      cfg.App.Version,
		Store:        store,
		SpeechSvc:    speechSvc,
		VideoSvc:     videoSvc,
		MediaDir:     cfg.Media.Dir,
		MediaBaseURL: cfg.Media.BaseURL,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
