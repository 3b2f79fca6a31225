package main

import (
	"log"
	"net/http"

	"github.com/baluflix/baluflix/internal/api"
	"github.com/baluflix/baluflix/internal/auth"
	"github.com/baluflix/baluflix/internal/catalog"
	"github.com/baluflix/baluflix/internal/config"
	"github.com/baluflix/baluflix/internal/database"
	"github.com/baluflix/baluflix/internal/jsonstore"
	"github.com/baluflix/baluflix/internal/storage"
	"github.com/baluflix/baluflix/internal/stream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}

	var store catalog.Store
	switch cfg.Store {
	case "file":
		store, err = jsonstore.New(cfg.StorePath)
		if err != nil {
			log.Fatal("Failed to initialize file store: ", err)
		}
	default:
		db, err := database.NewDB(database.Config{
			Type:       cfg.DBType,
			Host:       cfg.DBHost,
			Port:       cfg.DBPort,
			User:       cfg.DBUser,
			Password:   cfg.DBPassword,
			Name:       cfg.DBName,
			SQLitePath: cfg.DBPath,
		})
		if err != nil {
			log.Fatal("Failed to initialize database: ", err)
		}
		defer db.Close()
		store = database.NewVideoRepository(db)
	}

	gate := auth.NewGate(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPass, cfg.TokenTTL)
	service := catalog.NewService(store, localStorage, cfg.DefaultPublished)

	app := &api.App{
		Catalog:       service,
		Gate:          gate,
		Streamer:      stream.New(localStorage),
		MaxUploadSize: cfg.MaxUploadSize,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Upload directory: %s", cfg.UploadDir)
	log.Printf("Catalog store: %s", cfg.Store)
	if cfg.Store == "sql" {
		log.Printf("Database type: %s", cfg.DBType)
	} else {
		log.Printf("Store path: %s", cfg.StorePath)
	}
	log.Printf("Default published: %t", cfg.DefaultPublished)

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
