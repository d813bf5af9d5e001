package main

import (
	"log"
	"net/http"

	"winey/internal/analytics"
	"winey/internal/archive"
	"winey/internal/config"
	"winey/internal/game"
	"winey/internal/handlers"
	"winey/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	archiveStore, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		log.Fatal("Failed to open archive:", err)
	}
	defer archiveStore.Close()

	ctx := &handlers.Context{
		GameStore: store.NewGameStore(),
		Archive:   archiveStore,
		Analytics: analytics.NewService(),
		Security:  game.NewSecurity(),
		Config:    cfg,
	}

	// Routes
	http.HandleFunc("/", ctx.HandleIndex)
	http.HandleFunc("/create", ctx.HandleCreateGame)
	http.HandleFunc("/join/", ctx.HandleJoinGame)
	http.HandleFunc("/qr/", ctx.HandleJoinQR)
	http.HandleFunc("/action/", ctx.HandleAction)
	http.HandleFunc("/sse/", ctx.HandleGameSSE)
	http.HandleFunc("/results/", ctx.HandleResults)

	log.Printf("Server starting on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
