package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/avela/athletiq/internal/app"
	"github.com/avela/athletiq/internal/config"
	"github.com/avela/athletiq/internal/discipline"
	"github.com/avela/athletiq/internal/server"
	"github.com/avela/athletiq/internal/store"
	"github.com/avela/athletiq/internal/track"
)

func main() {
	fmt.Println("Athletiq - Athletics Technique Evaluation")

	configPath := flag.String("config", defaultConfigPath(), "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize the store
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}
	st, err := store.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Wire the evaluation pipeline
	hub := server.NewReportsHub()
	a := app.New(app.Config{
		Store:       st,
		Registry:    discipline.NewRegistryWith(cfg.Disciplines),
		Extractor:   track.NewExtractor(cfg.Extractor.Command, cfg.Extractor.TimeoutMs),
		Broadcaster: hub,
	})

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start server
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		App:       a,
		Hub:       hub,
	})

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// defaultConfigPath returns ~/.athletiq/athletiq.yaml, or a relative path
// when the home directory cannot be determined.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "athletiq.yaml"
	}
	return filepath.Join(homeDir, ".athletiq", "athletiq.yaml")
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.athletiq/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".athletiq", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
