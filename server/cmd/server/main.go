package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/server/core"
	"github.com/automoto/doomerang-collide/shared/protocol"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlay")
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", cfg.Server.Name, "Server display name")
	assetsDir := flag.String("assets", cfg.Server.AssetsDir, "Directory containing levels/*.tmx")
	level := flag.String("level", cfg.Server.Level, "Level to run (empty = first)")
	persist := flag.Bool("persist", cfg.Server.Persist, "Restore and save mover snapshots")
	policy := flag.String("policy", cfg.Collision.Policy, "Collision policy: nearest or last")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "tickrate":
			cfg.Server.TickRate = *tickRate
		case "name":
			cfg.Server.Name = *name
		case "assets":
			cfg.Server.AssetsDir = *assetsDir
		case "level":
			cfg.Server.Level = *level
		case "persist":
			cfg.Server.Persist = *persist
		case "policy":
			cfg.Collision.Policy = *policy
		}
	})
	if err := cfg.Current().Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	levelName, data, err := core.LoadServerLevel(cfg.Server.AssetsDir, cfg.Server.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server, err := core.NewServer(levelName, data)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting %q on port %d (tick rate: %d/s, level: %s, policy: %s)",
		cfg.Server.Name, cfg.Server.Port, cfg.Server.TickRate, levelName, cfg.CollisionPolicy())
	if err := server.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
