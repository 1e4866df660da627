package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/network"
	"github.com/automoto/doomerang-collide/shared/protocol"
	"github.com/leap-fish/necs/esync"
)

func main() {
	address := flag.String("addr", fmt.Sprintf("localhost:%d", cfg.Server.Port), "Server address")
	interval := flag.Duration("interval", time.Second, "How often to print mover boxes")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*address)
	defer client.Disconnect()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			return
		case <-ticker.C:
			if client.State() == network.StateError {
				log.Fatalf("Watch failed: %v", client.LastError())
			}
			snap := client.LatestSnapshot()
			if snap == nil {
				continue
			}

			boxes := network.Boxes(*snap)
			ids := make([]esync.NetworkId, 0, len(boxes))
			for id := range boxes {
				ids = append(ids, id)
			}
			slices.Sort(ids)
			for _, id := range ids {
				b := boxes[id]
				log.Printf("mover %d: pos=(%.2f, %.2f) size=%.0fx%.0f ground=%v", id, b.X, b.Y, b.Width, b.Height, b.OnGround)
			}
		}
	}
}
