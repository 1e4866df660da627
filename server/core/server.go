package core

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/scenes"
	"github.com/automoto/doomerang-collide/shared/leveldata"
	"github.com/automoto/doomerang-collide/shared/netcomponents"
	"github.com/automoto/doomerang-collide/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server runs the collision simulation for one level and replicates every
// mover's box to connected clients.
type Server struct {
	world     donburi.World
	scene     *scenes.SimulationScene
	loop      *GameLoop
	transport *transports.WsServerTransport
	level     string

	// Connected clients only watch; they own no entities.
	clients map[*router.NetworkClient]struct{}
	mu      sync.RWMutex
}

// NewServer creates a server for the named level
func NewServer(level string, data *leveldata.CollisionData) (*Server, error) {
	world := donburi.NewWorld()

	// Set up the world for esync
	srvsync.UseEsync(world)

	s := &Server{
		world:   world,
		scene:   scenes.NewSimulationScene(world, data),
		level:   level,
		clients: make(map[*router.NetworkClient]struct{}),
	}
	s.loop = NewGameLoop(cfg.Server.TickRate, s.Step, srvsync.DoSync)

	// Mark every mover for network sync with interpolation for its box
	for _, mover := range s.scene.Movers() {
		entity := mover.Entity()
		if err := srvsync.NetworkSync(s.world, &entity,
			srvsync.WithInterp(netcomponents.NetBox),
		); err != nil {
			return nil, fmt.Errorf("network sync mover: %w", err)
		}
	}

	if cfg.Server.Persist {
		s.restore()
	}

	s.setupRouterCallbacks()

	log.Printf("Level %q ready: %d movers", level, len(s.scene.Movers()))
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server. The snapshot is taken only after the
// loop has finished its last tick.
func (s *Server) Stop() {
	s.loop.Stop()

	if cfg.Server.Persist {
		if err := systems.SaveSnapshot(s.scene.ECS(), s.level); err == nil {
			log.Printf("Saved snapshot for level %q", s.level)
		}
	}
}

// Step runs one server tick worth of simulation sub-steps.
func (s *Server) Step() {
	for i := 0; i < cfg.Sim.StepsPerTick; i++ {
		s.scene.Update()
	}
}

func (s *Server) restore() {
	if err := systems.InitPersistence(); err != nil {
		return
	}
	found, err := systems.LoadSnapshot(s.scene.ECS(), s.level)
	if err != nil {
		log.Printf("Warning: Could not restore level %q: %v", s.level, err)
		return
	}
	if found {
		log.Printf("Restored snapshot for level %q", s.level)
	}
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.mu.Lock()
	s.clients[client] = struct{}{}
	s.mu.Unlock()

	log.Printf("Client connected: %s", client.Id())
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// Scene returns the running simulation
func (s *Server) Scene() *scenes.SimulationScene {
	return s.scene
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
