package core

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// GameLoop calls step and then publish once per tick until stopped. Stop
// returns only after the loop goroutine has exited, so the caller owns the
// world again.
type GameLoop struct {
	step     func()
	publish  func() error
	tickRate int

	started  atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

func NewGameLoop(tickRate int, step func(), publish func() error) *GameLoop {
	return &GameLoop{
		step:     step,
		publish:  publish,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.started.Store(true)
	defer close(g.done)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		// A pending stop wins over a ready tick.
		if g.stopped() {
			log.Println("Game loop stopped")
			return
		}

		select {
		case <-g.stopChan:
		case <-ticker.C:
			if !g.stopped() {
				g.tick()
			}
		}
	}
}

// Stop ends the loop and waits for the tick in flight to finish. It is safe to
// call more than once and before Run.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
	if g.started.Load() {
		<-g.done
	}
}

func (g *GameLoop) stopped() bool {
	select {
	case <-g.stopChan:
		return true
	default:
		return false
	}
}

func (g *GameLoop) tick() {
	g.step()

	if err := g.publish(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}
