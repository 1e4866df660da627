package protocol

import (
	"github.com/automoto/doomerang-collide/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBox uint = 10
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetBox uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	return esync.RegisterComponent(
		SyncIDNetBox,
		netcomponents.NetBoxData{},
		netcomponents.NetBox,
		esync.WithInterpFn(InterpIDNetBox, netcomponents.LerpNetBox),
	)
}
