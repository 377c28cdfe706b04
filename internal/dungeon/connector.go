package dungeon

import "fmt"

// ConnectorState is the lifecycle state of a connector.
// free -> connected and free -> invalid are the only transitions.
type ConnectorState int

const (
	ConnectorFree ConnectorState = iota
	ConnectorConnected
	ConnectorInvalid
)

// String returns the string representation of a ConnectorState
func (s ConnectorState) String() string {
	switch s {
	case ConnectorFree:
		return "free"
	case ConnectorConnected:
		return "connected"
	case ConnectorInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ConnectorRef is a handle to a connector: its owning tile and index on that tile.
type ConnectorRef struct {
	Tile  TileID
	Index int
}

// String returns e.g. "tile3#1"
func (r ConnectorRef) String() string {
	return fmt.Sprintf("tile%d#%d", r.Tile, r.Index)
}

// Connector is a directional edge slot on a placed tile.
type Connector struct {
	Direction Direction

	ref     ConnectorRef
	state   ConnectorState
	partner ConnectorRef
}

// Ref returns the handle of this connector
func (c *Connector) Ref() ConnectorRef {
	return c.ref
}

// Owner returns the ID of the tile owning this connector
func (c *Connector) Owner() TileID {
	return c.ref.Tile
}

// State returns the connector's state
func (c *Connector) State() ConnectorState {
	return c.state
}

// IsFree returns true if the connector is neither connected nor invalid
func (c *Connector) IsFree() bool {
	return c.state == ConnectorFree
}

// IsConnected returns true if the connector is paired with a partner
func (c *Connector) IsConnected() bool {
	return c.state == ConnectorConnected
}

// IsInvalid returns true if the connector is permanently excluded from matching
func (c *Connector) IsInvalid() bool {
	return c.state == ConnectorInvalid
}

// Partner returns the paired connector's handle, if connected.
func (c *Connector) Partner() (ConnectorRef, bool) {
	if c.state != ConnectorConnected {
		return ConnectorRef{}, false
	}
	return c.partner, true
}

// invalidate marks a free connector invalid. Connected connectors are left alone.
func (c *Connector) invalidate() {
	if c.state == ConnectorFree {
		c.state = ConnectorInvalid
	}
}

// connect pairs two free connectors. Both sides change together or neither does.
func connect(a, b *Connector) bool {
	if a == b || !a.IsFree() || !b.IsFree() {
		return false
	}
	a.state, a.partner = ConnectorConnected, b.ref
	b.state, b.partner = ConnectorConnected, a.ref
	return true
}
