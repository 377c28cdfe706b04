package dungeon

import "errors"

var (
	ErrInvalidConfig   = errors.New("dungeon: invalid configuration")
	ErrInvalidTemplate = errors.New("dungeon: invalid tile template")
	ErrIndexOutOfRange = errors.New("dungeon: cell index out of range")

	// Recoverable failures. These are logged and collected in Result.Diagnostics.
	ErrNoMatch              = errors.New("dungeon: no compatible template")
	ErrNoStartTile          = errors.New("dungeon: no start tile available")
	ErrNoEndTile            = errors.New("dungeon: no end tile available")
	ErrNoFreeConnector      = errors.New("dungeon: no free connector")
	ErrCellOccupied         = errors.New("dungeon: cell already occupied")
	ErrUnresolvedConnectors = errors.New("dungeon: unresolved connectors remain")
)
