package levelgen

import (
	"fmt"
)

// Config bounds the room-attachment loop for one level. Unlike the
// dungeon graph synthesizer's Config, a level's layout is not itself
// configured per-run: these numbers come from the active
// catalog.DungeonProfile and the depth, but the loop bounds
// themselves are the generator's own safety valve and so live here.
type Config struct {
	// MaxRoomAttempts bounds how many candidate placements the room
	// attachment loop tries before giving up on one more room.
	MaxRoomAttempts int

	// MinRoomsPerLevel and MaxRoomsPerLevel are the configured room-count
	// bounds, independent of the profile's weighting. Validate checks
	// them; the attachment loop does not enforce MinRoomsPerLevel.
	MinRoomsPerLevel int
	MaxRoomsPerLevel int

	// DoorSitesPerRoom caps how many door-site candidates a single
	// room contributes to the attachment frontier.
	DoorSitesPerRoom int
}

// DefaultConfig returns the generator's stock loop bounds.
func DefaultConfig() Config {
	return Config{
		MaxRoomAttempts:  35,
		MinRoomsPerLevel: 10,
		MaxRoomsPerLevel: 35,
		DoorSitesPerRoom: 4,
	}
}

// Validate checks the loop bounds are sane.
func (c Config) Validate() error {
	if c.MaxRoomAttempts <= 0 {
		return fmt.Errorf("levelgen: MaxRoomAttempts must be > 0, got %d", c.MaxRoomAttempts)
	}
	if c.MinRoomsPerLevel <= 0 || c.MaxRoomsPerLevel < c.MinRoomsPerLevel {
		return fmt.Errorf("levelgen: invalid room count bounds [%d,%d]", c.MinRoomsPerLevel, c.MaxRoomsPerLevel)
	}
	if c.DoorSitesPerRoom <= 0 || c.DoorSitesPerRoom > 4 {
		return fmt.Errorf("levelgen: DoorSitesPerRoom must be in 1..4, got %d", c.DoorSitesPerRoom)
	}
	return nil
}
