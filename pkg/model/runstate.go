package model

// AmuletLevel and DeepestLevel are the depth bounds of a run, per
// spec §3.
const (
	AmuletLevel  = 26
	DeepestLevel = 40
)

// RunState is the process-wide state of a play session: the depth
// cursor, turn counters, player stats, and playback mode flags.
// Cells, items, and creatures belong to a Level; RunState is what
// survives a level transition (spec §3's ownership rules).
type RunState struct {
	DepthLevel        int
	PlayerTurnNumber  int
	AbsoluteTurnNumber int
	ScentTurnNumber   int

	Strength     int
	Gold         int
	StealthRange int

	Player *Creature

	Weapon    *Item
	Armor     *Item
	RingLeft  *Item
	RingRight *Item
	Pack      *Pack

	AutoPlayingLevel bool
	Disturbed        bool
	CautiousMode     bool

	PlaybackMode         bool
	PlaybackPaused       bool
	PlaybackOOS          bool
	PlaybackFastForward  bool
	PlaybackDelayPerTurn int

	GameHasEnded     bool
	GameExitStatus   int

	JustRested   bool
	JustSearched bool

	Levels map[int]*Level // visited levels, keyed by depth; generated lazily
}

// NewRunState returns a fresh run at depth 1 with an empty pack.
func NewRunState() *RunState {
	return &RunState{
		DepthLevel: 1,
		Strength:   12,
		Pack:       NewPack(),
		Levels:     make(map[int]*Level),
		Player:     &Creature{IsPlayer: true, MovementSpeed: 100, AttackSpeed: 100},
	}
}

// CurrentLevel returns the level at DepthLevel, or nil if it hasn't
// been generated yet.
func (r *RunState) CurrentLevel() *Level {
	return r.Levels[r.DepthLevel]
}

// IsPostAmulet reports whether the run has passed the amulet level,
// switching item population to the lumenstone distribution (spec 4.E).
func (r *RunState) IsPostAmulet() bool {
	return r.DepthLevel > AmuletLevel
}
