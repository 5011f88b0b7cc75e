package main

import (
	stdcontext "context"
	"fmt"
	"os"
	"time"

	"github.com/hollowcrawl/dungeoncore/pkg/action"
	"github.com/hollowcrawl/dungeoncore/pkg/ai"
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/debugmap"
	"github.com/hollowcrawl/dungeoncore/pkg/environment"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/levelgen"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/recording"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
	"github.com/hollowcrawl/dungeoncore/pkg/scheduler"
)

var osStderr = os.Stderr

// gameVersion is the recording header's versionString/patchVersion
// source (spec 4.J's version-compatibility check).
const gameVersion = version

// headlessTurnBudget bounds the no-menu demo loop so a fresh session
// without a playback file terminates instead of running forever.
const headlessTurnBudget = 200

// runLive builds or replays a live session and returns the process
// exit status (spec 4.J's CLI surface: Success,
// FailureRecordingWrongVersion, FailureSaveCorrupt).
func runLive() int {
	fio := osFileIO{}

	if *playbackFlag != "" {
		return runPlayback(fio)
	}
	return runFreshSession(fio)
}

// runFreshSession generates depth 1, places the player at the up
// stairs, and drives a short deterministic headless loop, optionally
// recording it (spec 4.F/4.H/4.G wired together, spec 4.J's
// recording-start protocol for -record).
func runFreshSession(fio osFileIO) int {
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	rs, lvl, err := newSession(seed)
	if err != nil {
		fmt.Fprintf(osStderr, "Error: %v\n", err)
		return FailureGenericError
	}

	var rec *recording.Buffer
	if *recordFlag != "" {
		info := recording.HeaderInfo{VersionString: gameVersion, Mode: recording.ModeRecording, Seed: seed}
		if err := fio.RemoveFile(*recordFlag); err != nil {
			fmt.Fprintf(osStderr, "Error: %v\n", err)
			return FailureGenericError
		}
		rec, err = recording.NewRecorder(fio, *recordFlag, info)
		if err != nil {
			fmt.Fprintf(osStderr, "Error: %v\n", err)
			return FailureGenericError
		}
	}

	monsterRNG := rng.NewRunRNG(seed)
	aiRunner := ai.New(monsterRNG)
	envSim := environment.NewSimulator(rng.NewRunRNG(seed))
	moveRNG := rng.NewRunRNG(seed)

	if *verbose {
		fmt.Printf("Seed %d: generated depth %d, player at (%d,%d)\n", seed, rs.DepthLevel, rs.Player.Loc.X, rs.Player.Loc.Y)
	}

	for turn := 0; turn < headlessTurnBudget && !rs.GameHasEnded; turn++ {
		dir := aiDemoStep(turn)
		var result action.Result
		if rec != nil {
			result = action.PlayerMoves(rs, lvl, moveRNG, rec, dir)
			info := recording.HeaderInfo{VersionString: gameVersion, Mode: recording.ModeRecording, Seed: seed, PlayerTurnNumber: uint32(rs.PlayerTurnNumber)}
			if err := rec.ConsiderFlushingBufferToFile(fio, info); err != nil && *verbose {
				fmt.Printf("warning: %v\n", err)
			}
		} else {
			result = action.PlayerMoves(rs, lvl, moveRNG, noopRecorder{}, dir)
		}
		if result.TurnEnded {
			scheduler.PlayerTurnEnded(rs, lvl, result.XPXPThisTurn, aiRunner, envSim)
		}
	}

	if rec != nil {
		info := recording.HeaderInfo{VersionString: gameVersion, Mode: recording.ModeRecording, Seed: seed, PlayerTurnNumber: uint32(rs.PlayerTurnNumber)}
		if err := rec.Flush(fio, info); err != nil {
			fmt.Fprintf(osStderr, "Error flushing recording: %v\n", err)
			return FailureGenericError
		}
		for _, w := range rec.Warnings() {
			fmt.Fprintf(osStderr, "warning: %s\n", w)
		}
	}

	if *verbose {
		dumpPath := "dungeoncore_debug.svg"
		if err := debugmap.SaveToFile(lvl, dumpPath, debugmap.DefaultOptions()); err == nil {
			fmt.Printf("Wrote debug map to %s\n", dumpPath)
		}
	}

	fmt.Printf("Session complete: seed=%d depth=%d playerTurn=%d\n", seed, rs.DepthLevel, rs.PlayerTurnNumber)
	return Success
}

// runPlayback replays a recording file through the live simulation,
// checking version compatibility and OOS (spec 4.J).
func runPlayback(fio osFileIO) int {
	player, err := recording.NewPlayer(fio, *playbackFlag, gameVersion)
	if err != nil {
		fmt.Fprintf(osStderr, "Error: %v\n", err)
		if *nonInteractivePlayback {
			return FailureRecordingWrongVersion
		}
		return FailureSaveCorrupt
	}

	rs, lvl, err := newSession(player.Header.Seed)
	if err != nil {
		fmt.Fprintf(osStderr, "Error: %v\n", err)
		return FailureGenericError
	}
	rs.PlaybackMode = true

	aiRunner := ai.New(rng.NewRunRNG(player.Header.Seed))
	envSim := environment.NewSimulator(rng.NewRunRNG(player.Header.Seed))
	moveRNG := rng.NewRunRNG(player.Header.Seed)

	for !player.Done() && !rs.GameHasEnded {
		key, ok := player.RecallKeystroke(fio)
		if !ok {
			break
		}
		dir, isMove := action.DirectionForKeystroke(action.Keystroke(key))
		if !isMove {
			continue
		}
		result := action.PlayerMoves(rs, lvl, moveRNG, noopRecorder{}, dir)
		if result.TurnEnded {
			scheduler.PlayerTurnEnded(rs, lvl, result.XPXPThisTurn, aiRunner, envSim)
		}
	}

	rs.PlaybackOOS = player.OutOfSync
	if player.OutOfSync {
		fmt.Fprintf(osStderr, "Playback desynchronized: %s\n", player.Reason())
		if *nonInteractivePlayback {
			return FailureSaveCorrupt
		}
	}

	fmt.Printf("Playback complete: seed=%d depth=%d playerTurn=%d oos=%v\n",
		player.Header.Seed, rs.DepthLevel, rs.PlayerTurnNumber, rs.PlaybackOOS)
	return Success
}

// newSession generates a depth-1 level from seed and places the
// player at the up stairs (levelgen.Generate never places a creature
// itself — spec 4.E leaves that to the caller).
func newSession(seed uint64) (*model.RunState, *model.Level, error) {
	rs := model.NewRunState()
	cat := catalog.DefaultCatalog()
	metered := catalog.NewMeteredTable(nil)

	lvl, err := levelgen.Generate(stdcontext.Background(), levelgen.DefaultConfig(), cat, seed, rs.DepthLevel, metered)
	if err != nil {
		return nil, nil, fmt.Errorf("generating depth %d: %w", rs.DepthLevel, err)
	}
	rs.Levels[rs.DepthLevel] = lvl
	rs.Player.Loc = lvl.UpStairsLoc
	rs.Player.CurrentHP = 40

	return rs, lvl, nil
}

// aiDemoStep cycles through the four cardinal directions so a session
// without live input still produces deterministic, varied movement
// for a short headless demo run.
func aiDemoStep(turn int) grid.Pos {
	return grid.NbDirs[turn%4]
}

// noopRecorder discards keystrokes; used whenever -record is absent.
type noopRecorder struct{}

func (noopRecorder) RecordKeystroke(action.Keystroke) {}
func (noopRecorder) CancelKeystroke()                 {}
