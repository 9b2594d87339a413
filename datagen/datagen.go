/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package datagen drives self-play worker threads producing Synpack
// training data, grounded on the reference's datagen/mod.rs (spec §6.3).
package datagen

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	golog "github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
	"github.com/Ciekce/syntaks/logging"
	"github.com/Ciekce/syntaks/movegen"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/prng"
	"github.com/Ciekce/syntaks/search"
	"github.com/Ciekce/syntaks/types"
)

var log *golog.Logger

// out formats progress lines with thousands separators, the same
// message.NewPrinter(language.German) convention the teacher uses for
// large node/count figures.
var out = message.NewPrinter(language.German)

func init() {
	log = logging.GetLog("datagen")
}

var (
	stopFlag  atomic.Bool
	errorFlag atomic.Bool
	printMu   sync.Mutex
)

// signalStop marks the run as failed and asks every worker to wind down.
func signalStop() {
	stopFlag.Store(true)
	errorFlag.Store(true)
}

// gameResult mirrors the reference's GameResult: a side-relative outcome
// flipped at each ply boundary as the mover alternates.
type gameResult int

const (
	resultLoss gameResult = iota
	resultDraw
	resultWin
)

func (r gameResult) flip() gameResult {
	switch r {
	case resultLoss:
		return resultWin
	case resultWin:
		return resultLoss
	default:
		return resultDraw
	}
}

func fromBoardOutcome(o board.Outcome) gameResult {
	switch o {
	case board.OutcomeWin:
		return resultWin
	case board.OutcomeLoss:
		return resultLoss
	default:
		return resultDraw
	}
}

// isDrawnByRepetition reports whether currKey has occurred in keyHistory
// at least once before (twofold, per the Open Question 2 resolution).
func isDrawnByRepetition(currKey uint64, keyHistory []uint64) bool {
	for i := len(keyHistory) - 1; i >= 0; i-- {
		if keyHistory[i] == currKey {
			return true
		}
	}
	return false
}

// checkTerminal re-implements datagen/mod.rs's check_terminal directly
// atop board.Terminal, adding the repetition check that needs the full
// key history rather than a single bool.
func checkTerminal(pos *board.Position, keyHistory []uint64, prevMove types.Move) (gameResult, bool) {
	repeated := prevMove.IsSpread() && isDrawnByRepetition(pos.Key, keyHistory)
	outcome, terminal := board.Terminal(pos, prevMove, repeated)
	if !terminal {
		return resultDraw, false
	}
	return fromBoardOutcome(outcome), true
}

// getSeed draws a base seed from OS entropy, matching get_seed() in the
// reference's prng.rs (getrandom::u64()). Per-thread seeds are then derived
// deterministically from it via SeedGenerator, so only this one draw needs
// a real entropy source.
func getSeed() (uint64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Run launches threads workers, each writing `<out_dir>/<id>.sypk`, until
// stopped by Ctrl-C or a fatal worker error. Returns the process exit code.
func Run(threads int, outDir string) int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("received interrupt, stopping")
		stopFlag.Store(true)
	}()

	baseSeed, err := getSeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate base seed: %v\n", err)
		return 1
	}
	log.Infof("base seed: %016x", baseSeed)

	seedGen := prng.NewSeedGenerator(baseSeed)

	var g errgroup.Group
	for id := 0; id < threads; id++ {
		id := id
		seed := seedGen.Next()
		g.Go(func() error {
			runThread(uint32(id), seed, outDir)
			return nil
		})
	}
	_ = g.Wait()

	if errorFlag.Load() {
		return 1
	}
	log.Info("done")
	return 0
}

func runThread(id uint32, seed uint64, outDir string) {
	outFile := filepath.Join(outDir, fmt.Sprintf("%d.sypk", id))

	file, err := os.OpenFile(outFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		signalStop()
		printMu.Lock()
		fmt.Fprintf(os.Stderr, "thread %d: failed to open output file %q: %v\n", id, outFile, err)
		printMu.Unlock()
		return
	}
	defer file.Close()

	fileOut := bufio.NewWriter(file)
	writer := newSynpackWriter()

	rng := prng.NewSfc64(seed)

	searchers := [types.PlayerCount]*search.Search{
		search.NewSearch(config.Settings.Datagen.TtSizeMb),
		search.NewSearch(config.Settings.Datagen.TtSizeMb),
	}

	var gameCount, totalPositions uint64

	moves := moveslice.NewMoveList()
	keyHistory := make([]uint64, 0, 1024)

	start := time.Now()

	printProgress := func() {
		elapsed := time.Since(start).Seconds()
		gamesPerSec := float64(gameCount) / elapsed
		posPerSec := float64(totalPositions) / elapsed

		printMu.Lock()
		out.Printf(
			"thread %d: wrote %d positions from %d games in %.1f sec (%.1f games/sec, %.1f pos/sec)\n",
			id, totalPositions, gameCount, elapsed, gamesPerSec, posPerSec,
		)
		printMu.Unlock()
	}

	for !stopFlag.Load() {
		for _, s := range searchers {
			s.NewGame()
		}

		pos := startGame(writer, moves, &keyHistory, rng, searchers[types.P1])
		searchers[types.P1].NewGame()

		limits := search.NewLimits(time.Now())
		limits.SetSoftNodes(config.Settings.Datagen.SoftNodes)
		limits.SetHardNodes(config.Settings.Datagen.HardNodes)

		outcome, finalMover := playGame(writer, pos, &keyHistory, searchers, limits)

		// Synpack stores WDL relative to P1: flip when the move that
		// decided the game was played by P2.
		if finalMover == types.P2 {
			outcome = outcome.flip()
		}

		written, err := writer.writeAllWithOutcome(fileOut, toSynpackOutcome(outcome))
		if err != nil {
			signalStop()
			printMu.Lock()
			fmt.Fprintf(os.Stderr, "thread %d: failed to serialize game: %v\n", id, err)
			printMu.Unlock()
		} else {
			totalPositions += uint64(written)
		}

		if err := fileOut.Flush(); err != nil {
			signalStop()
			printMu.Lock()
			fmt.Fprintf(os.Stderr, "thread %d: failed to flush output buffer: %v\n", id, err)
			printMu.Unlock()
		}

		gameCount++
		if gameCount%uint64(config.Settings.Datagen.ReportInterval) == 0 {
			printProgress()
		}
	}

	if gameCount%uint64(config.Settings.Datagen.ReportInterval) != 0 {
		printProgress()
	}
}

func toSynpackOutcome(r gameResult) Outcome {
	switch r {
	case resultWin:
		return OutcomeWin
	case resultLoss:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// startGame plays RandomMoves random opening moves, verifies the resulting
// position isn't already decisive via a shallow search, and retries from
// scratch until one passes, matching mod.rs's start_game/VERIF_DEPTH gate.
func startGame(writer *synpackWriter, moves *moveslice.MoveList, keyHistory *[]uint64, rng *prng.Sfc64, searcher *search.Search) *board.Position {
	var unscored []types.Move

	for {
		unscored = unscored[:0]
		*keyHistory = (*keyHistory)[:0]

		pos := board.NewStartPosition()

		decided := false
		for i := 0; i < config.Settings.Datagen.RandomMoves; i++ {
			moves.Reset()
			movegen.Generate(pos, moves)

			mv := moves.Moves[rng.UintN(moves.Len())]
			unscored = append(unscored, mv)

			*keyHistory = append(*keyHistory, pos.Key)
			next := pos.ApplyMove(mv)
			pos = &next

			if _, terminal := checkTerminal(pos, *keyHistory, mv); terminal {
				decided = true
				break
			}
		}
		if decided {
			continue
		}

		verifLimits := search.NewLimits(time.Now())
		result := searcher.Run(pos, *keyHistory, verifLimits, config.Settings.Datagen.VerifDepth)

		score := result.Score
		if score < 0 {
			score = -score
		}
		if score <= config.Settings.Datagen.VerifMaxScore {
			writer.start()
			for _, mv := range unscored {
				writer.pushUnscored(mv)
			}
			return pos
		}
	}
}

// playGame plays out the rest of the game from pos with alternating
// searchers, recording every scored move, and returns the outcome plus
// whichever player made the move that decided it, both already relative
// to that mover (board.Terminal's convention, unlike the Rust reference's
// pos.stm()-relative check_terminal which needs flipping by its caller).
func playGame(writer *synpackWriter, pos *board.Position, keyHistory *[]uint64, searchers [types.PlayerCount]*search.Search, limits *search.Limits) (gameResult, types.Player) {
	for {
		mover := pos.Stm
		searcher := searchers[mover]
		result := searcher.Run(pos, *keyHistory, limits, 0)

		mv := result.BestMove
		writer.push(mv, result.Score)

		*keyHistory = append(*keyHistory, pos.Key)
		next := pos.ApplyMove(mv)

		if outcome, terminal := checkTerminal(&next, *keyHistory, mv); terminal {
			return outcome, mover
		}

		if result.Score >= search.ScoreWin {
			return resultWin, mover
		} else if result.Score <= -search.ScoreWin {
			return resultLoss, mover
		}

		pos = &next
	}
}
