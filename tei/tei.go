/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package tei implements the TEI (Tak Engine Interface) command loop: a
// line-oriented, UCI-like protocol for driving one Searcher from stdin and
// reporting its progress and result on stdout (spec §6.2).
package tei

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	golog "github.com/op/go-logging"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
	"github.com/Ciekce/syntaks/logging"
	"github.com/Ciekce/syntaks/movegen"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/search"
	"github.com/Ciekce/syntaks/types"
)

// Version is the engine's self-reported identifier, sent in response to
// the "tei" command's "id name" line.
const Version = "0.1.0"

// Handler owns the TEI session state: the current position and a single,
// long-lived Searcher (spec §5's "one Searcher executes one go command at a
// time" thread model).
type Handler struct {
	In  *bufio.Scanner
	Out *bufio.Writer

	pos        *board.Position
	keyHistory []uint64
	searcher   *search.Search

	log *golog.Logger
}

// NewHandler builds a Handler reading from in and writing to out.
func NewHandler(in io.Reader, out io.Writer) *Handler {
	return &Handler{
		In:       bufio.NewScanner(in),
		Out:      bufio.NewWriter(out),
		pos:      board.NewStartPosition(),
		searcher: search.NewSearch(config.Settings.Search.TtSizeMb),
		log:      logging.GetLog("tei"),
	}
}

// Loop reads commands line by line until "quit" or EOF.
func (h *Handler) Loop() {
	for h.In.Scan() {
		if h.handle(h.In.Text()) {
			return
		}
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// handle processes one command line, returning true if the loop should
// terminate (the "quit" command).
func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.log.Debugf("<< %s", line)

	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "tei":
		h.teiCommand()
	case "isready":
		h.send("readyok")
	case "teinewgame":
		h.pos = board.NewStartPosition()
		h.keyHistory = h.keyHistory[:0]
		h.searcher.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.searcher.Stop()
	default:
		h.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) teiCommand() {
	h.send("id name syntaks " + Version)
	h.send("id author Ciekce")
	h.send("teiok")
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position command malformed")
		return
	}

	h.keyHistory = h.keyHistory[:0]

	i := 1
	switch tokens[i] {
	case "startpos":
		h.pos = board.NewStartPosition()
		i++
	case "tps":
		i++
		var tps strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if tps.Len() > 0 {
				tps.WriteByte(' ')
			}
			tps.WriteString(tokens[i])
			i++
		}
		parsed, err := board.ParseTPS(tps.String())
		if err != nil {
			h.sendInfoString(fmt.Sprintf("malformed tps: %v", err))
			return
		}
		h.pos = parsed
	default:
		h.sendInfoString("position command malformed: expected startpos or tps")
		return
	}

	if i < len(tokens) {
		if tokens[i] != "moves" {
			h.sendInfoString("position command malformed: expected moves")
			return
		}
		i++
		for ; i < len(tokens); i++ {
			mv, ok := moveFromPTN(h.pos, tokens[i])
			if !ok {
				h.sendInfoString(fmt.Sprintf("illegal or unparseable move %q", tokens[i]))
				return
			}
			h.keyHistory = append(h.keyHistory, h.pos.Key)
			next := h.pos.ApplyMove(mv)
			h.pos = &next
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	startTime := time.Now()
	limits := search.NewLimits(startTime)

	var (
		wtime, btime, winc, binc time.Duration
		haveClock                bool
		haveAnyLimit             bool
	)

	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			depth, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.sendInfoString("go command malformed: bad depth")
				return
			}
			h.runSearch(limits, depth)
			return
		case "nodes":
			i++
			nodes, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				h.sendInfoString("go command malformed: bad nodes")
				return
			}
			limits.SetNodes(nodes)
			haveAnyLimit = true
		case "movetime":
			i++
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				h.sendInfoString("go command malformed: bad movetime")
				return
			}
			limits.SetMovetime(time.Duration(ms) * time.Millisecond)
			haveAnyLimit = true
		case "wtime":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			wtime = time.Duration(ms) * time.Millisecond
			haveClock = true
		case "btime":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			btime = time.Duration(ms) * time.Millisecond
			haveClock = true
		case "winc":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			winc = time.Duration(ms) * time.Millisecond
		case "binc":
			i++
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			binc = time.Duration(ms) * time.Millisecond
		default:
			h.sendInfoString(fmt.Sprintf("go command malformed: unknown subcommand %q", tokens[i]))
			return
		}
	}

	if haveClock {
		remaining, increment := wtime, winc
		if h.pos.Stm == types.P2 {
			remaining, increment = btime, binc
		}
		limits.SetTimeManager(remaining, increment)
		haveAnyLimit = true
	}

	if !haveAnyLimit {
		h.sendInfoString("go command malformed: no effective limits set")
		return
	}

	h.runSearch(limits, 0)
}

// runSearch runs the searcher synchronously and reports its result. The
// teacher's engine drives search on a background goroutine so "stop" can be
// handled concurrently; the hard/soft limit checks inside negamax already
// give TEI-level responsiveness without that complexity here.
func (h *Handler) runSearch(limits *search.Limits, maxDepth int) {
	result := h.searcher.Run(h.pos, h.keyHistory, limits, maxDepth)

	elapsed := time.Since(limits.StartTime())
	nps := uint64(0)
	if elapsed > 0 {
		nps = result.Nodes * uint64(time.Second) / uint64(elapsed)
	}

	h.send(fmt.Sprintf("info depth %d score cp %d nodes %d nps %d time %d pv %s",
		result.Depth, result.Score, result.Nodes, nps, elapsed.Milliseconds(), pvString(result.PV)))
	h.send("bestmove " + result.BestMove.String())
}

func pvString(pv []types.Move) string {
	parts := make([]string, len(pv))
	for i, mv := range pv {
		parts[i] = mv.String()
	}
	return strings.Join(parts, " ")
}

func (h *Handler) send(s string) {
	h.log.Debugf(">> %s", s)
	_, _ = h.Out.WriteString(s + "\n")
	_ = h.Out.Flush()
}

func (h *Handler) sendInfoString(s string) {
	h.log.Warning(s)
	h.send("info string " + s)
}

// moveFromPTN generates every legal move at pos and matches tok (PTN
// notation, with an optional trailing wall-smash "*" ignored) against each
// candidate's rendering, the same generate-and-compare strategy the
// teacher's GetMoveFromUci uses for UCI move text.
func moveFromPTN(pos *board.Position, tok string) (types.Move, bool) {
	tok = strings.TrimSuffix(tok, "*")

	moves := moveslice.NewMoveList()
	movegen.Generate(pos, moves)

	for _, mv := range moves.Moves {
		if mv.String() == tok {
			return mv, true
		}
	}
	return types.NoMove, false
}
