package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FunSlots_Go/internal/domain"
	"github.com/osse101/FunSlots_Go/internal/slots"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorReset  = "\033[0m"
)

// ReelSeparator joins reels for display
const ReelSeparator = " | "

type command int

const (
	cmdUnknown command = iota
	cmdSpin
	cmdReset
	cmdPaytable
	cmdQuit
)

func parseCommand(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "spin", "s":
		return cmdSpin
	case "reset", "r":
		return cmdReset
	case "paytable", "p":
		return cmdPaytable
	case "quit", "q", "exit":
		return cmdQuit
	default:
		return cmdUnknown
	}
}

// game is a single local play session
type game struct {
	engine  *slots.Engine
	state   *domain.GameState
	out     io.Writer
	printer *message.Printer
	title   cases.Caser
	color   bool
}

func newGame(engine *slots.Engine, out io.Writer, color bool) *game {
	return &game{
		engine:  engine,
		state:   engine.NewState(),
		out:     out,
		printer: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
		color:   color,
	}
}

// run reads commands until quit or end of input
func (g *game) run(in io.Reader) error {
	rules := g.engine.Rules()
	g.printer.Fprintf(g.out, "🎰 Fun Slots: %d coins per spin, jackpot guaranteed every %d spins.\n",
		rules.SpinCost, rules.JackpotEvery)
	g.render()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(g.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(g.out)
			return scanner.Err()
		}

		switch parseCommand(scanner.Text()) {
		case cmdSpin:
			g.spin()
		case cmdReset:
			g.engine.Reset(g.state)
			g.render()
		case cmdPaytable:
			g.paytable()
		case cmdQuit:
			g.printer.Fprintf(g.out, "Thanks for playing! You leave with %d coins.\n", g.state.Balance)
			return nil
		default:
			fmt.Fprintln(g.out, "Unknown command. Try spin, reset, paytable or quit.")
		}
	}
}

func (g *game) spin() {
	outcome := g.engine.Spin(g.state)
	if outcome.Accepted {
		label := g.title.String(strings.ReplaceAll(slots.Classify(outcome), "_", " "))
		g.printer.Fprintf(g.out, "[%s] spin #%d: -%d +%d\n",
			label, outcome.SpinCount, outcome.Cost, outcome.Reward)
	}
	g.render()
}

func (g *game) render() {
	fmt.Fprintf(g.out, "  %s\n", strings.Join(g.state.Reels, ReelSeparator))
	g.printer.Fprintf(g.out, "  💰 %d coins   🎲 %d spins\n", g.state.Balance, g.state.SpinCount)
	if g.state.Message != "" {
		fmt.Fprintf(g.out, "  %s\n", g.colorize(g.state.Message))
	}
}

func (g *game) paytable() {
	table := g.engine.Paytable()

	fmt.Fprintln(g.out, "Symbol odds:")
	for _, s := range table.Symbols {
		g.printer.Fprintf(g.out, "  %s  %5.1f%%\n", s.Symbol, s.Probability*100)
	}

	counts := make([]int, 0, len(table.Rewards))
	for count := range table.Rewards {
		counts = append(counts, count)
	}
	sort.Ints(counts)

	fmt.Fprintln(g.out, "Rewards:")
	for _, count := range counts {
		g.printer.Fprintf(g.out, "  %d match  %d coins\n", count, table.Rewards[count])
	}
}

func (g *game) colorize(msg string) string {
	if !g.color {
		return msg
	}
	switch {
	case strings.Contains(msg, "JACKPOT"):
		return colorYellow + msg + colorReset
	case strings.HasPrefix(msg, "🎉"):
		return colorGreen + msg + colorReset
	case strings.HasPrefix(msg, "🚫"):
		return colorRed + msg + colorReset
	default:
		return msg
	}
}
