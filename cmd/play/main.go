package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/FunSlots_Go/internal/logger"
	"github.com/osse101/FunSlots_Go/internal/slots"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Engine logs stay quiet unless asked for; the terminal belongs to the game
	logger.InitLoggerWithWriter(logger.Config{
		Level:       os.Getenv("LOG_LEVEL"),
		Format:      logger.LogFormatText,
		ServiceName: "fun-slots-play",
	}, os.Stderr)

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		return
	}

	engine := slots.NewEngine(slots.DefaultRules(), nil)
	if err := newGame(engine, os.Stdout, useColor()).run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "play: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: play")
	fmt.Println("Commands:")
	fmt.Println("  spin, s, <enter>  Spin the reels")
	fmt.Println("  reset, r          Start over with fresh coins")
	fmt.Println("  paytable, p       Show odds and rewards")
	fmt.Println("  quit, q           Leave the game")
}

// useColor disables ANSI colors when NO_COLOR is set
func useColor() bool {
	_, off := os.LookupEnv("NO_COLOR")
	return !off
}
