// ABOUTME: Entry point for the fullpage pager
// ABOUTME: Handles command-line parsing, config overrides, and routing to outline or pager mode

// Package main provides the entry point for fullpage, a one-page-at-a-time terminal pager.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fullpage/config"
	"fullpage/deck"
	"fullpage/tui"
)

const debugLogFile = "fullpage-debug.log"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (default: ./fullpage.toml or ~/.config/fullpage/config.toml)")
	debug := flag.Bool("debug", false, "enable debug logging to "+debugLogFile)
	noNav := flag.Bool("no-nav", false, "hide the navigation dots")
	delay := flag.Int("delay", -1, "wheel throttle and resize debounce window in milliseconds")
	noAnimate := flag.Bool("no-animate", false, "cut between pages instead of sliding")
	watch := flag.Bool("watch", false, "reload the deck when it changes on disk")
	start := flag.Int("start", 1, "page to show first (1-based)")
	list := flag.Bool("list", false, "print the deck outline and exit")
	saveConfig := flag.Bool("save-config", false, "write the effective config to the config file and exit")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = config.GetConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Config error: %v", err)

		return 1
	}

	cfg = applyFlags(cfg, flagOverrides{
		NoNav:     *noNav,
		DelayMS:   *delay,
		NoAnimate: *noAnimate,
	})

	if *saveConfig {
		if err := config.SaveConfig(path, cfg); err != nil {
			log.Printf("Config error: %v", err)

			return 1
		}

		fmt.Printf("Config written to: %s\n", path)

		return 0
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: fullpage [flags] <deck.md | directory>")
		fmt.Println("Example: fullpage -watch talk.md")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	deckPath := args[0]

	if *debug {
		if err := SetupDebugLog(debugLogFile); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	if *list {
		if err := RunOutline(deckPath, os.Stdout); err != nil {
			log.Printf("Outline error: %v", err)

			return 1
		}

		return 0
	}

	debugf("[MAIN] Config %s: %+v", path, cfg)

	opts := tui.Options{
		DeckPath:  deckPath,
		Watch:     *watch,
		StartPage: *start - 1,
	}

	if err := tui.Run(opts, tui.Dependencies{
		Config:   cfg,
		LoadDeck: deck.Load,
		Debugf:   debugf,
	}); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}
