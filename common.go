// ABOUTME: Shared initialization code for outline and pager modes
// ABOUTME: Provides flag overrides on top of the config file and debug log setup

package main

import (
	"fmt"
	"log"
	"os"

	"fullpage/config"
)

var debugLog *log.Logger

// flagOverrides holds command-line settings that take precedence over the config file.
// Zero values leave the config untouched; DelayMS < 0 means unset.
type flagOverrides struct {
	NoNav     bool
	DelayMS   int
	NoAnimate bool
}

// applyFlags returns cfg with command-line overrides applied
func applyFlags(cfg config.Config, o flagOverrides) config.Config {
	if o.NoNav {
		cfg.ShowNav = false
	}

	if o.DelayMS >= 0 {
		cfg.DelayMS = o.DelayMS
	}

	if o.NoAnimate {
		cfg.Animate = false
	}

	return cfg
}

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	if isTTY(os.Stdout) {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// truncate shortens string to maxLen runes, adding "..." if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}
