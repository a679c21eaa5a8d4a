// ABOUTME: Outline mode printing the deck's pages without starting the pager
// ABOUTME: Lists page number, title, line count and source file as an aligned table

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"fullpage/deck"
)

// RunOutline loads the deck at path and writes its outline to out
func RunOutline(path string, out io.Writer) error {
	pages, err := deck.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load deck: %w", err)
	}

	debugf("[MAIN] Outline of %s: %d pages", path, len(pages))

	return writeOutline(out, pages)
}

func writeOutline(out io.Writer, pages []deck.Page) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "#\tTitle\tLines\tSource"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintln(w, "---\t-----\t-----\t------"); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = "(untitled)"
		}

		source := "-"
		if page.Source != "" {
			source = filepath.Base(page.Source)
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			i+1,
			truncate(title, 40),
			strings.Count(page.Body, "\n")+1,
			source,
		); err != nil {
			return fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
