// ABOUTME: Loads the pages shown by the pager from a deck file or a directory
// ABOUTME: Deck files split into pages on "---" lines; directories yield one page per file

// Package deck loads page content for the full-page pager.
package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"fullpage/pool"
)

// ErrEmptyDeck is returned when a source yields no pages
var ErrEmptyDeck = errors.New("deck has no pages")

// pageSeparator splits a deck file into pages
const pageSeparator = "---"

// maxLineSize bounds a single deck line
const maxLineSize = 1 << 20

// Page is one screen of content
type Page struct {
	Title  string // First heading or non-empty line
	Body   string // Page text, blank lines trimmed at both ends
	Source string // File the page came from
}

// Load reads pages from path, which may be a deck file or a directory
func Load(path string) ([]Page, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat deck: %w", err)
	}

	if info.IsDir() {
		return LoadDir(path)
	}

	return LoadFile(path)
}

// LoadFile reads a deck file and splits it into pages
func LoadFile(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}

// Parse splits r into pages on separator lines. Empty pages are dropped.
func Parse(r io.Reader, source string) ([]Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var chunks [][]string
	var current []string

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == pageSeparator {
			chunks = append(chunks, current)
			current = nil

			continue
		}

		current = append(current, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	chunks = append(chunks, current)

	pages := lo.FilterMap(chunks, func(lines []string, _ int) (Page, bool) {
		body := strings.Trim(strings.Join(lines, "\n"), "\n")
		if strings.TrimSpace(body) == "" {
			return Page{}, false
		}

		return newPage(body, source), true
	})

	if len(pages) == 0 {
		return nil, ErrEmptyDeck
	}

	return pages, nil
}

// LoadDir builds one page per visible regular file in dir, in name order.
// Files are read in parallel.
func LoadDir(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck directory: %w", err)
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".")
	})
	if len(files) == 0 {
		return nil, ErrEmptyDeck
	}

	pages := make([]Page, len(files))

	p := pool.NewWorkerPool(0)

	for i, e := range files {
		path := filepath.Join(dir, e.Name())

		p.Submit(func() error {
			page, err := loadPageFile(path)
			if err != nil {
				return err
			}

			pages[i] = page

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

// loadPageFile turns a single file into a page
func loadPageFile(path string) (Page, error) {
	if isAudio(path) {
		return audioPage(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return Page{
			Title:  filepath.Base(path),
			Body:   fmt.Sprintf("%s\n\n(binary file, %d bytes)", filepath.Base(path), len(data)),
			Source: path,
		}, nil
	}

	body := strings.Trim(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if strings.TrimSpace(body) == "" {
		body = filepath.Base(path)
	}

	return newPage(body, path), nil
}

func newPage(body, source string) Page {
	return Page{
		Title:  titleOf(body),
		Body:   body,
		Source: source,
	}
}

// titleOf returns the first non-empty line with any markdown heading marks removed
func titleOf(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" {
			return line
		}
	}

	return ""
}
