// ABOUTME: Builds metadata card pages for audio files found in a deck directory
// ABOUTME: Reads file tags for title, artist, album, year, genre and track number

package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".dsf":  true,
}

func isAudio(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// audioPage reads tags from an audio file and renders them as a page
func audioPage(path string) (Page, error) {
	file, err := os.Open(path)
	if err != nil {
		return Page{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read metadata from %s: %w", path, err)
	}

	title := metadata.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", title)

	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "\n%-8s %s", name+":", value)
		}
	}

	field("Artist", metadata.Artist())
	field("Album", metadata.Album())
	if year := metadata.Year(); year > 0 {
		field("Year", fmt.Sprint(year))
	}
	field("Genre", metadata.Genre())
	if track, total := metadata.Track(); track > 0 {
		if total > 0 {
			field("Track", fmt.Sprintf("%d/%d", track, total))
		} else {
			field("Track", fmt.Sprint(track))
		}
	}
	field("Format", fmt.Sprintf("%s (%s)", metadata.FileType(), metadata.Format()))
	field("File", filepath.Base(path))

	return Page{
		Title:  title,
		Body:   b.String(),
		Source: path,
	}, nil
}
