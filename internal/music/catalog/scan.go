package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// RootAlbum names songs found directly in the scanned root.
const RootAlbum = "EP"

var (
	audioExts  = []string{".mp3", ".wav", ".flac", ".ogg"}
	namePrefix = regexp.MustCompile(`^(\d+)\s*(?:-\s*)?(.*)$`)
)

// Scan builds the song table from a directory tree: files in root belong to
// RootAlbum, each subdirectory is an album.
func Scan(root, artist string) ([]Song, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	var songs []Song
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if s, ok := songFromFile(filepath.Join(root, e.Name()), RootAlbum, artist); ok {
			songs = append(songs, s)
		}
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if s, ok := songFromFile(filepath.Join(dir, f.Name()), e.Name(), artist); ok {
				songs = append(songs, s)
			}
		}
	}
	return songs, nil
}

func songFromFile(path, album, artist string) (Song, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(audioExts, ext) {
		return Song{}, false
	}
	id, title := ParseFileName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	return Song{Artist: artist, Album: album, Title: title, ID: id, Path: filepath.ToSlash(path)}, true
}

// ParseFileName splits "<NN> <title>" or "<NN> - <title>" into id and title.
// Names without a numeric prefix get id 0.
func ParseFileName(name string) (int, string) {
	m := namePrefix.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil || strings.TrimSpace(m[2]) == "" {
		return 0, strings.TrimSpace(name)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, strings.TrimSpace(name)
	}
	return id, strings.TrimSpace(m[2])
}

// WriteCSV writes songs in the catalog format.
func WriteCSV(w io.Writer, songs []Song) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range songs {
		if err := cw.Write([]string{s.Artist, s.Album, s.Title, strconv.Itoa(s.ID), s.Path}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
