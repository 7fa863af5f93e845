package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

var header = []string{"artist", "album", "song_name", "song_id", "path"}

type Song struct {
	Artist string
	Album  string
	Title  string
	ID     int
	Path   string
}

type Album struct {
	Name  string
	Paths []string
}

// Catalog is the read-only table of local songs.
type Catalog struct {
	songs  []Song
	byPath map[string]Song
	albums []Album
	index  map[string]int

	mu  sync.Mutex
	rng *rand.Rand
}

// Load reads the catalog CSV at path.
func Load(path string, rng *rand.Rand) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f, rng)
}

// Parse reads a catalog with header artist,album,song_name,song_id,path.
// A nil rng seeds one from the clock.
func Parse(r io.Reader, rng *rand.Rand) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(records) == 0 {
		return New(nil, rng), nil
	}

	cols, err := columns(records[0])
	if err != nil {
		return nil, err
	}

	songs := make([]Song, 0, len(records)-1)
	for i, rec := range records[1:] {
		get := func(name string) string {
			idx := cols[name]
			if idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}

		id := 0
		if raw := get("song_id"); raw != "" {
			id, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("catalog row %d: bad song_id %q: %w", i+2, raw, err)
			}
		}
		path := get("path")
		if path == "" {
			return nil, fmt.Errorf("catalog row %d: empty path", i+2)
		}

		songs = append(songs, Song{
			Artist: get("artist"),
			Album:  get("album"),
			Title:  get("song_name"),
			ID:     id,
			Path:   path,
		})
	}

	return New(songs, rng), nil
}

func columns(row []string) (map[string]int, error) {
	cols := make(map[string]int, len(row))
	for i, name := range row {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	var missing []string
	for _, name := range header {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.New("catalog header is missing columns: " + strings.Join(missing, ", "))
	}
	return cols, nil
}

func New(songs []Song, rng *rand.Rand) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Catalog{
		songs:  songs,
		byPath: make(map[string]Song, len(songs)),
		index:  make(map[string]int),
		rng:    rng,
	}

	for _, s := range songs {
		c.byPath[s.Path] = s
		i, ok := c.index[s.Album]
		if !ok {
			i = len(c.albums)
			c.index[s.Album] = i
			c.albums = append(c.albums, Album{Name: s.Album})
		}
		c.albums[i].Paths = append(c.albums[i].Paths, s.Path)
	}

	for i := range c.albums {
		paths := c.albums[i].Paths
		slices.SortStableFunc(paths, func(a, b string) int {
			return c.byPath[a].ID - c.byPath[b].ID
		})
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.songs)
}

// AlbumPaths returns the album's paths ordered by song id.
func (c *Catalog) AlbumPaths(name string) ([]string, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.albums[i].Paths), true
}

func (c *Catalog) Albums() []Album {
	out := make([]Album, len(c.albums))
	for i, a := range c.albums {
		out[i] = Album{Name: a.Name, Paths: slices.Clone(a.Paths)}
	}
	return out
}

func (c *Catalog) Info(path string) (Song, bool) {
	s, ok := c.byPath[path]
	return s, ok
}

func (c *Catalog) RandomPath() string {
	if len(c.songs) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.songs[c.rng.Intn(len(c.songs))].Path
}

// Shuffled returns every path in random order.
func (c *Catalog) Shuffled() []string {
	paths := make([]string, len(c.songs))
	for i, s := range c.songs {
		paths[i] = s.Path
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng.Shuffle(len(paths), func(i, j int) {
		paths[i], paths[j] = paths[j], paths[i]
	})
	return paths
}

func (c *Catalog) RandomAlbum() (string, []string) {
	if len(c.albums) == 0 {
		return "", nil
	}
	c.mu.Lock()
	a := c.albums[c.rng.Intn(len(c.albums))]
	c.mu.Unlock()
	return a.Name, slices.Clone(a.Paths)
}
