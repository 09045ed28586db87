// Package catalog ships the built-in preset patterns.
// Every entry is a 32x32 snapshot embedded in the binary; entries are read-only.
package catalog

import (
	"context"
	"embed"
	"path"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/snapshot"
	"github.com/sheikhrachel/torus-gol/utils"
)

// Dimension is the side length every preset was recorded at
const Dimension = model.DefaultDimension

//go:embed patterns
var patterns embed.FS

// ErrUnknownPattern is returned for names not in the catalog
var ErrUnknownPattern = errors.New("unknown pattern")

// Category groups presets the way they are offered to players
type Category string

const (
	Still       Category = "Still"
	Oscillators Category = "Oscillators"
	Spaceships  Category = "Spaceships"
)

// Categories returns the categories in display order
func Categories() []Category {
	return []Category{Still, Oscillators, Spaceships}
}

// Entry is one preset pattern
type Entry struct {
	Name     string
	Category Category
	Path     string
}

var entries = []Entry{
	{"Block", Still, "patterns/still/block.lif"},
	{"Bee-hive", Still, "patterns/still/beehive.lif"},
	{"Loaf", Still, "patterns/still/loaf.lif"},
	{"Boat", Still, "patterns/still/boat.lif"},
	{"Tub", Still, "patterns/still/tub.lif"},

	{"Blinker", Oscillators, "patterns/oscillators/blinker.lif"},
	{"Toad", Oscillators, "patterns/oscillators/toad.lif"},
	{"Beacon", Oscillators, "patterns/oscillators/beacon.lif"},
	{"Pulsar", Oscillators, "patterns/oscillators/pulsar.lif"},
	{"Penta-decathlon", Oscillators, "patterns/oscillators/penta.lif"},

	{"Glider", Spaceships, "patterns/spaceships/glider.lif"},
	{"Light Weight", Spaceships, "patterns/spaceships/lwss.lif"},
	{"Middle Weight", Spaceships, "patterns/spaceships/mwss.lif"},
	{"Heavy Weight", Spaceships, "patterns/spaceships/hwss.lif"},
}

// Entries returns a copy of every preset in display order
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ByCategory returns the presets of one category in display order
func ByCategory(c Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// normalize folds case and drops separators so "bee hive", "Beehive" and "Bee-hive" match
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Lookup finds a preset by display name or file name
func Lookup(name string) (Entry, bool) {
	want := normalize(name)
	for _, e := range entries {
		file := strings.TrimSuffix(path.Base(e.Path), path.Ext(e.Path))
		if normalize(e.Name) == want || normalize(file) == want {
			return e, true
		}
	}
	return Entry{}, false
}

// Source returns the embedded storage handle of e
func (e Entry) Source() snapshot.Source {
	return snapshot.FSFile{FS: patterns, Name: e.Path}
}

// Read decodes the snapshot of e
func (e Entry) Read() (snapshot.Snapshot, error) {
	return snapshot.ReadFromStorage(e.Source(), Dimension)
}

// Load applies the named preset to g; g is unchanged on error
func Load(g *model.Grid, name string) error {
	e, ok := Lookup(name)
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[Load] %q", name)
	}
	s, err := e.Read()
	if err != nil {
		return errors.Wrapf(err, "[Load] %s", e.Name)
	}
	if err = snapshot.ApplyTo(g, s); err != nil {
		return errors.Wrapf(err, "[Load] %s", e.Name)
	}
	utils.Logger().Info("pattern loaded", "pattern", e.Name, "category", string(e.Category))
	return nil
}

// Verify decodes every preset concurrently and returns the first failure
func Verify(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g := model.NewGrid(Dimension)
			s, err := e.Read()
			if err != nil {
				return errors.Wrapf(err, "[Verify] %s", e.Name)
			}
			if err = snapshot.ApplyTo(g, s); err != nil {
				return errors.Wrapf(err, "[Verify] %s", e.Name)
			}
			if g.CountLivingCells() == 0 {
				return errors.Errorf("[Verify] %s is empty", e.Name)
			}
			return nil
		})
	}
	return eg.Wait()
}
