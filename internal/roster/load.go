// internal/roster/load.go
//
// Dataset loading for the roster.
//
// Initialization behavior (Init):
//   1. If a path is given (ROSTER_FILE), parse that YAML file.
//   2. Otherwise fall back to the dataset embedded in the assets package.
//
// Dataset format (YAML):
//
//	haki: [none, observation, ...]
//	arcs: [romance dawn, orange town, ...]
//	characters:
//	  - name: Luffy
//	    traits: [m, straw hat pirates, gomu gomu no mi, "7", "3000000000", 174cm, east blue, "0", alive, E]
//	aliases:
//	  Luffy: [monkey d. luffy, straw hat]
//
// Initialization runs once (sync.Once); the loaded roster is read-only.

package roster

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/faustdle/assets"
)

type dataset struct {
	Haki       []string            `yaml:"haki"`
	Arcs       []string            `yaml:"arcs"`
	Characters []characterRow      `yaml:"characters"`
	Aliases    map[string][]string `yaml:"aliases"`
}

type characterRow struct {
	Name   string   `yaml:"name"`
	Traits []string `yaml:"traits"`
}

var (
	initOnce sync.Once
	loaded   *Roster
	initErr  error
)

// Init loads the process-wide roster exactly once.
// An empty path selects the embedded dataset.
func Init(path string) error {
	initOnce.Do(func() {
		if path != "" {
			loaded, initErr = Load(path)
			return
		}
		loaded, initErr = Embedded()
	})
	return initErr
}

// Default returns the roster loaded by Init, initializing from the embedded
// dataset if Init was never called.
func Default() (*Roster, error) {
	if err := Init(""); err != nil {
		return nil, err
	}
	return loaded, nil
}

// Embedded parses the dataset shipped in the assets package.
func Embedded() (*Roster, error) {
	data, err := assets.RosterYAML()
	if err != nil {
		return nil, fmt.Errorf("read embedded roster: %w", err)
	}
	return Parse(data)
}

// Load parses a roster dataset from a YAML file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML roster dataset.
func Parse(data []byte) (*Roster, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if len(ds.Characters) == 0 {
		return nil, fmt.Errorf("%w: no characters", ErrInvalid)
	}

	entities := make([]Entity, 0, len(ds.Characters))
	for i, row := range ds.Characters {
		if len(row.Traits) != NumColumns {
			return nil, fmt.Errorf("%w: character %d (%q) has %d traits, want %d",
				ErrInvalid, i, row.Name, len(row.Traits), NumColumns)
		}
		var t Traits
		copy(t[:], row.Traits)
		entities = append(entities, Entity{Name: row.Name, Traits: t})
	}
	return New(entities, ds.Haki, ds.Arcs, ds.Aliases)
}
