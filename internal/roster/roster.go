// Package roster builds the menagerie, either from a YAML file or from
// the built-in default that reproduces the canonical demonstration.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olehluchkiv/menagerie/internal/animal"
)

// Entry describes one animal. Kind selects the variant; the remaining
// fields apply per kind and are ignored otherwise.
type Entry struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`
	Age    uint8  `yaml:"age,omitempty"`    // dog
	Breed  string `yaml:"breed,omitempty"`  // dog
	Indoor bool   `yaml:"indoor,omitempty"` // cat
	Speed  uint   `yaml:"speed,omitempty"`  // horse, mph
}

// Roster is the full menagerie definition.
type Roster struct {
	Animals []Entry `yaml:"animals"`
}

// Parse decodes a YAML roster.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if len(r.Animals) == 0 {
		return nil, fmt.Errorf("roster defines no animals")
	}
	return &r, nil
}

// Load reads and parses a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	return Parse(data)
}

// Build constructs the animals in roster order. Unknown kinds, missing
// names, and dog ages beyond the setter's bound are configuration
// errors; a file must not smuggle in state the API would reject.
func (r *Roster) Build() ([]animal.Animal, error) {
	animals := make([]animal.Animal, 0, len(r.Animals))
	for i, e := range r.Animals {
		if e.Name == "" {
			return nil, fmt.Errorf("animal %d (%s): name is required", i, e.Kind)
		}
		switch e.Kind {
		case "dog":
			if e.Age > 25 {
				return nil, fmt.Errorf("animal %d (dog %s): age %d exceeds 25", i, e.Name, e.Age)
			}
			animals = append(animals, animal.NewDog(e.Name, e.Age, e.Breed))
		case "cat":
			animals = append(animals, animal.NewCat(e.Name, e.Indoor))
		case "duck":
			animals = append(animals, animal.NewDuck(e.Name))
		case "horse":
			animals = append(animals, animal.NewHorse(e.Name, e.Speed))
		default:
			return nil, fmt.Errorf("animal %d: unknown kind %q", i, e.Kind)
		}
	}
	return animals, nil
}

// Default is the canonical menagerie: the five animals the original
// demonstration constructs, in its order. Default().Build() never fails.
func Default() *Roster {
	return &Roster{Animals: []Entry{
		{Kind: "dog", Name: "Rex", Age: 5, Breed: "German Shepherd"},
		{Kind: "cat", Name: "Whiskers", Indoor: true},
		{Kind: "cat", Name: "Shadow", Indoor: false},
		{Kind: "duck", Name: "Donald"},
		{Kind: "horse", Name: "Spirit", Speed: 35},
	}}
}
