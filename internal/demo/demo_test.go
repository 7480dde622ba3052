package demo

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/menagerie/internal/animal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func canonicalAnimals() []animal.Animal {
	return []animal.Animal{
		animal.NewDog("Rex", 5, "German Shepherd"),
		animal.NewCat("Whiskers", true),
		animal.NewCat("Shadow", false),
		animal.NewDuck("Donald"),
		animal.NewHorse("Spirit", 35),
	}
}

func TestRunner_Transcript(t *testing.T) {
	var buf bytes.Buffer
	NewRunner(testLogger()).Run(&buf, canonicalAnimals())
	out := buf.String()

	// Every variant's wording appears verbatim in the transcript.
	for _, want := range []string{
		"Woof! I'm a GERMAN SHEPHERD",
		"Meow~ (comfortable purr)",
		"MEOW! (street cat attitude)",
		"Quack quack!",
		"Donald paddles gracefully across the pond",
		"Spirit walks on 4 legs",
		"Spirit gallops at 35 mph!",
		"Neigh!",
		"Rex says: Woof! I'm a GERMAN SHEPHERD",
	} {
		assert.Contains(t, out, want)
	}

	// All seven numbered sections render, in order.
	last := -1
	for _, title := range []string{
		"1. ENCAPSULATION DEMO:",
		"2. ABSTRACTION DEMO",
		"3. POLYMORPHISM DEMO (dynamic dispatch):",
		"4. POLYMORPHISM DEMO (generic functions):",
		"5. COMPOSITION",
		"6. MULTIPLE INTERFACES",
		"7. DEFAULT METHODS",
	} {
		idx := strings.Index(out, title)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", title)
		assert.Greater(t, idx, last, "section %q out of order", title)
		last = idx
	}
}

func TestRunner_EncapsulationSequence(t *testing.T) {
	var buf bytes.Buffer
	encapsulationSection{}.Run(&buf, canonicalAnimals())

	want := "  Dog's age: 5\n" +
		"  After birthday: 6\n" +
		"  After invalid set (100): 6\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("encapsulation output mismatch (-want +got):\n%s", diff)
	}
}

// The dispatch mechanism must not change observable output: the
// interface path and the generic path agree per value.
func TestDispatch_DynamicMatchesStatic(t *testing.T) {
	animals := canonicalAnimals()

	var dynamic bytes.Buffer
	for _, a := range animals {
		sound(&dynamic, a) // instantiated with the interface type
	}

	var static bytes.Buffer
	staticDispatchSection{}.Run(&static, animals)

	diff := cmp.Diff(
		strings.Split(dynamic.String(), "\n"),
		strings.Split(static.String(), "\n"),
	)
	assert.Empty(t, diff)
}

func TestSections_SkipAbsentVariants(t *testing.T) {
	// A roster with no dog, horse, or swimmer leaves those sections empty
	// rather than failing.
	animals := []animal.Animal{animal.NewCat("Solo", true)}

	for _, s := range []Section{
		encapsulationSection{},
		compositionSection{},
		multiContractSection{},
		defaultMethodSection{},
	} {
		var buf bytes.Buffer
		s.Run(&buf, animals)
		assert.Empty(t, buf.String(), "section %q should print nothing", s.Title())
	}
}

func TestFirst(t *testing.T) {
	animals := canonicalAnimals()

	h, ok := first[*animal.Horse](animals)
	require.True(t, ok)
	assert.Equal(t, "Spirit", h.Name())

	_, ok = first[*animal.Dog](animals[1:])
	assert.False(t, ok)
}
