// Package demo renders the sectioned demonstration transcript. The
// transcript is produced by a fixed pipeline of Section stages run in
// order over a heterogeneous animal collection, so any roster drives
// the same walkthrough.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/olehluchkiv/menagerie/internal/animal"
)

// Section is one stage of the demonstration pipeline.
type Section interface {
	Title() string
	Run(w io.Writer, animals []animal.Animal)
}

// Runner writes the full transcript: a banner, the numbered sections,
// and the closing takeaways.
type Runner struct {
	sections []Section
	logger   *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		sections: []Section{
			encapsulationSection{},
			abstractionSection{},
			dynamicDispatchSection{},
			staticDispatchSection{},
			compositionSection{},
			multiContractSection{},
			defaultMethodSection{},
		},
		logger: logger,
	}
}

func (r *Runner) Run(w io.Writer, animals []animal.Animal) {
	fmt.Fprintln(w, rule("=", 60))
	fmt.Fprintln(w, "GO OOP CONCEPTS DEMONSTRATION")
	fmt.Fprintln(w, rule("=", 60))

	for i, s := range r.sections {
		r.logger.Debug("running section", "index", i+1, "title", s.Title())
		fmt.Fprintf(w, "\n%d. %s:\n", i+1, s.Title())
		fmt.Fprintln(w, rule("-", 40))
		s.Run(w, animals)
	}

	fmt.Fprintf(w, "\n%s\n", rule("=", 60))
	fmt.Fprintln(w, "KEY TAKEAWAYS:")
	fmt.Fprintln(w, rule("=", 60))
	fmt.Fprintln(w, "* ABSTRACTION:   interfaces define behavior contracts")
	fmt.Fprintln(w, "* ENCAPSULATION: unexported fields + exported accessors")
	fmt.Fprintln(w, "* POLYMORPHISM:  interface values or generics")
	fmt.Fprintln(w, "* INHERITANCE:   embedding + functions over interfaces")
	fmt.Fprintln(w, rule("=", 60))
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

// introduce accepts any contract value — dynamic dispatch through the
// interface decides whose Describe text is printed.
func introduce(w io.Writer, a animal.Animal) {
	fmt.Fprintf(w, "  %s\n", animal.Describe(a))
}

// sound is the static counterpart: a generic instantiated per concrete
// type at each call site, no interface value involved.
func sound[T animal.Animal](w io.Writer, a T) {
	fmt.Fprintf(w, "  Sound: %s\n", a.Speak())
}
