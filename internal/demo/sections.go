package demo

import (
	"fmt"
	"io"

	"github.com/olehluchkiv/menagerie/internal/animal"
)

// encapsulationSection drives the one mutable accessor in the model:
// a valid age update takes effect, an out-of-range one is silently
// ignored and the prior value survives.
type encapsulationSection struct{}

func (encapsulationSection) Title() string { return "ENCAPSULATION DEMO" }

func (encapsulationSection) Run(w io.Writer, animals []animal.Animal) {
	for _, a := range animals {
		d, ok := a.(*animal.Dog)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  Dog's age: %d\n", d.Age())
		d.SetAge(d.Age() + 1)
		fmt.Fprintf(w, "  After birthday: %d\n", d.Age())
		d.SetAge(100) // out of range, ignored
		fmt.Fprintf(w, "  After invalid set (100): %d\n", d.Age())
	}
}

// abstractionSection shows every variant answering the same contract.
type abstractionSection struct{}

func (abstractionSection) Title() string { return "ABSTRACTION DEMO (interfaces define behavior)" }

func (abstractionSection) Run(w io.Writer, animals []animal.Animal) {
	for _, a := range animals {
		fmt.Fprintf(w, "  %s speaks: %s\n", a.Name(), a.Speak())
	}
}

// dynamicDispatchSection iterates interface values; the concrete
// Describe text is chosen at runtime.
type dynamicDispatchSection struct{}

func (dynamicDispatchSection) Title() string {
	return "POLYMORPHISM DEMO (dynamic dispatch)"
}

func (dynamicDispatchSection) Run(w io.Writer, animals []animal.Animal) {
	for _, a := range animals {
		introduce(w, a)
	}
}

// staticDispatchSection reaches the same behavior through generics.
// The type switch gives each call site a concrete type parameter, so
// sound is instantiated once per variant rather than once for the
// interface.
type staticDispatchSection struct{}

func (staticDispatchSection) Title() string {
	return "POLYMORPHISM DEMO (generic functions)"
}

func (staticDispatchSection) Run(w io.Writer, animals []animal.Animal) {
	for _, a := range animals {
		switch v := a.(type) {
		case *animal.Dog:
			sound(w, v)
		case *animal.Cat:
			sound(w, v)
		case *animal.Duck:
			sound(w, v)
		case *animal.Horse:
			sound(w, v)
		}
	}
}

// compositionSection shows delegation: Walk is promoted from the
// embedded base, Gallop is the outer type's own.
type compositionSection struct{}

func (compositionSection) Title() string { return "COMPOSITION (inheritance Go-style)" }

func (compositionSection) Run(w io.Writer, animals []animal.Animal) {
	for _, a := range animals {
		h, ok := a.(*animal.Horse)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s\n", h.Walk())
		fmt.Fprintf(w, "  %s\n", h.Gallop())
	}
}

// multiContractSection picks out the animals that also satisfy the
// independent Swimmer contract.
type multiContractSection struct{}

func (multiContractSection) Title() string { return "MULTIPLE INTERFACES (Animal + Swimmer)" }

func (multiContractSection) Run(w io.Writer, animals []animal.Animal) {
	for _, a := range animals {
		s, ok := a.(animal.Swimmer)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s\n", a.Speak())
		fmt.Fprintf(w, "  %s\n", s.Swim())
	}
}

// defaultMethodSection shows the once-defined Describe applied to two
// unrelated variants.
type defaultMethodSection struct{}

func (defaultMethodSection) Title() string { return "DEFAULT METHODS (shared Describe)" }

func (defaultMethodSection) Run(w io.Writer, animals []animal.Animal) {
	if d, ok := first[*animal.Dog](animals); ok {
		fmt.Fprintf(w, "  %s\n", animal.Describe(d))
	}
	if h, ok := first[*animal.Horse](animals); ok {
		fmt.Fprintf(w, "  %s\n", animal.Describe(h))
	}
}

// first returns the first element of concrete type T in the collection.
func first[T animal.Animal](animals []animal.Animal) (T, bool) {
	for _, a := range animals {
		if v, ok := a.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
