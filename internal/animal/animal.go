// Package animal defines the menagerie's behavior contracts and the
// concrete variants that satisfy them. Two independent interfaces carry
// the contracts; shared behavior lives once, in free functions over the
// interface, rather than being restated per type.
package animal

import "fmt"

// Animal is the speaking-animal contract. Any type providing both
// methods satisfies it — no declaration needed.
type Animal interface {
	// Speak produces the variant-specific vocalization.
	Speak() string
	// Name returns the animal's identifying name.
	Name() string
}

// Describe composes Name and Speak into the standard introduction
// sentence. Defined once over the contract, it is the shared default
// every variant gets for free.
func Describe(a Animal) string {
	return fmt.Sprintf("%s says: %s", a.Name(), a.Speak())
}

// Swimmer is an optional, independent contract. A type may satisfy
// Animal, Swimmer, both, or neither.
type Swimmer interface {
	Swim() string
}

// DefaultSwimmer provides the generic Swim behavior. Embed it to gain
// the default; declare Swim on the outer type to override it.
type DefaultSwimmer struct{}

func (DefaultSwimmer) Swim() string {
	return "Swimming..."
}
