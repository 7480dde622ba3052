package animal

import "fmt"

// Duck satisfies both contracts. It embeds DefaultSwimmer but declares
// its own Swim, shadowing the embedded default.
type Duck struct {
	DefaultSwimmer
	name string
}

func NewDuck(name string) *Duck {
	return &Duck{name: name}
}

func (d *Duck) Speak() string {
	return "Quack quack!"
}

func (d *Duck) Name() string {
	return d.name
}

// Swim overrides the embedded default with a name-specific sentence.
func (d *Duck) Swim() string {
	return fmt.Sprintf("%s paddles gracefully across the pond", d.name)
}
