package animal

import "fmt"

// Base carries the fields and behavior shared by composed variants. It
// is not itself a top-level variant; outer types embed it by value and
// delegate to it instead of inheriting from it.
type Base struct {
	name string
	legs uint8
}

func newBase(name string, legs uint8) Base {
	return Base{name: name, legs: legs}
}

func (b Base) Walk() string {
	return fmt.Sprintf("%s walks on %d legs", b.name, b.legs)
}

// Horse demonstrates composition over inheritance: the embedded Base
// owns the name and the promoted Walk, while Horse adds Gallop and the
// Animal contract on top.
type Horse struct {
	Base
	speedMPH uint
}

// horseLegs is fixed at construction and not independently settable.
const horseLegs = 4

func NewHorse(name string, speedMPH uint) *Horse {
	return &Horse{
		Base:     newBase(name, horseLegs),
		speedMPH: speedMPH,
	}
}

// Gallop is behavior the embedded Base does not have.
func (h *Horse) Gallop() string {
	return fmt.Sprintf("%s gallops at %d mph!", h.name, h.speedMPH)
}

func (h *Horse) Speak() string {
	return "Neigh!"
}

func (h *Horse) Name() string {
	return h.name
}
