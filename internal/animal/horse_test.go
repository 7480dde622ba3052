package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCat_Speak_IndoorVsStreet(t *testing.T) {
	assert.Equal(t, "Meow~ (comfortable purr)", NewCat("Whiskers", true).Speak())
	assert.Equal(t, "MEOW! (street cat attitude)", NewCat("Shadow", false).Speak())
}

func TestDuck_SpeakAndSwim(t *testing.T) {
	d := NewDuck("Donald")
	assert.Equal(t, "Quack quack!", d.Speak())
	assert.Equal(t, "Donald paddles gracefully across the pond", d.Swim())
}

func TestHorse_WalkDelegatesToBase(t *testing.T) {
	h := NewHorse("Spirit", 35)
	// Promoted from the embedded Base — legs are fixed at 4.
	assert.Equal(t, "Spirit walks on 4 legs", h.Walk())
	assert.Equal(t, h.Base.Walk(), h.Walk())
}

func TestHorse_Gallop(t *testing.T) {
	h := NewHorse("Spirit", 35)
	assert.Equal(t, "Spirit gallops at 35 mph!", h.Gallop())
}

func TestHorse_AnimalContract(t *testing.T) {
	var a Animal = NewHorse("Spirit", 35)
	assert.Equal(t, "Neigh!", a.Speak())
	assert.Equal(t, "Spirit", a.Name())
}
