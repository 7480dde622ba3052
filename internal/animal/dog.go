package animal

import (
	"fmt"
	"strings"
)

// maxDogAge bounds SetAge. Dogs rarely live beyond 25.
const maxDogAge = 25

// Dog is the only variant with mutable state; all fields are private
// and reachable only through the constructor and accessors.
type Dog struct {
	name  string
	age   uint8
	breed string
}

func NewDog(name string, age uint8, breed string) *Dog {
	return &Dog{name: name, age: age, breed: breed}
}

// Age returns the current age.
func (d *Dog) Age() uint8 {
	return d.age
}

// SetAge updates the age only when it is within bounds. Out-of-range
// values are silently discarded and the prior value kept.
func (d *Dog) SetAge(age uint8) {
	if age <= maxDogAge {
		d.age = age
	}
}

// formatBreed is the presentation form of the breed, internal use only.
func (d *Dog) formatBreed() string {
	return strings.ToUpper(d.breed)
}

func (d *Dog) Speak() string {
	return fmt.Sprintf("Woof! I'm a %s", d.formatBreed())
}

func (d *Dog) Name() string {
	return d.name
}
