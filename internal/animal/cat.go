package animal

// Cat branches its vocalization on a single flag set at construction.
type Cat struct {
	name   string
	indoor bool
}

func NewCat(name string, indoor bool) *Cat {
	return &Cat{name: name, indoor: indoor}
}

func (c *Cat) Speak() string {
	if c.indoor {
		return "Meow~ (comfortable purr)"
	}
	return "MEOW! (street cat attitude)"
}

func (c *Cat) Name() string {
	return c.name
}
