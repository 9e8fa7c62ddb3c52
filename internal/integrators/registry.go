package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/shotsim/internal/dynamo"
)

const Default = "rk4"

var steppers = map[string]func() dynamo.Stepper{
	"rk4":      func() dynamo.Stepper { return NewRK4() },
	"rk45":     func() dynamo.Stepper { return NewRK45() },
	"euler":    func() dynamo.Stepper { return NewEuler() },
	"verlet":   func() dynamo.Stepper { return NewVerlet() },
	"leapfrog": func() dynamo.Stepper { return NewLeapfrog() },
}

// Get returns the stepper registered under name.
func Get(name string) (dynamo.Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownIntegrator, name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
