package ground

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/shotsim/internal/dynamo"
)

// Surface is a named set of empirical contact coefficients.
type Surface struct {
	Name              string  `json:"name"`
	COR               float64 `json:"cor"`                // fraction of normal velocity kept on impact
	RollingResistance float64 `json:"rolling_resistance"` // multiple of g
	Friction          float64 `json:"friction"`
}

var (
	Fairway = Surface{Name: "Fairway", COR: 0.40, RollingResistance: 0.30, Friction: 0.50}
	Green   = Surface{Name: "Green", COR: 0.35, RollingResistance: 0.20, Friction: 0.40}
	Rough   = Surface{Name: "Rough", COR: 0.25, RollingResistance: 0.60, Friction: 0.80}
)

// DefaultSurface is used when no surface is configured.
const DefaultSurface = "Fairway"

func surfaces() map[string]Surface {
	return map[string]Surface{
		"fairway": Fairway,
		"green":   Green,
		"rough":   Rough,
	}
}

// Lookup finds a surface by case-insensitive name.
func Lookup(name string) (Surface, error) {
	s, ok := surfaces()[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Surface{}, fmt.Errorf("%w: %q", dynamo.ErrUnknownSurface, name)
	}
	return s, nil
}

// All returns every surface ordered by name.
func All() []Surface {
	m := surfaces()
	out := make([]Surface, 0, len(m))
	for _, s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the canonical surface names, sorted.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}
