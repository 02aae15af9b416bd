package pipeline

import (
	"slices"

	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/cache"
	"github.com/matzehuels/wallcable/pkg/grid"
)

// engineVersion salts input hashes. Bump it when a change to the engine
// alters results for unchanged inputs.
const engineVersion = 1

// Input is everything that determines one wall's cable schedule.
type Input struct {
	Grid    *grid.Grid
	Lines   cabling.LineConfig
	Routing cabling.RoutingConfig
}

type inputKey struct {
	Version   int                   `json:"v"`
	Width     int                   `json:"w"`
	Height    int                   `json:"h"`
	Removed   []grid.Cell           `json:"removed"`
	Mode      grid.Mode             `json:"mode"`
	Overrides [][3]int              `json:"overrides"`
	Routing   cabling.RoutingConfig `json:"routing"`
}

// Hash returns a content hash of the input. Equivalent inputs hash equal:
// routing defaults are filled and an unknown mode falls back the same way
// the engine does.
func (in Input) Hash() string {
	mode, ok := grid.ParseMode(string(in.Lines.Mode))
	if !ok {
		mode = grid.DefaultMode
	}
	routing := in.Routing
	routing.SetDefaults()

	overrides := make([][3]int, 0, len(in.Lines.Overrides))
	for c, line := range in.Lines.Overrides {
		overrides = append(overrides, [3]int{c.Col, c.Row, line})
	}
	slices.SortFunc(overrides, func(a, b [3]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	key := inputKey{
		Version:   engineVersion,
		Mode:      mode,
		Overrides: overrides,
		Routing:   routing,
	}
	if in.Grid != nil {
		key.Width, key.Height = in.Grid.Width(), in.Grid.Height()
		key.Removed = in.Grid.RemovedCells()
	}
	h, err := cache.HashJSON(key)
	if err != nil {
		// Every field is plain data; Marshal cannot fail here.
		panic(err)
	}
	return h
}
