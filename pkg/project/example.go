package project

import "github.com/matzehuels/wallcable/pkg/cabling"

// Example returns a small two-wall project used by "wallcable init".
func Example() *Project {
	pick := 10.0
	p := &Project{
		Name: "Example Show",
		Panels: []cabling.PanelSpec{
			{Name: "BP2", WidthM: 0.5, HeightM: 0.5},
			{Name: "CB5", WidthM: 0.6, HeightM: 1.2},
		},
		Walls: []Wall{
			{
				Name:    "Center",
				Panel:   "BP2",
				Width:   16,
				Height:  9,
				Mode:    "serpentine-top",
				Removed: [][]int{{7, 8}, {8, 8}},
				Routing: Routing{
					CablePick:  &pick,
					Redundancy: true,
				},
			},
			{
				Name:   "Stage Left",
				Panel:  "CB5",
				Width:  6,
				Height: 4,
				Mode:   "all-bottom",
				Routing: Routing{
					DropPosition: string(cabling.DropStageLeft),
					PowerEntry:   string(cabling.PowerBottom),
					DistBox:      &DistBox{Enabled: true, Main: string(cabling.PlaceBottomCenter)},
				},
			},
		},
	}
	p.assignIDs()
	return p
}
