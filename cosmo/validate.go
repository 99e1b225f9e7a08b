package cosmo

import (
	"fmt"
	"strings"

	"github.com/kbreese-x/cosmograph/errors"
)

// MaxSpaceSize is the largest simulation space the renderer supports.
const MaxSpaceSize = 8192

type bound struct {
	name     string
	value    float64
	min, max float64
}

// ValidateSettings checks a merged record against the documented option ranges.
// The builder never calls it; it backs `config validate` and server startup.
func ValidateSettings(o Options) error {
	bounds := []bound{
		{"nodeGreyoutOpacity", o.NodeGreyoutOpacity, 0, 1},
		{"linkGreyoutOpacity", o.LinkGreyoutOpacity, 0, 1},
		{"linkVisibilityMinTransparency", o.LinkVisibilityMinTransparency, 0, 1},
		{"curvedLinkWeight", o.CurvedLinkWeight, 0, 1},
		{"spaceSize", float64(o.SpaceSize), 1, MaxSpaceSize},
		{"simulationFriction", o.SimulationFriction, 0.8, 1},
		{"simulationRepulsion", o.SimulationRepulsion, 0, 2},
		{"simulationRepulsionTheta", o.SimulationRepulsionTheta, 0.3, 2},
		{"simulationLinkSpring", o.SimulationLinkSpring, 0, 2},
		{"simulationGravity", o.SimulationGravity, 0, 1},
		{"simulationCenter", o.SimulationCenter, 0, 1},
		{"simulationRepulsionFromMouse", o.SimulationRepulsionFromMouse, 0, 5},
	}

	var problems []string
	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			problems = append(problems, fmt.Sprintf("%s %v is outside [%v, %v]", b.name, b.value, b.min, b.max))
		}
	}
	if r := o.LinkVisibilityDistance; r.Min() > r.Max() {
		problems = append(problems, fmt.Sprintf("linkVisibilityDistance min %v exceeds max %v", r.Min(), r.Max()))
	}

	if len(problems) == 0 {
		return nil
	}
	err := errors.Mark(errors.Newf("%d option(s) out of range: %s", len(problems), strings.Join(problems, "; ")), errors.ErrInvalidConfig)
	return errors.WithHint(err, "adjust [graph.props] in am.toml or the --set flags")
}
