package engine

import (
	"strconv"

	"pgol/internal/core"
)

// Parameters exposes the run's configuration and progress for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	gen, live := e.Progress()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.grid.Rows),
				intParam("cols", "Cols", e.grid.Cols),
				intParam("iters", "Iterations", e.cfg.Iterations),
			},
		},
		{
			Name: "Workers",
			Params: []core.Parameter{
				intParam("workers", "Workers", len(e.regions)),
				stringParam("partition", "Partition", e.cfg.Mode.String()),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("round", "Round", gen),
				intParam("live", "Live cells", live),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
