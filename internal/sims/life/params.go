package life

import (
	"fmt"
	"strconv"

	"conway/internal/core"
)

const maxUPS = 240

// Parameters reports the engine's current settings and run state.
func (l *Life[G]) Parameters() core.ParameterSnapshot {
	snap := l.current.Load()
	cw, ch := 0, 0
	if len(l.chunks) > 0 {
		cw, ch = l.chunks[0].W, l.chunks[0].H
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					intParam("w", "Width", l.w),
					intParam("h", "Height", l.h),
					int64Param("seed", "Seed", l.seed),
				},
			},
			{
				Name: "Engine",
				Params: []core.Parameter{
					intParam("workers", "Workers", l.workers),
					{Key: "chunk", Label: "Chunk", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d", cw, ch)},
					intParam("ups", "Generations/s", l.ups),
					floatParam("frame_ms", "Frame time (ms)", float64(l.pacer.Step().Microseconds())/1000),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(snap.generation, 10)},
					intParam("population", "Population", core.Population(snap.grid)),
				},
			},
		},
	}
}

// ParameterControls lists the settings the HUD may adjust.
func (l *Life[G]) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "ups", Label: "Generations/s", Step: 1, Min: 1, Max: maxUPS, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD adjustment.
func (l *Life[G]) SetIntParameter(key string, value int) bool {
	switch key {
	case "ups":
		if value > maxUPS {
			return false
		}
		return l.SetUPS(value) == nil
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}
