package anthill

import (
	"anthill/internal/ant"
	"anthill/internal/core"
)

func (g *Ground) Parameters() core.ParameterSnapshot {
	c := g.cfg
	stats := g.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.Int64Param("seed", "Seed", g.seed),
			},
		},
		{
			Name: "Colony",
			Params: []core.Parameter{
				core.IntParam("ants", "Ants", c.Ants),
				core.FloatParam("nest_x", "Nest X", c.Nest.X),
				core.FloatParam("nest_y", "Nest Y", c.Nest.Y),
				core.FloatParam("heading", "Heading", c.Heading),
				core.BoolParam("random_heading", "Random heading", c.RandomHeading),
				core.FloatParam("step_size", "Step size", ant.StepSize),
				core.FloatParam("turn_range", "Turn range", ant.TurnRange),
			},
		},
		{
			Name: "Food",
			Params: []core.Parameter{
				core.IntParam("food_count", "Patches", len(g.food)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("tick", "Tick", stats.Ticks),
				core.IntParam("carrying", "Carrying", stats.Carrying),
				core.IntParam("to_food", "To-food cells", stats.ToFood),
				core.IntParam("to_home", "To-home cells", stats.ToHome),
				core.IntParam("first_pickup", "First pickup", stats.FirstPickup),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
