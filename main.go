package main

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/samuelfneumann/golarcc/agent/random"
	"github.com/samuelfneumann/golarcc/environment"
	"github.com/samuelfneumann/golarcc/environment/larcc"
	"github.com/samuelfneumann/golarcc/environment/larcc/armsim"
	"github.com/samuelfneumann/golarcc/experiment"
	"github.com/samuelfneumann/golarcc/experiment/tracker"
	"gonum.org/v1/gonum/spatial/r1"
)

func main() {
	var seed uint64 = 192382

	// Kinematic arm fixed behind the work table
	arm := armsim.NewUR10e(r3.Vector{X: 0.1, Y: -0.3, Z: 0.76})

	// Create the reaching task
	cfg := larcc.NewConfig(false)
	sampler := larcc.NewGoalSampler(cfg.TablePos, cfg.TableSize,
		cfg.MaxSampleAttempts, seed)

	jointBounds := make([]r1.Interval, len(cfg.JointNames))
	for i := range jointBounds {
		jointBounds[i] = r1.Interval{Min: -math.Pi, Max: math.Pi}
	}
	s := environment.NewUniformStarter(jointBounds, seed)

	task, err := larcc.NewReach(s, sampler, cfg.DistanceThreshold, cfg.Kp,
		cfg.Ko, cfg.EpisodeCutoff)
	if err != nil {
		panic(err)
	}

	// Create the environment
	env, _, err := larcc.New(arm, task, cfg, 1.0)
	if err != nil {
		panic(err)
	}

	// Random baseline agent
	a, err := random.New(env, seed)
	if err != nil {
		panic(err)
	}

	// Experiment
	returns := tracker.NewReturn("./data.bin")
	lengths := tracker.NewEpisodeLength("./lengths.bin")
	e := experiment.NewOnline(env, a, 10_000, returns, lengths)
	if err := e.Run(); err != nil {
		panic(err)
	}
	e.Save()

	data := tracker.LoadData("./data.bin")
	fmt.Println(data[len(data)-10:])
}
