package main

import (
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particlelife"
	"github.com/olivierh59500/particlelife/internal/config"
)

// reportEvery is the number of headless steps between progress lines
const reportEvery = 100

// runHeadless steps the engine without a window and logs progress
func runHeadless(engine *particlelife.Engine, conf *config.Config, steps int, logger *log.Logger) {
	start := time.Now()
	for i := 1; i <= steps; i++ {
		engine.Step(conf.Simulation.TimeStep)
		if i%reportEvery == 0 || i == steps {
			logger.Info("step", "frame", engine.Frame(), "mean_speed", meanSpeed(engine.Population()))
		}
	}
	elapsed := time.Since(start)
	logger.Info("done", "seed", engine.Seed(), "steps", steps, "elapsed", elapsed.Round(time.Millisecond))
}

// meanSpeed returns the average velocity magnitude
func meanSpeed(pop *particlelife.Population) float64 {
	if pop.Len() == 0 {
		return 0
	}
	var sum float64
	for i := range pop.Len() {
		sum += r2.Norm(pop.At(i).Velocity)
	}
	return sum / float64(pop.Len())
}
