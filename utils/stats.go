package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	// Density is the share of the torus that is alive, in percent
	Density        float64
	PeakPopulation int
	PeakGeneration int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame: the generation shown, its population out of area
// cells, and the time since the previous frame.
func (s *Stats) Update(generation, population, area int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	s.Density = 0
	if area > 0 {
		s.Density = float64(population) / float64(area) * 100
	}

	if population > s.PeakPopulation {
		s.PeakPopulation = population
		s.PeakGeneration = generation
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
