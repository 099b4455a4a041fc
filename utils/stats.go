package utils

import "time"

// populationSmoothing weights the newest sample in the population average
const populationSmoothing = 0.1

// Stats tracks throughput and population over a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one presented generation. frame is the time spent since
// the previous one; a non-positive frame leaves the rate untouched.
func (s *Stats) Update(generation int, population int, frame time.Duration) {
	s.TotalGenerations = generation
	if frame > 0 {
		s.GenerationsPerSecond = 1.0 / frame.Seconds()
	}
	s.PeakPopulation = max(s.PeakPopulation, population)

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation += (float64(population) - s.AveragePopulation) * populationSmoothing
}

// Runtime returns the wall time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
