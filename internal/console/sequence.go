package console

import "sync"

// Region is a result area of the page
type Region string

const (
	RegionResults Region = "results"
	RegionHistory Region = "history"
	RegionRecords Region = "records"
)

// AllRegions lists every result region
var AllRegions = []Region{RegionResults, RegionHistory, RegionRecords}

// Sequencer hands out increasing numbers per region so a response can tell
// whether a newer request for the same region was issued after it.
type Sequencer struct {
	mu     sync.Mutex
	latest map[Region]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[Region]uint64)}
}

// Next issues a new number for region
func (s *Sequencer) Next(region Region) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[region]++
	return s.latest[region]
}

// Invalidate makes every outstanding number for the given regions stale
func (s *Sequencer) Invalidate(regions ...Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range regions {
		s.latest[r]++
	}
}

// IsLatest reports whether seq is still the newest number for region
func (s *Sequencer) IsLatest(region Region, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[region] == seq
}

// Latest returns the newest number issued for region
func (s *Sequencer) Latest(region Region) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[region]
}
