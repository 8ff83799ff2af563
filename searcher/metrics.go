package searcher

import "time"

// SearchMetric summarizes one decision cycle.
type SearchMetric struct {
	StartTime time.Time
	Duration  time.Duration
	// Episodes is the number of select/rollout/expand iterations; it equals
	// the root's visit count when a tree was built.
	Episodes int
	// ExpectedOccupation is the opponent's expected share of the board seen
	// from the root (1 - root mean).
	ExpectedOccupation float64
	// ShortCircuited marks a forced pass or forced move decided without a
	// tree.
	ShortCircuited bool
}

// Collector gathers search metrics across one decision cycle.
type Collector interface {
	Start()
	AddEpisode()
	SetShortCircuit(value bool)
	SetRootStats(visits int, occupation float64)
	Complete() SearchMetric
}

type collector struct {
	startTime      time.Time
	episodes       int
	occupation     float64
	shortCircuited bool
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	*c = collector{startTime: time.Now()}
}

func (c *collector) AddEpisode() {
	c.episodes++
}

func (c *collector) SetShortCircuit(value bool) {
	c.shortCircuited = value
}

func (c *collector) SetRootStats(visits int, occupation float64) {
	c.episodes = visits
	c.occupation = occupation
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:          c.startTime,
		Duration:           time.Since(c.startTime),
		Episodes:           c.episodes,
		ExpectedOccupation: c.occupation,
		ShortCircuited:     c.shortCircuited,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                                      {}
func (c *dummyCollector) AddEpisode()                                 {}
func (c *dummyCollector) SetShortCircuit(value bool)                  {}
func (c *dummyCollector) SetRootStats(visits int, occupation float64) {}
func (c *dummyCollector) Complete() SearchMetric                      { return SearchMetric{} }
