package funding

import "github.com/etnz/funding/date"

// StartupOptions tunes the startup profile.
type StartupOptions struct {
	Peers int // size of the sector ranking, DefaultTopN when zero.
}

// StartupProfile is the profile of one startup.
type StartupProfile struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Deals    int    `json:"deals"`
	Total    Money  `json:"total"`

	// Sector and City are the most frequent values among the startup's
	// events, ties going to the earliest event. When events disagree the
	// conflicts list every value seen, most frequent first.
	Sector         string   `json:"sector"`
	City           string   `json:"city"`
	SectorConflict []string `json:"sectorConflict,omitempty"`
	CityConflict   []string `json:"cityConflict,omitempty"`

	History    []Event     `json:"history"`    // most recent first.
	Trajectory []Point     `json:"trajectory"` // chronological, same-day amounts summed.
	YearOnYear Aggregation `json:"yearOnYear"`
	Investors  []string    `json:"investors"`

	Peers        []Peer      `json:"peers"`        // top startups of the sector by total funding.
	PeerRank     int         `json:"peerRank"`     // rank of the startup in its sector, 0 without sector.
	LocalContext *Comparison `json:"localContext"` // mean ticket against the city mean, nil without city.
}

// Peer is one entry of the sector ranking.
type Peer struct {
	Startup string `json:"startup"`
	Total   Money  `json:"total"`
	Focal   bool   `json:"focal"`
}

// IsEmpty reports whether the startup has no event.
func (p *StartupProfile) IsEmpty() bool { return p.Deals == 0 }

// HasTrajectory reports whether there are enough funding dates to draw a trajectory.
func (p *StartupProfile) HasTrajectory() bool { return len(p.Trajectory) > 1 }

// NewStartupProfile computes the profile of the startup named name, ignoring case.
func NewStartupProfile(l *Ledger, name string, opts StartupOptions) (*StartupProfile, error) {
	events := l.Startup(name)
	p := &StartupProfile{
		Name:     name,
		Currency: l.Currency(),
		Deals:    len(events),
	}
	total, _ := Reduce(events, Sum)
	p.Total = l.Money(total)
	if p.IsEmpty() {
		return p, nil
	}

	p.Sector, p.SectorConflict = prevalent(events, ByVertical)
	p.City, p.CityConflict = prevalent(events, ByCity)

	p.History = latestFirst(events)
	var trajectory date.History
	for _, e := range events {
		trajectory.AppendAdd(e.Date, e.Amount.Decimal())
	}
	for on, v := range trajectory.Values() {
		p.Trajectory = append(p.Trajectory, Point{Date: on, Amount: l.Money(v)})
	}
	p.YearOnYear = Aggregate(events, ByYear, Sum)

	var investors Names
	for _, e := range Normalize(events, FieldInvestors) {
		investors.Add(e.Investors)
	}
	p.Investors = investors.Slice()

	if p.Sector != "" {
		sector := TopK(Aggregate(Filter(l.Events(), ByVertical, p.Sector), ByStartup, Sum), 0)
		p.PeerRank = RankOf(sector, name)
		for _, g := range sector[:min(len(sector), orDefault(opts.Peers, DefaultTopN))] {
			p.Peers = append(p.Peers, Peer{Startup: g.Key, Total: l.Money(g.Value), Focal: SameName(g.Key, name)})
		}
	}

	if p.City != "" {
		c, err := Benchmark(l.Events(), ByCity, p.City, events, Mean)
		if err != nil {
			return nil, err
		}
		p.LocalContext = &c
	}
	return p, nil
}

// prevalent returns the most frequent value of a dimension, ties going to
// the earliest event, and every value seen when there are several.
func prevalent(events []Event, dim Dimension) (string, []string) {
	ranked := TopK(Aggregate(earliestFirst(events), dim, Count), 0)
	if len(ranked) == 0 {
		return "", nil
	}
	if len(ranked) == 1 {
		return ranked[0].Key, nil
	}
	conflict := make([]string, 0, len(ranked))
	for _, g := range ranked {
		conflict = append(conflict, g.Key)
	}
	return ranked[0].Key, conflict
}
