package funding

// InvestorOptions tunes the investor profile.
type InvestorOptions struct {
	Recent      int // DefaultRecent when zero.
	Biggest     int // DefaultBiggest when zero.
	CoInvestors int // DefaultCoInvestors when zero.
}

// InvestorProfile is the profile of the investors matching a search query.
type InvestorProfile struct {
	Query    string   `json:"query"`
	Matches  []string `json:"matches"` // investor names containing the query.
	Currency string   `json:"currency"`
	Deals    int      `json:"deals"`
	Total    Money    `json:"total"`
	Startups int      `json:"startups"` // distinct startups funded.

	Recent     []Event     `json:"recent"`  // most recent first.
	Biggest    []Group     `json:"biggest"` // startups by amount invested.
	HasAmounts bool        `json:"hasAmounts"`
	Sectors    []Share     `json:"sectors"`
	Cities     []Share     `json:"cities"`
	Rounds     []Share     `json:"rounds"`
	YearOnYear Aggregation `json:"yearOnYear"`

	// CoInvestors ranks the investors of the matching deals by shared deals,
	// except the one named exactly as the query. Empty when the investor
	// always invests alone.
	CoInvestors []Group `json:"coInvestors"`
}

// IsEmpty reports whether no event matched the query.
func (p *InvestorProfile) IsEmpty() bool { return p.Deals == 0 }

// NewInvestorProfile computes the profile of the investors whose name
// contains query, ignoring case.
func NewInvestorProfile(l *Ledger, query string, opts InvestorOptions) (*InvestorProfile, error) {
	events := l.SearchInvestor(query)
	p := &InvestorProfile{
		Query:    query,
		Matches:  l.MatchInvestors(query),
		Currency: l.Currency(),
		Deals:    len(events),
		Startups: distinctCount(events, FieldStartup),
	}
	total, _ := Reduce(events, Sum)
	p.Total = l.Money(total)
	if p.IsEmpty() {
		return p, nil
	}

	recent := latestFirst(events)
	p.Recent = recent[:min(len(recent), orDefault(opts.Recent, DefaultRecent))]

	p.Biggest = TopK(Aggregate(events, ByStartup, Sum), orDefault(opts.Biggest, DefaultBiggest))
	for _, g := range p.Biggest {
		p.HasAmounts = p.HasAmounts || !g.Value.IsZero()
	}

	p.Sectors = distribution(l, Aggregate(events, ByVertical, Sum))
	p.Cities = distribution(l, Aggregate(events, ByCity, Sum))
	p.Rounds = distribution(l, Aggregate(events, ByRound, Sum))
	p.YearOnYear = Aggregate(events, ByYear, Sum)

	co := coInvestors(events, query, false)
	p.CoInvestors = TopK(co, orDefault(opts.CoInvestors, DefaultCoInvestors))
	return p, nil
}
