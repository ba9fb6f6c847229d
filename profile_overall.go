package funding

// OverallOptions tunes the ecosystem overview.
type OverallOptions struct {
	Trend Reducer // reducer of the monthly trend: Sum for amounts, Count for deals.
	TopN  int     // size of the rankings, DefaultTopN when zero.
}

// OverallProfile is the ecosystem overview.
type OverallProfile struct {
	Currency string `json:"currency"`
	Deals    int    `json:"deals"`
	Startups int    `json:"startups"` // distinct startups.
	// Total includes undisclosed amounts as zero, and so does Mean.
	// Mean and Max are nil when there is no event.
	Total Money  `json:"total"`
	Mean  *Money `json:"mean"`
	Max   *Money `json:"max"`

	Trend        Aggregation `json:"trend"` // by month, chronological.
	TopSectors   []Group     `json:"topSectors"`
	TopCities    []Group     `json:"topCities"`
	TopStartups  []Group     `json:"topStartups"`
	TopInvestors []Group     `json:"topInvestors"` // by number of deals.
}

// IsEmpty reports whether the ledger had no event. Mean and Max are nil then.
func (p *OverallProfile) IsEmpty() bool { return p.Deals == 0 }

// NewOverallProfile computes the ecosystem overview of a ledger.
func NewOverallProfile(l *Ledger, opts OverallOptions) (*OverallProfile, error) {
	events := l.Events()
	topN := orDefault(opts.TopN, DefaultTopN)
	p := &OverallProfile{
		Currency: l.Currency(),
		Deals:    len(events),
		Startups: distinctCount(events, FieldStartup),
		Trend:    Aggregate(events, ByMonth, opts.Trend),
	}
	total, _ := Reduce(events, Sum)
	p.Total = l.Money(total)
	if p.IsEmpty() {
		return p, nil
	}

	mean, err := Reduce(events, Mean)
	if err != nil {
		return nil, err
	}
	biggest, err := Reduce(events, Max)
	if err != nil {
		return nil, err
	}
	meanMoney, maxMoney := l.Money(mean), l.Money(biggest)
	p.Mean, p.Max = &meanMoney, &maxMoney

	p.TopSectors = TopK(Aggregate(events, ByVertical, Sum), topN)
	p.TopCities = TopK(Aggregate(events, ByCity, Sum), topN)
	p.TopStartups = TopK(Aggregate(events, ByStartup, Sum), topN)
	p.TopInvestors = TopK(Aggregate(Normalize(events, FieldInvestors), ByInvestor, Count), topN)
	return p, nil
}
