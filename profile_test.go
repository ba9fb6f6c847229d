package funding

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/funding/date"
	"github.com/google/go-cmp/cmp"
)

func TestNewOverallProfile(t *testing.T) {
	p, err := NewOverallProfile(sample(t), OverallOptions{Trend: Sum})
	if err != nil {
		t.Fatalf("NewOverallProfile() failed: %v", err)
	}
	if p.Deals != 5 || p.Startups != 4 {
		t.Errorf("Deals, Startups = %d, %d, want 5, 4", p.Deals, p.Startups)
	}
	if !p.Total.Equal(INR(100)) || p.Mean == nil || !p.Mean.Equal(INR(20)) || p.Max == nil || !p.Max.Equal(INR(40)) {
		t.Errorf("Total, Mean, Max = %v, %v, %v, want 100, 20, 40", p.Total, p.Mean, p.Max)
	}
	if diff := cmp.Diff(groups("2023-01", 10, 1, "2023-02", 50, 2, "2024-03", 40, 2), p.Trend.Groups, cmpOpts); diff != "" {
		t.Errorf("Trend mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(groups("Fintech", 80, 4, "Edtech", 20, 1), p.TopSectors, cmpOpts); diff != "" {
		t.Errorf("TopSectors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(groups("Bengaluru", 80, 3, "Mumbai", 20, 2), p.TopCities, cmpOpts); diff != "" {
		t.Errorf("TopCities mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(groups("Alpha", 40, 2, "Delta", 40, 1, "Beta", 20, 1, "Gamma", 0, 1), p.TopStartups, cmpOpts); diff != "" {
		t.Errorf("TopStartups mismatch (-want +got):\n%s", diff)
	}
	wantInvestors := groups("X", 2, 2, "Y", 2, 2, "Z", 1, 1, "Sequoia Capital", 1, 1, "Sequoia Capital India", 1, 1, "Accel", 1, 1)
	if diff := cmp.Diff(wantInvestors, p.TopInvestors, cmpOpts); diff != "" {
		t.Errorf("TopInvestors mismatch (-want +got):\n%s", diff)
	}

	t.Run("deal count trend and top size", func(t *testing.T) {
		p, err := NewOverallProfile(sample(t), OverallOptions{Trend: Count, TopN: 1})
		if err != nil {
			t.Fatalf("NewOverallProfile() failed: %v", err)
		}
		if diff := cmp.Diff(groups("2023-01", 1, 1, "2023-02", 2, 2, "2024-03", 2, 2), p.Trend.Groups, cmpOpts); diff != "" {
			t.Errorf("Trend mismatch (-want +got):\n%s", diff)
		}
		if len(p.TopStartups) != 1 {
			t.Errorf("TopStartups has %d entries, want 1", len(p.TopStartups))
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		p, err := NewOverallProfile(newTestLedger(t), OverallOptions{})
		if err != nil {
			t.Fatalf("NewOverallProfile() failed: %v", err)
		}
		if !p.IsEmpty() || p.Mean != nil || p.Max != nil || p.TopSectors != nil || !p.Trend.IsEmpty() {
			t.Errorf("NewOverallProfile(empty) = %+v, want an empty profile", p)
		}
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("json.Marshal() failed: %v", err)
		}
		if !strings.Contains(string(data), `"mean":null,"max":null`) {
			t.Errorf("json.Marshal(empty) = %s, want null mean and max", data)
		}
	})
}

func TestNewStartupProfile(t *testing.T) {
	l := sample(t)
	p, err := NewStartupProfile(l, "Alpha", StartupOptions{})
	if err != nil {
		t.Fatalf("NewStartupProfile() failed: %v", err)
	}
	if p.Deals != 2 || !p.Total.Equal(INR(40)) {
		t.Errorf("Deals, Total = %d, %v, want 2, 40", p.Deals, p.Total)
	}
	if p.Sector != "Fintech" || p.City != "Bengaluru" || p.SectorConflict != nil || p.CityConflict != nil {
		t.Errorf("Sector, City = %q %v, %q %v, want Fintech, Bengaluru without conflict", p.Sector, p.SectorConflict, p.City, p.CityConflict)
	}
	var history []int
	for _, e := range p.History {
		history = append(history, e.ID)
	}
	if diff := cmp.Diff([]int{3, 1}, history); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
	wantTrajectory := []Point{
		{Date: date.MustParse("2023-01-10"), Amount: INR(10)},
		{Date: date.MustParse("2023-02-20"), Amount: INR(30)},
	}
	if diff := cmp.Diff(wantTrajectory, p.Trajectory, cmpOpts); diff != "" {
		t.Errorf("Trajectory mismatch (-want +got):\n%s", diff)
	}
	if !p.HasTrajectory() {
		t.Errorf("HasTrajectory() = false, want true")
	}
	if diff := cmp.Diff(groups("2023", 40, 2), p.YearOnYear.Groups, cmpOpts); diff != "" {
		t.Errorf("YearOnYear mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"X", "Y", "Sequoia Capital"}, p.Investors); diff != "" {
		t.Errorf("Investors mismatch (-want +got):\n%s", diff)
	}
	wantPeers := []Peer{
		{Startup: "Alpha", Total: INR(40), Focal: true},
		{Startup: "Delta", Total: INR(40)},
		{Startup: "Gamma", Total: INR(0)},
	}
	if diff := cmp.Diff(wantPeers, p.Peers, cmpOpts); diff != "" {
		t.Errorf("Peers mismatch (-want +got):\n%s", diff)
	}
	if p.PeerRank != 1 {
		t.Errorf("PeerRank = %d, want 1", p.PeerRank)
	}
	if p.LocalContext == nil {
		t.Fatalf("LocalContext = nil")
	}
	if !p.LocalContext.Focal.Equal(D(20)) || p.LocalContext.Verdict != AtOrBelow {
		t.Errorf("LocalContext = %+v, want a mean of 20 at or below the city", p.LocalContext)
	}

	t.Run("single round", func(t *testing.T) {
		p, err := NewStartupProfile(l, "Beta", StartupOptions{Peers: 1})
		if err != nil {
			t.Fatalf("NewStartupProfile() failed: %v", err)
		}
		if p.HasTrajectory() {
			t.Errorf("HasTrajectory() = true for a single round")
		}
		if len(p.Peers) != 1 || !p.Peers[0].Focal {
			t.Errorf("Peers = %v, want Beta alone", p.Peers)
		}
	})

	t.Run("unknown startup", func(t *testing.T) {
		p, err := NewStartupProfile(l, "Omega", StartupOptions{})
		if err != nil {
			t.Fatalf("NewStartupProfile() failed: %v", err)
		}
		if !p.IsEmpty() || p.History != nil || p.LocalContext != nil || p.Peers != nil {
			t.Errorf("NewStartupProfile(Omega) = %+v, want an empty profile", p)
		}
	})
}

func TestNewStartupProfile_Conflicts(t *testing.T) {
	testCases := []struct {
		name         string
		events       []Event
		wantCity     string
		wantConflict []string
	}{
		{
			name: "most frequent",
			events: []Event{
				ev("2023-01-01", "K", "AI", "Pune", "Seed", "", 1),
				ev("2023-02-01", "K", "AI", "Delhi", "Seed", "", 1),
				ev("2023-03-01", "K", "AI", "delhi", "Seed", "", 1),
			},
			wantCity:     "Delhi",
			wantConflict: []string{"Delhi", "Pune"},
		},
		{
			name: "ties go to the earliest event",
			events: []Event{
				ev("2023-02-01", "K", "AI", "Delhi", "Seed", "", 1),
				ev("2023-01-01", "K", "AI", "Pune", "Seed", "", 1),
			},
			wantCity:     "Pune",
			wantConflict: []string{"Pune", "Delhi"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewStartupProfile(newTestLedger(t, tc.events...), "K", StartupOptions{})
			if err != nil {
				t.Fatalf("NewStartupProfile() failed: %v", err)
			}
			if p.City != tc.wantCity {
				t.Errorf("City = %q, want %q", p.City, tc.wantCity)
			}
			if diff := cmp.Diff(tc.wantConflict, p.CityConflict); diff != "" {
				t.Errorf("CityConflict mismatch (-want +got):\n%s", diff)
			}
			if p.Sector != "AI" || p.SectorConflict != nil {
				t.Errorf("Sector = %q %v, want AI without conflict", p.Sector, p.SectorConflict)
			}
		})
	}
}

func TestNewInvestorProfile_CoInvestorsKeepOtherMatches(t *testing.T) {
	l := newTestLedger(t, ev("2024-01-01", "A", "AI", "Pune", "Seed", "Sequoia, Sequoia Capital", 10))
	p, err := NewInvestorProfile(l, "Sequoia", InvestorOptions{})
	if err != nil {
		t.Fatalf("NewInvestorProfile() failed: %v", err)
	}
	if diff := cmp.Diff(groups("Sequoia Capital", 1, 1), p.CoInvestors, cmpOpts); diff != "" {
		t.Errorf("CoInvestors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(CoOccurrences(l.Events(), "Sequoia").Groups, p.CoInvestors, cmpOpts); diff != "" {
		t.Errorf("CoInvestors differ from CoOccurrences (-co-occurrences +profile):\n%s", diff)
	}
}

func TestNewInvestorProfile(t *testing.T) {
	l := sample(t)
	p, err := NewInvestorProfile(l, "sequoia", InvestorOptions{})
	if err != nil {
		t.Fatalf("NewInvestorProfile() failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Sequoia Capital", "Sequoia Capital India"}, p.Matches); diff != "" {
		t.Errorf("Matches mismatch (-want +got):\n%s", diff)
	}
	if p.Deals != 2 || p.Startups != 2 || !p.Total.Equal(INR(30)) {
		t.Errorf("Deals, Startups, Total = %d, %d, %v, want 2, 2, 30", p.Deals, p.Startups, p.Total)
	}
	var recent []int
	for _, e := range p.Recent {
		recent = append(recent, e.ID)
	}
	if diff := cmp.Diff([]int{4, 3}, recent); diff != "" {
		t.Errorf("Recent mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(groups("Alpha", 30, 1, "Gamma", 0, 1), p.Biggest, cmpOpts); diff != "" {
		t.Errorf("Biggest mismatch (-want +got):\n%s", diff)
	}
	if !p.HasAmounts {
		t.Errorf("HasAmounts = false, want true")
	}
	wantCities := []Share{
		{Key: "Bengaluru", Amount: INR(30), Share: 100, Deals: 1},
		{Key: "Mumbai", Amount: INR(0), Share: 0, Deals: 1},
	}
	percent := cmp.Comparer(func(a, b Percent) bool { return a.Equal(b) })
	if diff := cmp.Diff(wantCities, p.Cities, cmpOpts, percent); diff != "" {
		t.Errorf("Cities mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(groups("Sequoia Capital", 1, 1, "x", 1, 1, "Sequoia Capital India", 1, 1), p.CoInvestors, cmpOpts); diff != "" {
		t.Errorf("CoInvestors mismatch (-want +got):\n%s", diff)
	}

	testCases := []struct {
		query          string
		wantDeals      int
		wantAmounts    bool
		wantCoInvestor int
	}{
		{query: "accel", wantDeals: 1, wantAmounts: true, wantCoInvestor: 0},
		{query: "india", wantDeals: 1, wantAmounts: false, wantCoInvestor: 1},
		{query: "y", wantDeals: 2, wantAmounts: true, wantCoInvestor: 2},
		{query: "nobody", wantDeals: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			p, err := NewInvestorProfile(l, tc.query, InvestorOptions{})
			if err != nil {
				t.Fatalf("NewInvestorProfile() failed: %v", err)
			}
			if p.Deals != tc.wantDeals || p.HasAmounts != tc.wantAmounts || len(p.CoInvestors) != tc.wantCoInvestor {
				t.Errorf("Deals, HasAmounts, CoInvestors = %d, %t, %v, want %d, %t, %d co-investors",
					p.Deals, p.HasAmounts, p.CoInvestors, tc.wantDeals, tc.wantAmounts, tc.wantCoInvestor)
			}
			if p.IsEmpty() != (tc.wantDeals == 0) {
				t.Errorf("IsEmpty() = %t", p.IsEmpty())
			}
		})
	}
}
