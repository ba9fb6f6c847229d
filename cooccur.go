package funding

// CoOccurrences counts, for each investor appearing alongside focal, the
// number of events they share with it.
//
// Events may be raw or normalized on the investors field. Adjacent records
// sharing a non-zero ID are one event, as Normalize and the Ledger produce
// them; a record without ID is always an event of its own. The focal
// investor is matched case-insensitively and is never its own partner. An
// investor that always invests alone gets an empty aggregation.
func CoOccurrences(events []Event, focal string) Aggregation {
	return coInvestors(events, focal, true)
}

// coInvestors is CoOccurrences. Unless withFocal is set, every event counts,
// whether focal took part in it or not.
func coInvestors(events []Event, focal string, withFocal bool) Aggregation {
	var partners []Event
	for start := 0; start < len(events); {
		end, id := start+1, events[start].ID
		for id != 0 && end < len(events) && events[end].ID == id {
			end++
		}
		partners = append(partners, partnersOf(Normalize(events[start:end], FieldInvestors), focal, withFocal)...)
		start = end
	}
	return Aggregate(partners, ByInvestor, Count)
}

// partnersOf returns the non-focal participation records of one event, or
// nothing when withFocal is set and focal did not take part.
func partnersOf(participations []Event, focal string, withFocal bool) []Event {
	var seen Names
	var partners []Event
	found := false
	for _, p := range participations {
		if SameName(p.Investors, focal) {
			found = true
			continue
		}
		if seen.Contains(p.Investors) {
			continue
		}
		seen.Add(p.Investors)
		partners = append(partners, p)
	}
	if withFocal && !found {
		return nil
	}
	return partners
}
