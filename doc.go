// Package funding analyzes a ledger of startup funding events.
//
// A Ledger is an immutable snapshot of events, each one a dated funding round
// of a startup with its sector, city, round type, investors and amount. The
// package turns a ledger into three views:
//   - the ecosystem overview (NewOverallProfile),
//   - the profile of a startup (NewStartupProfile),
//   - the profile of an investor (NewInvestorProfile).
//
// The views are assembled from a small set of pure operations that can also
// be used directly: Normalize expands the investors of an event into one
// record per investor, Aggregate groups events by a Dimension and reduces
// their amounts, TopK ranks the groups, CoOccurrences counts the investors
// sharing deals with a focal investor and Benchmark compares a statistic of
// some events to the same statistic over their peers.
//
// Names are compared case-insensitively everywhere and displayed with the
// casing first seen in the ledger. Amounts are exact decimals, in crores of
// the ledger currency; a zero amount is an undisclosed one.
//
// An Analyzer memoizes the views of a ledger for concurrent callers such as
// the fnd command-line tool and its HTTP server.
package funding
