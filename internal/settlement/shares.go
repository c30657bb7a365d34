// Package settlement turns a trip's expense ledger into per-participant
// balances and a list of transfers that clears them. It is pure computation:
// no storage, no I/O, no state between calls. Participants are opaque strings
// (registered user IDs or guest names), compared by exact equality.
package settlement

// EqualShares splits amount evenly across participants, assigning every
// participant the same float quotient. No cent-distribution correction is
// applied, so the shares may sum to amount only up to floating-point epsilon.
//
// Callers must pass a non-empty, duplicate-free participant list; an empty
// list yields an empty map, and duplicate identifiers collapse into a single
// map key.
func EqualShares(amount float64, participants []string) map[string]float64 {
	shares := make(map[string]float64, len(participants))
	if len(participants) == 0 {
		return shares
	}

	perPerson := amount / float64(len(participants))
	for _, p := range participants {
		shares[p] = perPerson
	}
	return shares
}
