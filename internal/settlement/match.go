package settlement

import (
	"math"
	"sort"
)

// zeroThreshold is the dead zone around zero that absorbs floating-point
// drift from share splits. Balances within it count as already settled, and
// a creditor or debtor is considered exhausted once their remainder falls
// under it.
const zeroThreshold = 0.01

// Transfer is a single proposed payment from a debtor to a creditor.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

type party struct {
	id        string
	remaining float64
}

// Match produces an ordered list of transfers that drives every balance to
// within the zero threshold of zero. It greedily pairs the largest creditor
// with the largest debtor, transferring the smaller of the two remainders at
// each step, so the result is at most creditors+debtors-1 transfers. That is
// a property of the greedy walk, not a claim of global minimality.
//
// Amounts are rounded to 2 decimal places on emission. For a fixed balance
// map the output is deterministic: both lists sort descending by amount with
// the participant identifier breaking ties.
func Match(balances map[string]float64) []Transfer {
	var creditors, debtors []party
	for id, bal := range balances {
		switch {
		case bal > zeroThreshold:
			creditors = append(creditors, party{id: id, remaining: bal})
		case bal < -zeroThreshold:
			debtors = append(debtors, party{id: id, remaining: -bal})
		}
	}

	sortByRemaining(creditors)
	sortByRemaining(debtors)

	var transfers []Transfer
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := creditor.remaining
		if debtor.remaining < amount {
			amount = debtor.remaining
		}

		transfers = append(transfers, Transfer{
			From:   debtor.id,
			To:     creditor.id,
			Amount: round2(amount),
		})

		creditor.remaining -= amount
		debtor.remaining -= amount

		if creditor.remaining < zeroThreshold {
			i++
		}
		if debtor.remaining < zeroThreshold {
			j++
		}
	}

	return transfers
}

func sortByRemaining(parties []party) {
	sort.Slice(parties, func(a, b int) bool {
		if parties[a].remaining != parties[b].remaining {
			return parties[a].remaining > parties[b].remaining
		}
		return parties[a].id < parties[b].id
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
