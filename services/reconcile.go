package services

// Adjustment is one cost-editing session over a quote. It layers a transient
// override map on top of the immutable quote snapshot; the displayed cost of
// any line item resolves through a three-tier precedence:
//
//	session override > saved adjusted_cost > original estimated_cost
//
// The override map lives only for the session: Commit flushes it into the
// quote's adjustment fields, Cancel discards it.
type Adjustment struct {
	quote     *Quote
	overrides map[int]float64
}

// NewAdjustment starts an adjustment session for the given quote.
func NewAdjustment(q *Quote) *Adjustment {
	return &Adjustment{
		quote:     q,
		overrides: make(map[int]float64),
	}
}

// Quote returns the quote this session adjusts.
func (a *Adjustment) Quote() *Quote {
	return a.quote
}

// SetOverride records a session override for the line item at index.
func (a *Adjustment) SetOverride(index int, cost float64) error {
	if index < 0 || index >= len(a.quote.CostBreakdown) {
		return ErrOutOfRange
	}
	a.overrides[index] = cost
	return nil
}

// ClearOverride removes a single session override, if present.
func (a *Adjustment) ClearOverride(index int) {
	delete(a.overrides, index)
}

// Override returns the session override for index, if one exists.
func (a *Adjustment) Override(index int) (float64, bool) {
	v, ok := a.overrides[index]
	return v, ok
}

// HasEdits reports whether any session override exists.
func (a *Adjustment) HasEdits() bool {
	return len(a.overrides) > 0
}

// EffectiveCost resolves the displayed cost for the line item at index:
// session override if present, else the saved adjusted cost, else the
// original estimate.
func (a *Adjustment) EffectiveCost(index int) float64 {
	if v, ok := a.overrides[index]; ok {
		return v
	}
	item := a.quote.CostBreakdown[index]
	if item.AdjustedCost != nil {
		return *item.AdjustedCost
	}
	return item.EstimatedCost
}

// EffectiveTotal resolves the displayed total. While no session edits exist
// the stored total is returned verbatim (it already reflects previously
// saved adjustments), avoiding drift from re-aggregating floats. With any
// session edit the total is recomputed bottom-up from the line items.
func (a *Adjustment) EffectiveTotal() float64 {
	if len(a.overrides) == 0 {
		return a.quote.TotalCost
	}
	var sum float64
	for i := range a.quote.CostBreakdown {
		sum += a.EffectiveCost(i)
	}
	return sum
}

// EffectiveCostMap returns component → effective cost for every line item,
// the shape the document service and exports consume.
func (a *Adjustment) EffectiveCostMap() map[string]float64 {
	m := make(map[string]float64, len(a.quote.CostBreakdown))
	for i, item := range a.quote.CostBreakdown {
		m[item.Component] = a.EffectiveCost(i)
	}
	return m
}

// CostChange describes one line item mutated by a commit.
type CostChange struct {
	Index        int
	Component    string
	OriginalCost float64
	AdjustedCost float64
	Ratio        float64
}

// Commit flushes the session overrides into the quote and clears the map.
// For every override that differs from the item's current estimate it
// records a CostChange (ratio = override / estimate), then writes the
// override into estimated_cost and adjusted_cost, setting original_cost only
// if not already set. The quote's total_cost becomes the effective total;
// original_total_cost is set on the first commit only, so it always reflects
// the estimation service's first answer.
func (a *Adjustment) Commit() []CostChange {
	if len(a.overrides) == 0 {
		return nil
	}

	newTotal := a.EffectiveTotal()
	priorTotal := a.quote.TotalCost

	var changes []CostChange
	for i := range a.quote.CostBreakdown {
		override, ok := a.overrides[i]
		if !ok {
			continue
		}
		item := &a.quote.CostBreakdown[i]
		if override == item.EstimatedCost {
			continue
		}

		var ratio float64
		if item.EstimatedCost != 0 {
			ratio = override / item.EstimatedCost
		}
		changes = append(changes, CostChange{
			Index:        i,
			Component:    item.Component,
			OriginalCost: item.EstimatedCost,
			AdjustedCost: override,
			Ratio:        ratio,
		})

		if item.OriginalCost == nil {
			prior := item.EstimatedCost
			item.OriginalCost = &prior
		}
		item.EstimatedCost = override
		adjusted := override
		item.AdjustedCost = &adjusted
	}

	if a.quote.OriginalTotalCost == nil {
		a.quote.OriginalTotalCost = &priorTotal
	}
	a.quote.TotalCost = newTotal
	a.overrides = make(map[int]float64)

	return changes
}

// Cancel discards every session override without touching the quote.
func (a *Adjustment) Cancel() {
	a.overrides = make(map[int]float64)
}
