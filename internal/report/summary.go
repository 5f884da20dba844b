package report

import (
	"errors"
	"sort"
)

// ErrNoData is returned by Summarize when the export contains no data rows
// after the header. Consumers must treat this as a distinct terminal state,
// not render a zero-filled dashboard.
var ErrNoData = errors.New("no summary available")

// topN is the length cap on the ranked product and state lists.
const topN = 10

// Totals holds the headline metrics derived from the order collection.
// Amount totals are summed over orders, not line items, so multi-item
// orders are never double counted.
type Totals struct {
	TotalOrders           int         `json:"totalOrders"`
	TotalUnits            float64     `json:"totalUnits"`
	NetSales              float64     `json:"netSales"`
	OrderTotal            float64     `json:"orderTotal"`
	Taxes                 float64     `json:"taxes"`
	AvgOrderValue         float64     `json:"avgOrderValue"`
	AvgBottlePrice        float64     `json:"avgBottlePrice"`
	UniqueCustomers       int         `json:"uniqueCustomers"`
	RepeatCustomers       int         `json:"repeatCustomers"`
	RepeatRate            float64     `json:"repeatRate"`
	AvgBottlesPerCustomer float64     `json:"avgBottlesPerCustomer"`
	PickupCount           int         `json:"pickupCount"`
	ShippingCount         int         `json:"shippingCount"`
	Peak                  MonthBucket `json:"peak"`
	Low                   MonthBucket `json:"low"`
}

// MonthBucket aggregates the orders completed in one calendar month.
// Key is a zero-padded "YYYY-MM" string, so lexicographic order is
// chronological order.
type MonthBucket struct {
	Key      string  `json:"key"`
	NetSales float64 `json:"netSales"`
	Orders   int     `json:"orders"`
	Units    float64 `json:"units"`
}

// Slice is one labeled value in a categorical rollup (channel or state).
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ProductRank is one entry in a ranked product list.
type ProductRank struct {
	SKU      string  `json:"sku"`
	Units    float64 `json:"units"`
	NetSales float64 `json:"netSales"`
}

// Summary is the terminal, immutable output of a summarization run.
type Summary struct {
	Totals      Totals        `json:"totals"`
	Monthly     []MonthBucket `json:"monthly"`
	ChannelList []Slice       `json:"channelList"`
	TopStates   []Slice       `json:"topStates"`
	TopRevenue  []ProductRank `json:"topRevenue"`
	TopUnits    []ProductRank `json:"topUnits"`
}

// Summarize derives the final summary from the accumulated collections.
// Returns ErrNoData if no records were folded in. All ratio denominators
// are guarded: a zero denominator yields 0, never NaN or Inf.
func (a *Accumulator) Summarize() (*Summary, error) {
	if a.rows == 0 {
		return nil, ErrNoData
	}

	orders := a.Orders()

	totals := Totals{TotalOrders: len(orders)}
	for _, o := range orders {
		totals.TotalUnits += o.Units
		totals.NetSales += o.NetSales
		totals.OrderTotal += o.OrderTotal
		totals.Taxes += o.Taxes
		if o.Pickup {
			totals.PickupCount++
		} else {
			totals.ShippingCount++
		}
	}
	if totals.TotalOrders > 0 {
		totals.AvgOrderValue = totals.NetSales / float64(totals.TotalOrders)
	}
	if totals.TotalUnits > 0 {
		totals.AvgBottlePrice = totals.NetSales / totals.TotalUnits
	}

	customers := a.Customers()
	totals.UniqueCustomers = len(customers)
	var customerUnits float64
	for _, c := range customers {
		customerUnits += c.Units
		if c.IsRepeat() {
			totals.RepeatCustomers++
		}
	}
	if totals.UniqueCustomers > 0 {
		totals.RepeatRate = float64(totals.RepeatCustomers) / float64(totals.UniqueCustomers)
		totals.AvgBottlesPerCustomer = customerUnits / float64(totals.UniqueCustomers)
	}

	monthly := monthlySeries(orders)
	totals.Peak, totals.Low = peakAndLow(monthly)

	summary := &Summary{
		Totals:      totals,
		Monthly:     monthly,
		ChannelList: channelRollup(orders),
		TopStates:   stateRollup(orders),
		TopRevenue:  topProducts(a.Products(), byRevenue),
		TopUnits:    topProducts(a.Products(), byUnits),
	}
	return summary, nil
}

// monthlySeries groups orders with a resolvable completion date by
// year-month and returns the buckets sorted ascending by key. Orders with
// no completion date are excluded from every bucket.
func monthlySeries(orders []*Order) []MonthBucket {
	buckets := make(map[string]*MonthBucket)
	var keys []string
	for _, o := range orders {
		if o.Completed == nil {
			continue
		}
		key := o.Completed.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{Key: key}
			buckets[key] = b
			keys = append(keys, key)
		}
		b.NetSales += o.NetSales
		b.Orders++
		b.Units += o.Units
	}
	sort.Strings(keys)

	out := make([]MonthBucket, len(keys))
	for i, k := range keys {
		out[i] = *buckets[k]
	}
	return out
}

// peakAndLow reduces over the already-sorted monthly series, so ties go to
// the chronologically earliest month. With no months, both are the
// zero-valued placeholder.
func peakAndLow(monthly []MonthBucket) (peak, low MonthBucket) {
	if len(monthly) == 0 {
		return MonthBucket{}, MonthBucket{}
	}
	peak, low = monthly[0], monthly[0]
	for _, m := range monthly[1:] {
		if m.NetSales > peak.NetSales {
			peak = m
		}
		if m.NetSales < low.NetSales {
			low = m
		}
	}
	return peak, low
}

// channelRollup groups orders by order-type label, keeping only strictly
// positive net-sales sums, sorted descending. Ties keep first-seen order.
func channelRollup(orders []*Order) []Slice {
	return rollup(orders, func(o *Order) (string, bool) {
		return o.Channel, true
	}, true, 0)
}

// stateRollup groups non-pickup orders by ship-state code, sorted
// descending and truncated to the top 10.
func stateRollup(orders []*Order) []Slice {
	return rollup(orders, func(o *Order) (string, bool) {
		return o.ShipState, !o.Pickup
	}, false, topN)
}

// rollup sums order net sales per label in first-seen order, then applies
// a stable descending sort so equal values keep encounter order.
// An empty label groups under "Unknown".
func rollup(orders []*Order, classify func(*Order) (string, bool), positiveOnly bool, limit int) []Slice {
	sums := make(map[string]float64)
	var labels []string
	for _, o := range orders {
		label, ok := classify(o)
		if !ok {
			continue
		}
		if label == "" {
			label = "Unknown"
		}
		if _, seen := sums[label]; !seen {
			labels = append(labels, label)
		}
		sums[label] += o.NetSales
	}

	out := make([]Slice, 0, len(labels))
	for _, label := range labels {
		if positiveOnly && sums[label] <= 0 {
			continue
		}
		out = append(out, Slice{Label: label, Value: sums[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func byRevenue(a, b ProductRank) bool { return a.NetSales > b.NetSales }
func byUnits(a, b ProductRank) bool   { return a.Units > b.Units }

// topProducts ranks the product collection with a stable descending sort
// and truncates to the top 10. Ranking by revenue and by units are
// independent; the lists may overlap or differ in membership.
func topProducts(products []*Product, more func(a, b ProductRank) bool) []ProductRank {
	ranks := make([]ProductRank, len(products))
	for i, p := range products {
		ranks[i] = ProductRank{SKU: p.SKU, Units: p.Units, NetSales: p.NetSales}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return more(ranks[i], ranks[j])
	})
	if len(ranks) > topN {
		ranks = ranks[:topN]
	}
	return ranks
}
