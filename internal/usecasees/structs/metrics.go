package structs

type MetricConst int

const (
	MetricOrderPlaced MetricConst = iota
	MetricOrderFilled
	MetricOrderRejected
	MetricOrderCanceled
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricOrderPlaced:
		return "trader_orders_placed_total"
	case MetricOrderFilled:
		return "trader_orders_filled_total"
	case MetricOrderRejected:
		return "trader_orders_rejected_total"
	case MetricOrderCanceled:
		return "trader_orders_canceled_total"
	}

	return "trader_orders_unknown_total"
}
