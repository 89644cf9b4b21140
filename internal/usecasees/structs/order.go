package structs

// Broker order schema, shared between the order placement payload and the
// order detail response.

const (
	OrderTypeLimit = "LIMIT"
	OrderTypeStop  = "STOP"

	StrategyTypeSingle  = "SINGLE"
	StrategyTypeTrigger = "TRIGGER"
	StrategyTypeOCO     = "OCO"

	SessionNormal = "NORMAL"

	DurationGoodTillCancel = "GOOD_TILL_CANCEL"
	DurationDay            = "DAY"
)

type Instrument struct {
	Symbol    string `json:"symbol"`
	AssetType string `json:"assetType"`
	PutCall   string `json:"putCall,omitempty"`
}

type OrderLeg struct {
	Instruction string     `json:"instruction"`
	Quantity    int        `json:"quantity"`
	Instrument  Instrument `json:"instrument"`
}

type ExecutionLeg struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type OrderActivity struct {
	ActivityType  string         `json:"activityType,omitempty"`
	ExecutionLegs []ExecutionLeg `json:"executionLegs"`
}

type BrokerOrder struct {
	OrderID                 int64           `json:"orderId,omitempty"`
	OrderType               string          `json:"orderType,omitempty"`
	Session                 string          `json:"session,omitempty"`
	Duration                string          `json:"duration,omitempty"`
	OrderStrategyType       string          `json:"orderStrategyType"`
	Price                   float64         `json:"price,omitempty"`
	StopPrice               float64         `json:"stopPrice,omitempty"`
	Quantity                float64         `json:"quantity,omitempty"`
	Status                  string          `json:"status,omitempty"`
	OrderLegCollection      []OrderLeg      `json:"orderLegCollection,omitempty"`
	ChildOrderStrategies    []BrokerOrder   `json:"childOrderStrategies,omitempty"`
	OrderActivityCollection []OrderActivity `json:"orderActivityCollection,omitempty"`
}
