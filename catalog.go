package identity

// Categories of the identifiers used across the trading system. Each
// category partitions the identifier space, so an order identifier
// never compares equal to an account identifier with the same value.
const (
	CategoryTrader   = "TraderID"
	CategoryStrategy = "StrategyID"
	CategoryAccount  = "AccountID"
	CategoryOrder    = "OrderID"
	CategoryPosition = "PositionID"
	CategorySymbol   = "Symbol"
	CategoryVenue    = "Venue"
)

func NewTraderID(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategoryTrader)
}

func NewStrategyID(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategoryStrategy)
}

func NewAccountID(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategoryAccount)
}

func NewOrderID(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategoryOrder)
}

func NewPositionID(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategoryPosition)
}

func NewSymbol(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategorySymbol)
}

func NewVenue(raw string) (Identifier, error) {
	return NewIdentifier(raw, CategoryVenue)
}
