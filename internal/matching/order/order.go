package order

// Order is the mutable-in-flight record of one submitted intent. The zero
// value is not valid; construct one only through Make* below.
type Order struct {
	id        ID
	side      Side
	qty       Quantity
	openQty   Quantity
	symbol    Symbol
	status    Status
	typ       Type
	price     Price // LIMIT / STOP_LIMIT only
	stopPrice Price // STOP / STOP_LIMIT only
	tif       TIF
}

func (o *Order) ID() ID             { return o.id }
func (o *Order) Side() Side         { return o.side }
func (o *Order) OppositeSide() Side { return o.side.Opposite() }
func (o *Order) Qty() Quantity      { return o.qty }
func (o *Order) OpenQty() Quantity  { return o.openQty }
func (o *Order) Symbol() Symbol     { return o.symbol }
func (o *Order) Status() Status     { return o.status }
func (o *Order) Type() Type         { return o.typ }
func (o *Order) Price() Price       { return o.price }
func (o *Order) StopPrice() Price   { return o.stopPrice }
func (o *Order) TIF() TIF           { return o.tif }

// UpdateOpenQty sets the order's remaining open quantity.
func (o *Order) UpdateOpenQty(qty Quantity) { o.openQty = qty }

// UpdateStatus sets the order's lifecycle status.
func (o *Order) UpdateStatus(s Status) { o.status = s }

// defaultValidator is the process-wide default used by the no-validator
// factory overloads. Installed once at startup, before orders are created
// from multiple goroutines — SetDefaultValidator is not safe to call
// concurrently with order construction, matching the original's
// function-local-static contract.
var defaultValidator Validator = NoOpValidator{}

// SetDefaultValidator installs the process-wide default validator.
func SetDefaultValidator(v Validator) {
	if v != nil {
		defaultValidator = v
	}
}

// DefaultValidator returns the current process-wide default validator.
func DefaultValidator() Validator { return defaultValidator }

func makeAndValidate(id ID, side Side, qty Quantity, symbol Symbol, typ Type, price, stopPrice Price, tif TIF, v Validator) (*Order, error) {
	o := &Order{
		id:        id,
		side:      side,
		qty:       qty,
		openQty:   qty,
		symbol:    symbol,
		status:    Pending,
		typ:       typ,
		price:     price,
		stopPrice: stopPrice,
		tif:       tif,
	}
	if v == nil {
		v = defaultValidator
	}
	if err := v.Validate(o); err != nil {
		return nil, err
	}
	return o, nil
}

// MakeLimit constructs and validates a LIMIT order using the process-wide
// default validator.
func MakeLimit(id ID, side Side, qty Quantity, symbol Symbol, limitPrice Price, tif TIF) (*Order, error) {
	return MakeLimitWith(id, side, qty, symbol, limitPrice, tif, nil)
}

// MakeLimitWith constructs a LIMIT order, validating with v (nil uses the
// default validator).
func MakeLimitWith(id ID, side Side, qty Quantity, symbol Symbol, limitPrice Price, tif TIF, v Validator) (*Order, error) {
	return makeAndValidate(id, side, qty, symbol, Limit, limitPrice, Price(0), tif, v)
}

// MakeMarket constructs and validates a MARKET order using the process-wide
// default validator.
func MakeMarket(id ID, side Side, qty Quantity, symbol Symbol, tif TIF) (*Order, error) {
	return MakeMarketWith(id, side, qty, symbol, tif, nil)
}

// MakeMarketWith constructs a MARKET order, validating with v (nil uses the
// default validator).
func MakeMarketWith(id ID, side Side, qty Quantity, symbol Symbol, tif TIF, v Validator) (*Order, error) {
	return makeAndValidate(id, side, qty, symbol, Market, Price(0), Price(0), tif, v)
}

// MakeStop constructs and validates a structural STOP order. Stop orders are
// defined but never matched by the core (no trigger-price observer).
func MakeStop(id ID, side Side, qty Quantity, symbol Symbol, stopPrice Price, tif TIF) (*Order, error) {
	return MakeStopWith(id, side, qty, symbol, stopPrice, tif, nil)
}

func MakeStopWith(id ID, side Side, qty Quantity, symbol Symbol, stopPrice Price, tif TIF, v Validator) (*Order, error) {
	return makeAndValidate(id, side, qty, symbol, Stop, Price(0), stopPrice, tif, v)
}

// MakeStopLimit constructs and validates a structural STOP_LIMIT order.
func MakeStopLimit(id ID, side Side, qty Quantity, symbol Symbol, limitPrice, stopPrice Price, tif TIF) (*Order, error) {
	return MakeStopLimitWith(id, side, qty, symbol, limitPrice, stopPrice, tif, nil)
}

func MakeStopLimitWith(id ID, side Side, qty Quantity, symbol Symbol, limitPrice, stopPrice Price, tif TIF, v Validator) (*Order, error) {
	return makeAndValidate(id, side, qty, symbol, StopLimit, limitPrice, stopPrice, tif, v)
}
