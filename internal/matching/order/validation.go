package order

// Validator is the polymorphic validation contract: validate an order,
// return a reason on failure.
type Validator interface {
	Validate(o *Order) error
}

// NoOpValidator always succeeds. It is the default-default.
type NoOpValidator struct{}

func (NoOpValidator) Validate(*Order) error { return nil }

// QuantityValidator rejects non-positive quantities.
type QuantityValidator struct{}

func (QuantityValidator) Validate(o *Order) error {
	if o.qty <= 0 {
		return InvalidOrder("Quantity must be > 0")
	}
	return nil
}

// LimitPriceRequiredValidator rejects LIMIT/STOP_LIMIT orders without a
// positive limit price.
type LimitPriceRequiredValidator struct{}

func (LimitPriceRequiredValidator) Validate(o *Order) error {
	if o.typ == Limit || o.typ == StopLimit {
		if o.price <= 0 {
			return InvalidOrder("Limit/stop-limit requires limit price > 0")
		}
	}
	return nil
}

// StopPriceRequiredValidator rejects STOP/STOP_LIMIT orders without a
// positive stop price.
type StopPriceRequiredValidator struct{}

func (StopPriceRequiredValidator) Validate(o *Order) error {
	if o.typ == Stop || o.typ == StopLimit {
		if o.stopPrice <= 0 {
			return InvalidOrder("Stop/stop-limit requires stop price > 0")
		}
	}
	return nil
}

// Chain runs its members in insertion order and short-circuits on the first
// failure — the chain-of-responsibility validator described in spec §4.1.
type Chain struct {
	validators []Validator
}

// NewChain builds a Chain from the given validators, run in order.
func NewChain(validators ...Validator) *Chain {
	return &Chain{validators: validators}
}

// Add appends a validator to the end of the chain.
func (c *Chain) Add(v Validator) {
	c.validators = append(c.validators, v)
}

func (c *Chain) Validate(o *Order) error {
	for _, v := range c.validators {
		if err := v.Validate(o); err != nil {
			return err
		}
	}
	return nil
}

// StandardChain is the shipped validator chain: quantity, then limit price,
// then stop price.
func StandardChain() *Chain {
	return NewChain(QuantityValidator{}, LimitPriceRequiredValidator{}, StopPriceRequiredValidator{})
}
