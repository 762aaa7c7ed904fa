// Package ingress turns a raw order descriptor line into a validated Order.
package ingress

import (
	"strconv"
	"strings"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// Parse decodes one semicolon-delimited "key=value" descriptor line into an
// Order. Recognized keys: id, side (BUY/SELL), qty, symbol, price (required
// for LIMIT/STOP_LIMIT), stop_price (required for STOP/STOP_LIMIT), type
// (LIMIT/MARKET/STOP/STOP_LIMIT, default MARKET), tif (DAY/GTC/IOC/AON/FOK,
// default DAY). Missing required keys and unparsable values surface as
// order.InvalidOrder, matching the factories' own failure contract.
func Parse(line string) (*order.Order, error) {
	fields := map[string]string{}
	for _, part := range strings.Split(line, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, order.InvalidOrder("malformed field: " + part)
		}
		fields[strings.ToLower(strings.TrimSpace(kv[0]))] = strings.TrimSpace(kv[1])
	}

	id, err := requireUint(fields, "id")
	if err != nil {
		return nil, err
	}
	side, err := parseSide(fields)
	if err != nil {
		return nil, err
	}
	qty, err := requireUint(fields, "qty")
	if err != nil {
		return nil, err
	}
	symbol, ok := fields["symbol"]
	if !ok || symbol == "" {
		return nil, order.InvalidOrder("missing required field: symbol")
	}
	typ := parseType(fields["type"])
	tif := parseTIF(fields["tif"])

	switch typ {
	case order.Limit:
		limitPrice, err := requireInt(fields, "price")
		if err != nil {
			return nil, err
		}
		return order.MakeLimit(order.ID(id), side, order.Quantity(qty), order.Symbol(symbol), order.Price(limitPrice), tif)
	case order.Stop:
		stopPrice, err := requireInt(fields, "stop_price")
		if err != nil {
			return nil, err
		}
		return order.MakeStop(order.ID(id), side, order.Quantity(qty), order.Symbol(symbol), order.Price(stopPrice), tif)
	case order.StopLimit:
		limitPrice, err := requireInt(fields, "price")
		if err != nil {
			return nil, err
		}
		stopPrice, err := requireInt(fields, "stop_price")
		if err != nil {
			return nil, err
		}
		return order.MakeStopLimit(order.ID(id), side, order.Quantity(qty), order.Symbol(symbol), order.Price(limitPrice), order.Price(stopPrice), tif)
	default: // order.Market: the ingress descriptor's type defaults to MARKET
		// per spec §3/§4.10 ("LIMIT if type=LIMIT, else MARKET") when the key
		// is absent or unrecognized.
		return order.MakeMarket(order.ID(id), side, order.Quantity(qty), order.Symbol(symbol), tif)
	}
}

func requireUint(fields map[string]string, key string) (uint64, error) {
	raw, ok := fields[key]
	if !ok || raw == "" {
		return 0, order.InvalidOrder("missing required field: " + key)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, order.InvalidOrder("invalid " + key + ": " + raw)
	}
	return v, nil
}

func requireInt(fields map[string]string, key string) (int64, error) {
	raw, ok := fields[key]
	if !ok || raw == "" {
		return 0, order.InvalidOrder("missing required field: " + key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, order.InvalidOrder("invalid " + key + ": " + raw)
	}
	return v, nil
}

func parseSide(fields map[string]string) (order.Side, error) {
	switch strings.ToUpper(fields["side"]) {
	case "BUY":
		return order.Buy, nil
	case "SELL":
		return order.Sell, nil
	default:
		return 0, order.InvalidOrder("invalid or missing side: " + fields["side"])
	}
}

// parseType defaults to MARKET when the field is absent or unrecognized,
// matching the scalar type's own default (spec §3) and the original ingress
// scheduler's literal rule: "LIMIT if type=LIMIT, else MARKET" (spec §4.10).
func parseType(raw string) order.Type {
	switch strings.ToUpper(raw) {
	case "LIMIT":
		return order.Limit
	case "STOP":
		return order.Stop
	case "STOP_LIMIT":
		return order.StopLimit
	default:
		return order.Market
	}
}

func parseTIF(raw string) order.TIF {
	switch strings.ToUpper(raw) {
	case "GTC", "GOOD_TILL_CANCELED":
		return order.GoodTillCanceled
	case "IOC", "IMMEDIATE_OR_CANCEL":
		return order.ImmediateOrCancel
	case "AON", "ALL_OR_NONE":
		return order.AllOrNone
	case "FOK", "FILL_OR_KILL":
		return order.FillOrKill
	default:
		return order.Day
	}
}
