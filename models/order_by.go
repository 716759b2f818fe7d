package models

import "github.com/spf13/cast"

// OrderByKind discriminates the accepted ordering shapes.
type OrderByKind int

const (
	OrderNone OrderByKind = iota
	OrderRaw
	OrderList
	OrderPair
)

// OrderBy is a tagged union over the four ordering shapes a request may
// carry: absent, a single raw clause, a list of raw clauses, or a structured
// column/direction pair.
type OrderBy struct {
	kind      OrderByKind
	raw       string
	list      []string
	column    string
	direction string
}

func NoOrder() OrderBy {
	return OrderBy{kind: OrderNone}
}

func RawOrder(clause string) OrderBy {
	return OrderBy{kind: OrderRaw, raw: clause}
}

func ListOrder(clauses []string) OrderBy {
	return OrderBy{kind: OrderList, list: clauses}
}

func PairOrder(column, direction string) OrderBy {
	return OrderBy{kind: OrderPair, column: column, direction: direction}
}

// OrderByOf coerces a loosely typed ordering input into an OrderBy.
func OrderByOf(v any) OrderBy {
	switch typed := v.(type) {
	case nil:
		return NoOrder()
	case OrderBy:
		return typed
	case string:
		if typed == "" {
			return NoOrder()
		}
		return RawOrder(typed)
	case []string:
		return ListOrder(typed)
	case []any:
		return ListOrder(cast.ToStringSlice(typed))
	case map[string]any:
		return PairOrder(cast.ToString(typed["column"]), cast.ToString(typed["direction"]))
	default:
		return NoOrder()
	}
}

func (o OrderBy) Kind() OrderByKind {
	return o.kind
}

func (o OrderBy) Raw() string {
	return o.raw
}

func (o OrderBy) List() []string {
	return o.list
}

func (o OrderBy) Column() string {
	return o.column
}

func (o OrderBy) Direction() string {
	return o.direction
}
