package ao

import (
	json "github.com/goccy/go-json"
)

// Operator is the comparison a requirement applies to a character value
type Operator uint8

// Requirement operators
const (
	OperatorUnknown Operator = iota
	OperatorEqual
	OperatorLessOrEqual
	OperatorGreaterOrEqual
	OperatorNotEqual
	OperatorHas
	OperatorLacks
)

var operatorSymbols = [...]string{
	OperatorUnknown:        "unknown",
	OperatorEqual:          "==",
	OperatorLessOrEqual:    "<=",
	OperatorGreaterOrEqual: ">=",
	OperatorNotEqual:       "!=",
	OperatorHas:            "has",
	OperatorLacks:          "lacks",
}

// ParseOperator maps a wire symbol to an Operator. Unrecognized symbols
// yield OperatorUnknown so bad game data fails closed at evaluation.
func ParseOperator(s string) Operator {
	for op, sym := range operatorSymbols {
		if Operator(op) != OperatorUnknown && sym == s {
			return Operator(op)
		}
	}
	return OperatorUnknown
}

// Valid reports whether the operator is one of the six comparison operators
func (o Operator) Valid() bool {
	return o > OperatorUnknown && int(o) < len(operatorSymbols)
}

func (o Operator) String() string {
	if int(o) < len(operatorSymbols) {
		return operatorSymbols[o]
	}
	return operatorSymbols[OperatorUnknown]
}

// MarshalJSON encodes the operator as its symbol
func (o Operator) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON never fails on content: anything that is not a known symbol
// becomes OperatorUnknown.
func (o *Operator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*o = OperatorUnknown
		return nil
	}
	*o = ParseOperator(s)
	return nil
}
