package ao

import "fmt"

// Requirement is a condition an item imposes on the character using it
type Requirement struct {
	Stat     StatID   `json:"stat"`
	Operator Operator `json:"operator"`
	Value    int      `json:"value"`
}

// IsEmpty reports whether the requirement is the "no requirement" sentinel
func (r Requirement) IsEmpty() bool {
	return r.Stat == StatNone
}

func (r Requirement) String() string {
	return fmt.Sprintf("%s %s %d", r.Stat, r.Operator, r.Value)
}
