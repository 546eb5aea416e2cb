// Package interpreter turns one line of free text into a structured command
// with the help of a generative model, repairs the parts of the model's answer
// that are known to be unreliable, and dispatches the result to the resource
// services.
package interpreter

import (
	"math"
	"strconv"
	"strings"
)

// Kind is what a command asks for
type Kind string

const (
	KindTask       Kind = "task"
	KindReminder   Kind = "reminder"
	KindBudget     Kind = "budget"
	KindNavigation Kind = "navigation"
	KindUnknown    Kind = "unknown"
)

func parseKind(s string) Kind {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindTask, KindReminder, KindBudget, KindNavigation:
		return k
	}
	return KindUnknown
}

// Action is the verb of a command
type Action string

const (
	ActionCreate   Action = "create"
	ActionNavigate Action = "navigate"
)

// Fields holds the loosely typed values the model extracted
type Fields map[string]interface{}

// String returns the trimmed string value of key, or "" when it is absent or
// not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return strings.TrimSpace(s)
}

// Number returns the numeric value of key. Numeric strings are accepted.
func (f Fields) Number(key string) (float64, bool) {
	var n float64
	switch v := f[key].(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Command is the structured result of interpreting one input line
type Command struct {
	Input  string `json:"input"`
	Kind   Kind   `json:"type"`
	Action Action `json:"action"`
	Fields Fields `json:"data"`
}

// Unknown returns the no-op command for input.
func Unknown(input string) Command {
	return Command{Input: input, Kind: KindUnknown, Action: ActionCreate, Fields: Fields{}}
}
