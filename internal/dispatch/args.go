package dispatch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/crystaldolphin/discordmcp/internal/tools"
)

const (
	defaultCount = 50
	maxCount     = 100
)

// stringArg reads args[key] as a string. Absent and nil values read as "";
// numbers and booleans are formatted.
func stringArg(args tools.ArgumentBag, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// countArg reads the optional count argument. Strings are parsed by their
// leading integer; anything unparsable or not positive means the default.
// The result never exceeds maxCount.
func countArg(args tools.ArgumentBag) int {
	n, ok := 0, false
	switch v := args["count"].(type) {
	case string:
		n, ok = leadingInt(v)
	case float64:
		switch {
		case math.IsNaN(v):
		case v >= maxCount:
			n, ok = maxCount, true
		default:
			n, ok = int(v), true
		}
	case json.Number:
		n, ok = leadingInt(v.String())
	case int:
		n, ok = v, true
	case int64:
		n, ok = int(v), true
	}
	if !ok || n <= 0 {
		return defaultCount
	}
	return min(n, maxCount)
}

// leadingInt parses an optional sign followed by digits at the start of s,
// ignoring leading whitespace and anything after the digits.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow: only large positives matter, and they cap anyway.
		if s[0] != '-' {
			return maxCount, true
		}
		return 0, false
	}
	return n, true
}
