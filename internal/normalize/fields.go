package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerant accessors over decoded JSON. Every helper accepts a wrongly
// typed or missing value and returns a zero value instead of panicking.

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// firstString returns the first non-empty string among the given keys.
func firstString(m map[string]interface{}, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asList(v interface{}) []interface{} {
	l, _ := v.([]interface{})
	return l
}

// asStringList flattens a list value into strings. Non-string elements
// are kept via their textual form rather than dropped.
func asStringList(v interface{}) []string {
	items := asList(v)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := asString(it); s != "" {
			out = append(out, s)
		} else if it != nil {
			out = append(out, rawText(it))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func hasAny(m map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// rawText renders an arbitrary value for the raw-fallback line shown when
// a structured entry turned out not to be an object.
func rawText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// deriveDateRange builds the display range: an explicit combined string
// wins, otherwise "{start} - {end}" with the ongoing marker for an open
// end, otherwise the date-not-specified placeholder.
func deriveDateRange(explicit, start, end string) string {
	if explicit != "" {
		return explicit
	}
	if start != "" {
		if end != "" {
			return start + " - " + end
		}
		return start + " - " + msgOngoing
	}
	return msgDateNotSpecified
}
