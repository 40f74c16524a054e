package render

import (
	"fmt"
	"strings"
)

// MemoryLimitLabel formats the memory-limit slider value.
func MemoryLimitLabel(gb int) string {
	return fmt.Sprintf("%d GB", gb)
}

// ModelShortName returns the short label for a model option: the first
// whitespace-delimited token of the option text.
func ModelShortName(optionText string) string {
	fields := strings.Fields(optionText)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
