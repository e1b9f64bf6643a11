package utils

import "strings"

// AddToLogMessage appends one entry to a per-request log trail
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {

	if logMessagesBuilder.Len() == logMessagesBuilder.Cap() {

		logMessagesBuilder.Grow(len(strToAdd))
	}

	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}

// LogTrail returns the trail as a single line, entries separated by "; "
func LogTrail(logMessagesBuilder *strings.Builder) string {
	entries := strings.Split(strings.TrimSpace(logMessagesBuilder.String()), ";\n")
	for i := range entries {
		entries[i] = strings.TrimSuffix(strings.TrimSpace(entries[i]), ";")
	}
	return strings.Join(entries, "; ")
}
