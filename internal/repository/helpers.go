package repository

import (
	"strings"
	"time"
)

const timeLayout = time.RFC3339Nano

// nowUTC returns the current UTC time formatted for SQLite storage.
func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp. Unparseable values read as the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// likePrefix escapes s for use as the prefix of a LIKE pattern with ESCAPE '\'.
func likePrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s) + "%"
}

// globPrefix escapes s for use as the prefix of a Redis MATCH pattern.
func globPrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s) + "*"
}
