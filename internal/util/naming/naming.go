package naming

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPrefix is used when no name prefix is configured.
const DefaultPrefix = "cloudlaunch"

const timestampLayout = "20060102-150405"

// Instance returns the display name for an instance launched at t.
func Instance(prefix string, t time.Time) string {
	prefix = strings.Trim(strings.ToLower(prefix), "-")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s-%s", prefix, t.UTC().Format(timestampLayout))
}

// LaunchTime recovers the launch timestamp from a name produced by Instance.
func LaunchTime(name string) (time.Time, bool) {
	if len(name) < len(timestampLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(timestampLayout, name[len(name)-len(timestampLayout):])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
