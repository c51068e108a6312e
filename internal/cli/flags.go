package cli

import (
	"fmt"
	"strings"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// keyValues is a repeatable key=value flag. A later key replaces an
// earlier one.
type keyValues map[string]string

func (kv keyValues) String() string {
	pairs := make([]string, 0, len(kv))
	for _, k := range sortedKeys(kv) {
		pairs = append(pairs, k+"="+kv[k])
	}
	return strings.Join(pairs, ",")
}

func (kv keyValues) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	kv[key] = value
	return nil
}
