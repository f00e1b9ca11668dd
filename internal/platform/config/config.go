// Package config reads service settings from the environment. Required keys
// panic at boot; optional keys that do not parse log a warning and use the default.
package config

import (
	"strconv"
	"strings"
	"time"

	"moodlog/internal/platform/config/raw"
	"moodlog/internal/platform/logger"
)

// Conf is a prefixed view, e.g. New().Prefix("MOODS_") reads MOODS_*
type Conf struct{ env raw.Conf }

func New() Conf                                 { return Conf{env: raw.New()} }
func (c Conf) Prefix(p string) Conf             { return Conf{env: c.env.Prefix(p)} }
func (c Conf) MayString(key, def string) string { return c.env.Get(key, def) }

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v, ok := c.env.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.env.Key(key)).Msg("missing required env")
	}
	return v
}

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.env.Key(key)).Str("value", s).Interface("default", def).Msg("unparseable env; using default")
		return def
	}
	return v
}

func (c Conf) MayInt(key string, def int) int    { return may(c, key, def, strconv.Atoi) }
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration takes Go duration syntax: 250ms, 5s, 1h
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits on commas and drops blanks; an empty result is def
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
