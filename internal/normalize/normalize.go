// Package normalize holds the pure string transforms that let records
// from different sources be matched against each other.
package normalize

import (
	"regexp"
	"strings"
)

// suffixPattern matches a generational suffix at the end of a name only.
// A "jr" in the middle of a name is part of the name.
var suffixPattern = regexp.MustCompile(`(?i)\s+(jr|sr|iii|ii|iv)\.?$`)

// Name reduces a free-text player name to a matching key: lower-cased,
// periods stripped, whitespace collapsed, trailing generational suffix
// removed. Whitespace is collapsed before the suffix check so that
// trailing spaces do not hide a suffix from the anchored pattern. The
// key is for matching across sources only and is never displayed.
func Name(raw string) string {
	n := strings.ToLower(raw)
	n = strings.ReplaceAll(n, ".", "")
	n = strings.Join(strings.Fields(n), " ")
	return suffixPattern.ReplaceAllString(n, "")
}

// ParseMatchup splits a matchup string of the form "AWAY@HOME", optionally
// followed by ignored tokens such as a start time, and reports the
// opponent for playerTeam plus whether playerTeam is the home side. Team
// comparison is case-insensitive; the returned opponent keeps the
// source's upper-case form. Malformed input yields ("", false).
func ParseMatchup(matchup, playerTeam string) (string, bool) {
	fields := strings.Fields(matchup)
	if len(fields) == 0 {
		return "", false
	}

	teams := strings.Split(fields[0], "@")
	if len(teams) != 2 || teams[0] == "" || teams[1] == "" {
		return "", false
	}
	away, home := teams[0], teams[1]

	if strings.EqualFold(playerTeam, home) {
		return strings.ToUpper(away), true
	}
	return strings.ToUpper(home), false
}
