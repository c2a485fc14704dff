package stats

import (
	"maps"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceSlashRe = regexp.MustCompile(`[\s/]`)
	digitPluralRe     = regexp.MustCompile(`(?i)(\d)s`)
	winPercentLabelRe = regexp.MustCompile(`(?i)^win%$`)
	matchesLabelRe    = regexp.MustCompile(`(?i)^matches played$`)
	nonNumericRe      = regexp.MustCompile(`(?i)\d[mdhs]|[a-z]`)
	leadingFloatRe    = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
)

const percentSuffix = "_"

// Normalizer cleans provider field names and values into canonical stats.
// It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	aliases   map[string]string
	blacklist map[string]struct{}
}

// NewNormalizer creates a normalizer with the given alias table and blacklist.
func NewNormalizer(aliases map[string]string, blacklist []string) *Normalizer {
	n := &Normalizer{
		aliases:   make(map[string]string, len(aliases)),
		blacklist: make(map[string]struct{}, len(blacklist)),
	}
	maps.Copy(n.aliases, aliases)
	for _, id := range blacklist {
		n.blacklist[id] = struct{}{}
	}
	return n
}

// DefaultNormalizer uses DefaultAliases and DefaultBlacklist.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultAliases, DefaultBlacklist)
}

// WithOverrides returns a copy of n with extra aliases and blacklisted ids merged in.
func (n *Normalizer) WithOverrides(aliases map[string]string, blacklist []string) *Normalizer {
	merged := NewNormalizer(n.aliases, nil)
	maps.Copy(merged.blacklist, n.blacklist)
	maps.Copy(merged.aliases, aliases)
	for _, id := range blacklist {
		merged.blacklist[id] = struct{}{}
	}
	return merged
}

// Aliases returns a copy of the alias table.
func (n *Normalizer) Aliases() map[string]string {
	return maps.Clone(n.aliases)
}

// CleanField turns a provider label into a field id. "Win%" becomes "wins_",
// "Top 5s" becomes "top5".
func (n *Normalizer) CleanField(raw string) string {
	s := whitespaceSlashRe.ReplaceAllString(raw, "")
	s = strings.Replace(s, "%", "s_", 1)
	s = strings.Replace(s, "%", percentSuffix, 1)
	s = replaceFirst(digitPluralRe, s, "${1}")
	return strings.ToLower(s)
}

// CleanLabel tidies a provider label for display.
func (n *Normalizer) CleanLabel(raw string) string {
	s := replaceFirst(digitPluralRe, raw, "${1}")
	s = winPercentLabelRe.ReplaceAllString(s, "Wins %")
	return matchesLabelRe.ReplaceAllString(s, "Matches")
}

// ResolveAlias maps a cleaned id through the alias table.
func (n *Normalizer) ResolveAlias(id string) string {
	if alias, ok := n.aliases[id]; ok && alias != "" {
		return alias
	}
	return id
}

// Canonical cleans raw and resolves its alias.
func (n *Normalizer) Canonical(raw string) string {
	return n.ResolveAlias(n.CleanField(raw))
}

// IsBlacklisted reports whether id must never be returned.
func (n *Normalizer) IsBlacklisted(id string) bool {
	_, ok := n.blacklist[id]
	return ok
}

// CleanNumber parses a raw value. Durations ("3h", "12m") and anything holding a
// letter stay strings. Otherwise thousands separators are dropped and the
// leading number is parsed; input with no leading number yields NaN.
func (n *Normalizer) CleanNumber(raw RawValue) Value {
	if raw.IsNum {
		return Number(raw.Num)
	}
	if nonNumericRe.MatchString(raw.Text) {
		return Text(raw.Text)
	}
	return Number(parseLeadingFloat(strings.ReplaceAll(raw.Text, ",", "")))
}

// IsPercentVariant reports whether id names a percentage variant.
func IsPercentVariant(id string) bool {
	return strings.HasSuffix(id, percentSuffix)
}

// PercentVariant returns the percentage variant id of a base field.
func PercentVariant(id string) string {
	return id + percentSuffix
}

func parseLeadingFloat(s string) float64 {
	m := leadingFloatRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// replaceFirst replaces the first match of re in s, expanding template.
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var out []byte
	out = append(out, s[:loc[0]]...)
	out = re.ExpandString(out, template, s, loc)
	out = append(out, s[loc[1]:]...)
	return string(out)
}

// mergeValues combines two values of the same field. Numbers are summed; a
// string on either side keeps the newer value.
func mergeValues(prev, next Value) Value {
	if prev.IsNumber() && next.IsNumber() {
		return Number(prev.Float() + next.Float())
	}
	return next
}
