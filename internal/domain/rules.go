package domain

import (
	"regexp"
	"sort"
	"strings"
)

// rule is one structural pattern of the naming catalog. The catalog is an
// ordered slice: rules capturing more slots come first, so a general rule
// can never claim a label meant for a more specific one. First match wins.
type rule struct {
	name string
	re   *regexp.Regexp
}

// compileRules builds the ordered rule catalog for the given tables.
//
// Site and client codes are matched against explicit alternations built from
// the tables, so a label with an unknown leading token fails to match rather
// than producing a bogus record. The role slot is a lazy letter run: it
// absorbs whatever sits between the site code and the remaining slots.
func compileRules(t *Tables) []rule {
	site := captureAlt("dc", t.SiteCodes())
	client := captureAlt("env", t.ClientCodes())
	sfx := `-` + captureAlt("sfx", t.SuffixCodes())

	const (
		role = `(?P<role>[a-z]+?)`
		// roleTail is the catch-all variant used when nothing follows the
		// role: it may also carry digits and hyphens from odd legacy names.
		roleTail = `(?P<role>[a-z][a-z0-9-]*)`
		num      = `(?P<num>\d{2})`
		set      = `(?P<set>[a-d])`
	)

	// Ordered most-specific-first; see the precedence note on rule.
	shapes := []struct {
		name string
		expr string
	}{
		{"site-role-client-number-domain", site + role + client + num + sfx},
		{"site-role-client-set-domain", site + role + client + set + sfx},
		{"site-role-number-set-domain", site + role + num + set + sfx},
		{"site-role-number-domain", site + role + num + sfx},
		{"site-role-set-domain", site + role + set + sfx},
		{"site-role-domain", site + role + sfx},
		{"site-role-client-number", site + role + client + num},
		{"site-role-client-set", site + role + client + set},
		{"site-role-number", site + role + num},
		{"site-role", site + roleTail},
	}

	rules := make([]rule, 0, len(shapes))
	for _, s := range shapes {
		rules = append(rules, rule{
			name: s.name,
			re:   regexp.MustCompile(`(?i)^` + s.expr + `$`),
		})
	}
	return rules
}

// captureAlt builds a named capture group matching any of the given codes.
// Longer codes are tried first so a code that prefixes another cannot
// shadow it.
func captureAlt(group string, codes []string) string {
	sorted := make([]string, len(codes))
	copy(sorted, codes)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	quoted := make([]string, len(sorted))
	for i, code := range sorted {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(code))
	}
	return `(?P<` + group + `>` + strings.Join(quoted, "|") + `)`
}

// apply matches the label against the rule and extracts the raw field codes
// from the named capture groups. Returns false when the shape does not match.
func (r *rule) apply(label string) (RawMatch, bool) {
	matched := r.re.FindStringSubmatch(label)
	if matched == nil {
		return RawMatch{}, false
	}

	captured := make(map[string]string, 6)
	for i, name := range r.re.SubexpNames() {
		if i != 0 && name != "" {
			captured[name] = matched[i]
		}
	}

	return RawMatch{
		Datacenter:   captured["dc"],
		Role:         captured["role"],
		Environment:  captured["env"],
		Number:       captured["num"],
		Set:          captured["set"],
		DomainSuffix: captured["sfx"],
	}, true
}
