package domain

import "testing"

func TestCompileRulesOrder(t *testing.T) {
	rules := compileRules(DefaultTables())

	wantOrder := []string{
		"site-role-client-number-domain",
		"site-role-client-set-domain",
		"site-role-number-set-domain",
		"site-role-number-domain",
		"site-role-set-domain",
		"site-role-domain",
		"site-role-client-number",
		"site-role-client-set",
		"site-role-number",
		"site-role",
	}

	if len(rules) != len(wantOrder) {
		t.Fatalf("compileRules() returned %d rules, want %d", len(rules), len(wantOrder))
	}
	for i, want := range wantOrder {
		if rules[i].name != want {
			t.Errorf("rule[%d] = %q, want %q", i, rules[i].name, want)
		}
	}
}

func TestRuleApplyCaptures(t *testing.T) {
	decoder := NewDecoder(nil)

	tests := []struct {
		name     string
		label    string
		wantRule string
		want     RawMatch
	}{
		{
			name:     "full shape with every slot",
			label:    "denwebacm01-d",
			wantRule: "site-role-client-number-domain",
			want: RawMatch{
				Datacenter:   "den",
				Role:         "web",
				Environment:  "acm",
				Number:       "01",
				DomainSuffix: "d",
			},
		},
		{
			name:     "number and set",
			label:    "cinfs02a-z",
			wantRule: "site-role-number-set-domain",
			want: RawMatch{
				Datacenter:   "cin",
				Role:         "fs",
				Number:       "02",
				Set:          "a",
				DomainSuffix: "z",
			},
		},
		{
			name:     "least specific catch-all",
			label:    "atlmon",
			wantRule: "site-role",
			want: RawMatch{
				Datacenter: "atl",
				Role:       "mon",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range decoder.rules {
				raw, ok := decoder.rules[i].apply(tt.label)
				if !ok {
					continue
				}
				if decoder.rules[i].name != tt.wantRule {
					t.Fatalf("label %q claimed by rule %q, want %q", tt.label, decoder.rules[i].name, tt.wantRule)
				}
				if raw != tt.want {
					t.Errorf("apply(%q) = %+v, want %+v", tt.label, raw, tt.want)
				}
				return
			}
			t.Fatalf("no rule matched %q", tt.label)
		})
	}
}

func TestRuleApplyCaseInsensitive(t *testing.T) {
	decoder := NewDecoder(nil)

	raw, ok := decoder.match("DenWebACM01-D")
	if !ok {
		t.Fatal("mixed-case label did not match")
	}
	if raw.Number != "01" || raw.DomainSuffix != "D" {
		t.Errorf("match captured %+v", raw)
	}
}

// An unknown trailing token must not be mistaken for a domain suffix; the
// catch-all rule absorbs it into the role instead.
func TestRuleUnknownSuffixNotClaimed(t *testing.T) {
	decoder := NewDecoder(nil)

	for i := range decoder.rules {
		raw, ok := decoder.rules[i].apply("denaerp-q")
		if !ok {
			continue
		}
		if decoder.rules[i].name != "site-role" {
			t.Fatalf("label with unknown suffix claimed by %q", decoder.rules[i].name)
		}
		if raw.DomainSuffix != "" {
			t.Errorf("unknown suffix captured as domain: %+v", raw)
		}
		return
	}
	t.Fatal("no rule matched")
}

func TestCaptureAltPrefersLongerCodes(t *testing.T) {
	got := captureAlt("dc", []string{"de", "denx", "den"})
	want := `(?P<dc>denx|den|de)`
	if got != want {
		t.Errorf("captureAlt() = %q, want %q", got, want)
	}
}
