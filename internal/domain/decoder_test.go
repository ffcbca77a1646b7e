package domain

import (
	"errors"
	"testing"
)

func TestDecodeKnownShapes(t *testing.T) {
	decoder := NewDecoder(nil)

	tests := []struct {
		name  string
		input string
		want  HostNameRecord
	}{
		{
			name:  "site role number with domain suffix",
			input: "DENAERP01-D",
			want: HostNameRecord{
				Datacenter:    "Denver Data Centre",
				Name:          "DENAERP01-D",
				Domain:        "dev",
				FQDN:          "denaerp01-d",
				ServerCountID: "01",
				Environment:   "None",
				Role:          "Acumentica ERP",
			},
		},
		{
			name:  "lowercase fqdn input",
			input: "cinad02-z.dmz.example.com",
			want: HostNameRecord{
				Datacenter:    "Cincinnati Data Centre",
				Name:          "CINAD02-Z",
				Domain:        "dmz",
				FQDN:          "cinad02-z.dmz.example.com",
				ServerCountID: "02",
				Environment:   "None",
				Role:          "Active Directory Domain Controller",
			},
		},
		{
			name:  "site and role only",
			input: "atlntp",
			want: HostNameRecord{
				Datacenter:    "Atlanta Data Centre",
				Name:          "ATLNTP",
				Domain:        "main",
				FQDN:          "atlntp",
				ServerCountID: "None",
				Environment:   "None",
				Role:          "NTP Time Server",
			},
		},
		{
			name:  "site role number without suffix defaults to main",
			input: "phxsql03",
			want: HostNameRecord{
				Datacenter:    "Phoenix Data Centre",
				Name:          "PHXSQL03",
				Domain:        "main",
				FQDN:          "phxsql03",
				ServerCountID: "03",
				Environment:   "None",
				Role:          "SQL Database Server",
			},
		},
		{
			name:  "set letter only",
			input: "chiwebb-t",
			want: HostNameRecord{
				Datacenter:    "Chicago Data Centre",
				Name:          "CHIWEBB-T",
				Domain:        "test",
				FQDN:          "chiwebb-t",
				ServerCountID: "B",
				Environment:   "None",
				Role:          "IIS Web Server",
			},
		},
		{
			name:  "number and set combined",
			input: "dalapp02c-x",
			want: HostNameRecord{
				Datacenter:    "Dallas Data Centre",
				Name:          "DALAPP02C-X",
				Domain:        "testdmz",
				FQDN:          "dalapp02c-x",
				ServerCountID: "02-C",
				Environment:   "None",
				Role:          "Application Server",
			},
		},
		{
			name:  "environment code with number and suffix",
			input: "denwebacm01-d",
			want: HostNameRecord{
				Datacenter:    "Denver Data Centre",
				Name:          "DENWEBACM01-D",
				Domain:        "dev",
				FQDN:          "denwebacm01-d",
				ServerCountID: "01",
				Environment:   "Acme Corporation",
				Role:          "IIS Web Server",
			},
		},
		{
			name:  "environment code with set letter",
			input: "cinsqlglba",
			want: HostNameRecord{
				Datacenter:    "Cincinnati Data Centre",
				Name:          "CINSQLGLBA",
				Domain:        "main",
				FQDN:          "cinsqlglba",
				ServerCountID: "A",
				Environment:   "Globex",
				Role:          "SQL Database Server",
			},
		},
		{
			name:  "legacy site code falls back to legacy datacenter",
			input: "okcad01",
			want: HostNameRecord{
				Datacenter:    "Legacy Data Centre",
				Name:          "OKCAD01",
				Domain:        "main",
				FQDN:          "okcad01",
				ServerCountID: "01",
				Environment:   "None",
				Role:          "Active Directory Domain Controller",
			},
		},
		{
			name:  "retired client code resolves to none",
			input: "denwebvrt02-t",
			want: HostNameRecord{
				Datacenter:    "Denver Data Centre",
				Name:          "DENWEBVRT02-T",
				Domain:        "test",
				FQDN:          "denwebvrt02-t",
				ServerCountID: "02",
				Environment:   "None",
				Role:          "IIS Web Server",
			},
		},
		{
			name:  "unmapped role abbreviation returned unchanged",
			input: "DENQQX01-D",
			want: HostNameRecord{
				Datacenter:    "Denver Data Centre",
				Name:          "DENQQX01-D",
				Domain:        "dev",
				FQDN:          "denqqx01-d",
				ServerCountID: "01",
				Environment:   "None",
				Role:          "QQX",
			},
		},
		{
			name:  "fqdn label split at first dot",
			input: "denaerp01-d.dev.example.com",
			want: HostNameRecord{
				Datacenter:    "Denver Data Centre",
				Name:          "DENAERP01-D",
				Domain:        "dev",
				FQDN:          "denaerp01-d.dev.example.com",
				ServerCountID: "01",
				Environment:   "None",
				Role:          "Acumentica ERP",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decoder.Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.input, err)
			}
			if *got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	decoder := NewDecoder(nil)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "whitespace only input",
			input:   "   \t ",
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown site prefix",
			input:   "XYZQQQ",
			wantErr: ErrUnrecognizedNamingConvention,
		},
		{
			name:    "known site but unmatchable shape",
			input:   "den-",
			wantErr: ErrUnrecognizedNamingConvention,
		},
		{
			name:    "site code alone is not a host name",
			input:   "den",
			wantErr: ErrUnrecognizedNamingConvention,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decoder.Decode(tt.input)
			if err == nil {
				t.Fatalf("Decode(%q) = %+v, want error %v", tt.input, got, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// A label carrying both a number and a domain suffix must be claimed by the
// number+domain rule, never by the number-only rule letting the suffix leak
// into the role or get dropped.
func TestDecodePrecedence(t *testing.T) {
	decoder := NewDecoder(nil)

	tests := []struct {
		name              string
		input             string
		wantDomain        string
		wantServerCountID string
		wantEnvironment   string
		wantRole          string
	}{
		{
			name:              "number plus suffix never falls through to number only",
			input:             "denaerp01-d",
			wantDomain:        "dev",
			wantServerCountID: "01",
			wantEnvironment:   "None",
			wantRole:          "Acumentica ERP",
		},
		{
			name:              "env plus number plus suffix wins over number plus suffix",
			input:             "denwebacm01-d",
			wantDomain:        "dev",
			wantServerCountID: "01",
			wantEnvironment:   "Acme Corporation",
			wantRole:          "IIS Web Server",
		},
		{
			name:              "number plus set wins over bare number rule",
			input:             "denfs01a-z",
			wantDomain:        "dmz",
			wantServerCountID: "01-A",
			wantEnvironment:   "None",
			wantRole:          "File Server",
		},
		{
			name:              "env plus set wins over set only",
			input:             "denexinib",
			wantDomain:        "main",
			wantServerCountID: "B",
			wantEnvironment:   "Initech",
			wantRole:          "Exchange Mailbox Server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decoder.Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.input, err)
			}
			if got.Domain != tt.wantDomain {
				t.Errorf("Domain = %q, want %q", got.Domain, tt.wantDomain)
			}
			if got.ServerCountID != tt.wantServerCountID {
				t.Errorf("ServerCountID = %q, want %q", got.ServerCountID, tt.wantServerCountID)
			}
			if got.Environment != tt.wantEnvironment {
				t.Errorf("Environment = %q, want %q", got.Environment, tt.wantEnvironment)
			}
			if got.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", got.Role, tt.wantRole)
			}
		})
	}
}

func TestDecodeDeterminism(t *testing.T) {
	decoder := NewDecoder(nil)

	inputs := []string{
		"DENAERP01-D",
		"cinad02-z.dmz.example.com",
		"atlntp",
		"denwebacm01-d",
	}

	for _, input := range inputs {
		first, err := decoder.Decode(input)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", input, err)
		}
		for i := 0; i < 5; i++ {
			again, err := decoder.Decode(input)
			if err != nil {
				t.Fatalf("Decode(%q) repeat error = %v", input, err)
			}
			if *again != *first {
				t.Errorf("Decode(%q) not deterministic: %+v vs %+v", input, *again, *first)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLabel string
		wantFQDN  string
		wantErr   bool
	}{
		{
			name:      "bare label",
			input:     "DENAERP01-D",
			wantLabel: "DENAERP01-D",
			wantFQDN:  "denaerp01-d",
		},
		{
			name:      "fqdn splits at first dot",
			input:     "cinad02-z.dmz.example.com",
			wantLabel: "cinad02-z",
			wantFQDN:  "cinad02-z.dmz.example.com",
		},
		{
			name:      "surrounding whitespace trimmed",
			input:     "  atlntp  ",
			wantLabel: "atlntp",
			wantFQDN:  "atlntp",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   " \t ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, fqdn, err := normalize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("normalize(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize(%q) error = %v", tt.input, err)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
			if fqdn != tt.wantFQDN {
				t.Errorf("fqdn = %q, want %q", fqdn, tt.wantFQDN)
			}
		})
	}
}

func TestComposeServerCountID(t *testing.T) {
	tests := []struct {
		name   string
		number string
		set    string
		want   string
	}{
		{name: "both", number: "02", set: "c", want: "02-C"},
		{name: "number only", number: "01", set: "", want: "01"},
		{name: "set only", number: "", set: "b", want: "B"},
		{name: "neither", number: "", set: "", want: "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composeServerCountID(tt.number, tt.set); got != tt.want {
				t.Errorf("composeServerCountID(%q, %q) = %q, want %q", tt.number, tt.set, got, tt.want)
			}
		})
	}
}

func TestDecodeConcurrent(t *testing.T) {
	decoder := NewDecoder(nil)

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				got, err := decoder.Decode("denaerp01-d")
				if err != nil {
					t.Errorf("concurrent Decode error = %v", err)
					return
				}
				if got.ServerCountID != "01" || got.Domain != "dev" {
					t.Errorf("concurrent Decode = %+v", *got)
					return
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
