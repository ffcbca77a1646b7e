package domain

// Tables holds the lookup tables the decoder resolves raw codes against.
//
// Tables are built once at startup (defaults, optionally extended from the
// catalog file) and passed by reference into the decoder. They are never
// mutated afterwards; the decoder only reads them.
type Tables struct {
	// Datacenters maps a site code (leading token of a host name)
	// to the full datacenter name.
	Datacenters map[string]string

	// LegacySiteCodes are site codes still present in host names whose
	// sites were folded into the legacy datacenter. The pattern catalog
	// recognizes them; the Datacenters table intentionally does not.
	LegacySiteCodes []string

	// LegacyDatacenter is the name resolved for any recognized site code
	// missing from Datacenters.
	LegacyDatacenter string

	// Domains maps a trailing domain-suffix code to the network domain.
	Domains map[string]string

	// Environments maps an embedded client code to the client designation.
	Environments map[string]string

	// RetiredClientCodes are client codes recognized in host names but no
	// longer mapped to a designation; they resolve to "None".
	RetiredClientCodes []string

	// Roles maps a role abbreviation to the descriptive role name.
	Roles map[string]string
}

const (
	// DomainMain is the network domain assumed when a host name carries
	// no domain suffix.
	DomainMain = "Main"

	// NoneValue is the literal used for absent environment and instance
	// identifiers.
	NoneValue = "None"
)

// DefaultTables returns the built-in naming catalog.
func DefaultTables() *Tables {
	return &Tables{
		Datacenters: map[string]string{
			"den": "Denver Data Centre",
			"cin": "Cincinnati Data Centre",
			"atl": "Atlanta Data Centre",
			"phx": "Phoenix Data Centre",
			"chi": "Chicago Data Centre",
			"dal": "Dallas Data Centre",
		},
		// okc and stl were decommissioned; their names still show up in
		// old inventory exports.
		LegacySiteCodes:  []string{"okc", "stl"},
		LegacyDatacenter: "Legacy Data Centre",
		Domains: map[string]string{
			"d": "Dev",
			"t": "Test",
			"x": "TestDMZ",
			"z": "DMZ",
		},
		Environments: map[string]string{
			"acm": "Acme Corporation",
			"glb": "Globex",
			"ini": "Initech",
			"stk": "Stark Industries",
			"way": "Wayne Enterprises",
		},
		RetiredClientCodes: []string{"vrt"},
		Roles: map[string]string{
			"aerp": "Acumentica ERP",
			"ad":   "Active Directory Domain Controller",
			"sql":  "SQL Database Server",
			"web":  "IIS Web Server",
			"fs":   "File Server",
			"ex":   "Exchange Mailbox Server",
			"app":  "Application Server",
			"dns":  "DNS Server",
			"ntp":  "NTP Time Server",
			"prt":  "Print Server",
			"rds":  "Remote Desktop Session Host",
			"bkp":  "Backup Server",
			"mon":  "Monitoring Server",
			"ca":   "Certificate Authority",
			"vpn":  "VPN Gateway",
			"wsus": "Windows Update Server",
			"hv":   "Hyper-V Host",
		},
	}
}

// SiteCodes returns every site code the pattern catalog should recognize:
// the mapped datacenters plus the legacy codes.
func (t *Tables) SiteCodes() []string {
	codes := make([]string, 0, len(t.Datacenters)+len(t.LegacySiteCodes))
	for code := range t.Datacenters {
		codes = append(codes, code)
	}
	codes = append(codes, t.LegacySiteCodes...)
	return codes
}

// ClientCodes returns every client code the pattern catalog should recognize:
// the mapped environments plus the retired codes.
func (t *Tables) ClientCodes() []string {
	codes := make([]string, 0, len(t.Environments)+len(t.RetiredClientCodes))
	for code := range t.Environments {
		codes = append(codes, code)
	}
	codes = append(codes, t.RetiredClientCodes...)
	return codes
}

// SuffixCodes returns the recognized domain-suffix codes.
func (t *Tables) SuffixCodes() []string {
	codes := make([]string, 0, len(t.Domains))
	for code := range t.Domains {
		codes = append(codes, code)
	}
	return codes
}
