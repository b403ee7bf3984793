package options

import "strings"

// Flag is a y/n option value. Values outside the domain are kept verbatim
// so callers can decide whether to reject them.
type Flag string

const (
	Yes Flag = "y"
	No  Flag = "n"
)

func (f Flag) On() bool    { return f == Yes }
func (f Flag) Off() bool   { return f == No }
func (f Flag) Valid() bool { return f == Yes || f == No }

func flagOf(v string) Flag {
	return Flag(strings.TrimSpace(v))
}

// License is the exclusive license choice. LicenseUnknown marks input that
// matched none of the known names.
type License int

const (
	LicenseUnknown License = iota
	LicenseMIT
	LicenseBSD
	LicenseISC
	LicenseApache
	LicenseGPL
	LicenseNone
)

var licenseNames = [...]string{
	LicenseUnknown: "",
	LicenseMIT:     "MIT license",
	LicenseBSD:     "BSD license",
	LicenseISC:     "ISC license",
	LicenseApache:  "Apache Software License 2.0",
	LicenseGPL:     "GNU General Public License v3",
	LicenseNone:    "Not open source",
}

func (l License) String() string {
	if l < 0 || int(l) >= len(licenseNames) || l == LicenseUnknown {
		return "unknown"
	}
	return licenseNames[l]
}

// OpenSource reports whether l names one of the promotable license texts.
func (l License) OpenSource() bool {
	return l >= LicenseMIT && l <= LicenseGPL
}

// ParseLicense maps a display name to its License. Matching is exact after
// trimming surrounding whitespace.
func ParseLicense(name string) (License, bool) {
	name = strings.TrimSpace(name)
	for i, n := range licenseNames {
		if n != "" && n == name {
			return License(i), true
		}
	}
	return LicenseUnknown, false
}

// OpenSourceLicenses lists the promotable licenses in candidate order.
func OpenSourceLicenses() []License {
	return []License{LicenseMIT, LicenseBSD, LicenseISC, LicenseApache, LicenseGPL}
}

// Options is the resolved configuration mapping. Every option is always
// bound; loaders overlay values on top of Default().
type Options struct {
	ProjectName        string
	ProjectSlug        string
	ProjectDescription string
	Author             string
	Email              string
	GitHubHandle       string

	GitHubActions Flag
	MkDocs        Flag
	PublishToPyPI Flag
	Dockerfile    Flag
	Codecov       Flag
	Devcontainer  Flag
	License       License

	licenseRaw string
}

// SetLicense binds the license option from its display name, remembering
// the raw text when it is not a known name.
func (o *Options) SetLicense(name string) {
	l, ok := ParseLicense(name)
	o.License = l
	if ok {
		o.licenseRaw = ""
		return
	}
	o.licenseRaw = strings.TrimSpace(name)
}

// LicenseName returns the bound license value as it would appear in a
// configuration file.
func (o Options) LicenseName() string {
	if o.License == LicenseUnknown {
		return o.licenseRaw
	}
	return o.License.String()
}
