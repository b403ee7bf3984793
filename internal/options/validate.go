package options

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/uvi-dev/uvi/internal/errdef"
)

var (
	projectNameRE = regexp.MustCompile(`^[-a-zA-Z][-a-zA-Z0-9]+$`)
	projectSlugRE = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]+$`)
)

// Validate reports every pruning option whose value is outside its domain.
// The pruner itself never calls this; out-of-domain values only make it
// skip or fire rules according to their literal predicates.
func (o Options) Validate() error {
	var bad []string
	flags := []struct {
		key string
		val Flag
	}{
		{KeyGitHubActions, o.GitHubActions},
		{KeyMkDocs, o.MkDocs},
		{KeyPublishToPyPI, o.PublishToPyPI},
		{KeyDockerfile, o.Dockerfile},
		{KeyCodecov, o.Codecov},
		{KeyDevcontainer, o.Devcontainer},
	}
	for _, f := range flags {
		if !f.val.Valid() {
			bad = append(bad, fmt.Sprintf("%s=%q (want y or n)", f.key, string(f.val)))
		}
	}
	if o.License == LicenseUnknown {
		bad = append(bad, fmt.Sprintf("%s=%q (want one of: %s)", KeyLicense, o.licenseRaw, licenseChoices()))
	}
	if len(bad) > 0 {
		return errdef.New(errdef.CodeValidation, "invalid options: %s", strings.Join(bad, "; "))
	}
	return nil
}

// CheckNames validates the project name and slug the way the template's
// pre-generation hook does.
func (o Options) CheckNames() error {
	if !projectNameRE.MatchString(o.ProjectName) {
		return errdef.New(
			errdef.CodeValidation,
			"project name %q is not a valid Python package name; use - instead of _",
			o.ProjectName,
		)
	}
	if !projectSlugRE.MatchString(o.ProjectSlug) {
		return errdef.New(
			errdef.CodeValidation,
			"project slug %q is not a valid Python module name; use _ instead of -",
			o.ProjectSlug,
		)
	}
	return nil
}

func licenseChoices() string {
	names := make([]string, 0, len(licenseNames))
	for _, n := range licenseNames {
		if n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}
