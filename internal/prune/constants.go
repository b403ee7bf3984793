package prune

// Paths of the optional artifacts, relative to the tree root.
const (
	pathCIDir           = ".github"
	pathReleaseWorkflow = ".github/workflows/on-release-main.yml"
	pathDocsDir         = "docs"
	pathMkDocsConfig    = "mkdocs.yml"
	pathDockerfile      = "Dockerfile"
	pathCodecovConfig   = "codecov.yaml"
	pathCodecovWorkflow = ".github/workflows/validate-codecov-config.yml"
	pathDevcontainerDir = ".devcontainer"
	pathLicense         = "LICENSE"
	pathLicenseMIT      = "LICENSE_MIT"
	pathLicenseBSD      = "LICENSE_BSD"
	pathLicenseISC      = "LICENSE_ISC"
	pathLicenseApache   = "LICENSE_APACHE"
	pathLicenseGPL      = "LICENSE_GPL"
)

const tracerName = "github.com/uvi-dev/uvi/internal/prune"
