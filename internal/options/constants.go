package options

const (
	KeyProjectName        = "project_name"
	KeyProjectSlug        = "project_slug"
	KeyProjectDescription = "project_description"
	KeyAuthor             = "author"
	KeyEmail              = "email"
	KeyGitHubHandle       = "author_github_handle"
	KeyGitHubActions      = "include_github_actions"
	KeyMkDocs             = "mkdocs"
	KeyPublishToPyPI      = "publish_to_pypi"
	KeyDockerfile         = "dockerfile"
	KeyCodecov            = "codecov"
	KeyDevcontainer       = "devcontainer"
	KeyLicense            = "open_source_license"
)

// Keys wrapping the mapping in replay files and user config files.
const (
	contextKeyReplay = "cookiecutter"
	contextKeyUser   = "default_context"
)

const envPrefix = "UVI_"

const (
	defaultProjectName  = "example-project"
	defaultProjectSlug  = "example_project"
	defaultDescription  = "This is a template repository for Python projects that use uv for their dependencies."
	defaultAuthor       = "Your Name"
	defaultEmail        = "your.email@example.com"
	defaultGitHubHandle = "your-github-handle"
)

// Default returns the template defaults.
func Default() Options {
	return Options{
		ProjectName:        defaultProjectName,
		ProjectSlug:        defaultProjectSlug,
		ProjectDescription: defaultDescription,
		Author:             defaultAuthor,
		Email:              defaultEmail,
		GitHubHandle:       defaultGitHubHandle,
		GitHubActions:      Yes,
		MkDocs:             Yes,
		PublishToPyPI:      Yes,
		Dockerfile:         Yes,
		Codecov:            Yes,
		Devcontainer:       Yes,
		License:            LicenseMIT,
	}
}

type field struct {
	key string
	get func(Options) string
	set func(*Options, string)
}

// fields binds each mapping key to its struct field, in the order used for
// listing and encoding.
var fields = []field{
	{KeyProjectName, func(o Options) string { return o.ProjectName }, func(o *Options, v string) { o.ProjectName = v }},
	{KeyProjectSlug, func(o Options) string { return o.ProjectSlug }, func(o *Options, v string) { o.ProjectSlug = v }},
	{KeyProjectDescription, func(o Options) string { return o.ProjectDescription }, func(o *Options, v string) { o.ProjectDescription = v }},
	{KeyAuthor, func(o Options) string { return o.Author }, func(o *Options, v string) { o.Author = v }},
	{KeyEmail, func(o Options) string { return o.Email }, func(o *Options, v string) { o.Email = v }},
	{KeyGitHubHandle, func(o Options) string { return o.GitHubHandle }, func(o *Options, v string) { o.GitHubHandle = v }},
	{KeyGitHubActions, func(o Options) string { return string(o.GitHubActions) }, func(o *Options, v string) { o.GitHubActions = flagOf(v) }},
	{KeyMkDocs, func(o Options) string { return string(o.MkDocs) }, func(o *Options, v string) { o.MkDocs = flagOf(v) }},
	{KeyPublishToPyPI, func(o Options) string { return string(o.PublishToPyPI) }, func(o *Options, v string) { o.PublishToPyPI = flagOf(v) }},
	{KeyDockerfile, func(o Options) string { return string(o.Dockerfile) }, func(o *Options, v string) { o.Dockerfile = flagOf(v) }},
	{KeyCodecov, func(o Options) string { return string(o.Codecov) }, func(o *Options, v string) { o.Codecov = flagOf(v) }},
	{KeyDevcontainer, func(o Options) string { return string(o.Devcontainer) }, func(o *Options, v string) { o.Devcontainer = flagOf(v) }},
	{KeyLicense, func(o Options) string { return o.LicenseName() }, func(o *Options, v string) { o.SetLicense(v) }},
}

// Keys returns every recognised option key in listing order.
func Keys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.key
	}
	return out
}

func lookupField(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// Map returns the bindings as plain strings keyed by option name.
func (o Options) Map() map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.key] = f.get(o)
	}
	return out
}
