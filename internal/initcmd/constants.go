package initcmd

const (
	DefaultDir    = "."
	DefaultFormat = "yaml"
)

// optionsBase is the file name, without extension, of the written options file.
const optionsBase = "uvi"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	actionCreate    = "create"
	actionOverwrite = "overwrite"
)
