package options

import "strings"

// Sources lists where bindings come from. Later sources win:
// defaults, UserConfig, File, EnvFile, Getenv.
type Sources struct {
	// UserConfig is skipped silently when the file does not exist.
	UserConfig string
	File       string
	EnvFile    string
	Getenv     func(string) string
}

// Resolve builds the configuration mapping from src.
func Resolve(src Sources) (Options, error) {
	o, _, err := loadOptional(Default(), src.UserConfig)
	if err != nil {
		return Options{}, err
	}

	if strings.TrimSpace(src.File) != "" {
		if o, err = Load(o, src.File); err != nil {
			return Options{}, err
		}
	}

	var fileEnv func(string) string
	if strings.TrimSpace(src.EnvFile) != "" {
		if fileEnv, err = LoadEnvFile(src.EnvFile); err != nil {
			return Options{}, err
		}
	}

	return FromEnv(o, ChainEnv(src.Getenv, fileEnv)), nil
}
