package main

import (
	"flag"
	"log"
	"os"

	"github.com/uvi-dev/uvi/internal/config"
	"github.com/uvi-dev/uvi/internal/options"
)

// sourceFlags are the option-source flags shared by every subcommand.
type sourceFlags struct {
	file    string
	envFile string
	noUser  bool
}

func (s *sourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.file, "config", "", "Options file (.yaml, .yml, .toml or .json)")
	fs.StringVar(&s.envFile, "env-file", "", "Dotenv file with UVI_<OPTION> overrides")
	fs.BoolVar(&s.noUser, "no-user-config", false, "Ignore the user config file")
}

func (s *sourceFlags) resolve() (options.Options, error) {
	src := options.Sources{
		File:    s.file,
		EnvFile: s.envFile,
		Getenv:  os.Getenv,
	}
	if !s.noUser {
		src.UserConfig = config.OptionsPath()
	}
	o, err := options.Resolve(src)
	if err != nil {
		return options.Options{}, err
	}
	if src.UserConfig != "" {
		if _, statErr := os.Stat(src.UserConfig); statErr == nil {
			log.Printf("using user config %s", src.UserConfig)
		}
	}
	return o, nil
}
