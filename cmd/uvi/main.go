package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errNoCommand = errors.New("missing command (try `uvi help`)")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errNoCommand
	}
	switch args[0] {
	case "prune":
		return runPrune(args[1:], stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "options":
		return runOptions(args[1:], stdout, stderr)
	case "init":
		return runInit(args[1:], stdout, stderr)
	case "version", "-version", "--version":
		printVersion(stdout)
		return nil
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q (available: prune, check, options, init, version)", args[0])
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "uvi %s\n", version)
	fmt.Fprintf(w, "  commit: %s\n", commit)
	fmt.Fprintf(w, "  built:  %s\n", date)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, heredoc.Doc(`
		Usage: uvi <command> [flags]

		Commands:
		  prune     Remove unused artifacts from a generated project and resolve its LICENSE
		  check     Validate option values and the project name and slug
		  options   Print the resolved options
		  init      Write an options file holding the defaults
		  version   Show uvi version

		Run "uvi <command> -h" for command flags.
	`))
}

func writeLines(w io.Writer, lines ...string) {
	fmt.Fprint(w, strings.Join(lines, "\n")+"\n")
}
