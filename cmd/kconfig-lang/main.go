// Command kconfig-lang selects the Chinese or English variant of main/Kconfig.projbuild
// of an ESP-IDF project, to be run before the build.
//
//	kconfig-lang zh
//	kconfig-lang --root path/to/project en
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	arg "github.com/alexflint/go-arg"

	"github.com/Pix4D/kconfig-lang/kconfiglang"
)

const program = "kconfig-lang"

// Exit statuses used only with --strict. Without it, every anticipated failure exits 0
// and is reported only by the printed message, since callers may rely on that.
const (
	exitUsage           = 2
	exitInvalidLanguage = 3
	exitSourceNotFound  = 4
)

type cliArgs struct {
	Root     string `help:"project root directory [default: searched upward from the working directory]"`
	Config   string `help:"INI file overriding the project layout"`
	Strict   bool   `help:"exit with a distinct non-zero status on failure"`
	LogLevel string `arg:"--log-level" default:"warn" help:"one of: debug, info, warn, error, silent"`
	Language string `arg:"positional,required" help:"zh or en, case-insensitive"`
}

func (cliArgs) Description() string {
	return "Overwrite main/Kconfig.projbuild with its Chinese (.zh) or English (.en) variant."
}

func (cliArgs) Version() string {
	return kconfiglang.BuildInfo()
}

func main() {
	code, err := run(os.Stdout, os.Stderr, os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run returns the exit status. A non-nil error is an unexpected failure.
func run(out io.Writer, logOut io.Writer, args []string) (int, error) {
	var cli cliArgs
	parser, err := arg.NewParser(arg.Config{Program: program}, &cli)
	if err != nil {
		return 1, fmt.Errorf("%s: %w", program, err)
	}
	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}
	// A lone argument that is not one of our flags is the language, also if it
	// looks like a flag ("-zh"): it will be rejected as an invalid language.
	if len(cmdArgs) == 1 && strings.HasPrefix(cmdArgs[0], "-") && !isOwnFlag(cmdArgs[0]) {
		cmdArgs = []string{"--", cmdArgs[0]}
	}
	parseErr := parser.Parse(cmdArgs)
	switch {
	case errors.Is(parseErr, arg.ErrHelp):
		parser.WriteHelp(out)
		return 0, nil
	case errors.Is(parseErr, arg.ErrVersion):
		fmt.Fprintln(out, kconfiglang.BuildInfo())
		return 0, nil
	}

	log, logErr := kconfiglang.MakeLog(logOut, cli.LogLevel)
	log = log.With("name", program)
	if parseErr == nil {
		parseErr = logErr
	}
	if parseErr != nil {
		log.Warn("usage", "error", parseErr)
		if _, err := fmt.Fprintf(out, "Usage: %s [%s]\n", program,
			kconfiglang.UsageChoices()); err != nil {
			return 1, err
		}
		return cli.exitCode(exitUsage), nil
	}
	log.Debug(kconfiglang.BuildInfo())

	layout := kconfiglang.DefaultLayout()
	if cli.Config != "" {
		if layout, err = kconfiglang.LoadLayout(cli.Config); err != nil {
			return 1, err
		}
	}
	root, err := resolveRoot(log, cli.Root, layout)
	if err != nil {
		return 1, err
	}
	log.Debug("started", "root", root, "layout", layout, "args", args)

	switcher := kconfiglang.NewSwitcher(root, layout, out, log)
	outcome, err := switcher.Switch(cli.Language)
	if err != nil {
		return 1, err
	}
	switch outcome {
	case kconfiglang.InvalidLanguage:
		return cli.exitCode(exitInvalidLanguage), nil
	case kconfiglang.SourceNotFound:
		return cli.exitCode(exitSourceNotFound), nil
	}
	return 0, nil
}

// isOwnFlag reports whether s names one of the flags of cliArgs or one of the flags
// added by go-arg.
func isOwnFlag(s string) bool {
	name, _, _ := strings.Cut(s, "=")
	switch name {
	case "--root", "--config", "--strict", "--log-level", "-h", "--help", "--version":
		return true
	}
	return false
}

func (cli cliArgs) exitCode(strictCode int) int {
	if cli.Strict {
		return strictCode
	}
	return 0
}

// resolveRoot returns the explicit root if given, otherwise it searches for the project
// root starting from the working directory, falling back to the working directory.
func resolveRoot(log *slog.Logger, explicit string, layout kconfiglang.Layout) (string, error) {
	if explicit != "" {
		fi, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("root: %w", err)
		}
		if !fi.IsDir() {
			return "", fmt.Errorf("root: %s is not a directory", explicit)
		}
		return filepath.Abs(explicit)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("root: %w", err)
	}
	root, err := kconfiglang.FindRoot(wd, layout)
	if err != nil {
		log.Info("using working directory as project root", "reason", err)
		return wd, nil
	}
	return root, nil
}
