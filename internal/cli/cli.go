package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/specialistvlad/goesproc/internal/app"
)

// exitCodeFailure is used for every invocation error.
const exitCodeFailure = 1

// modeValue backs --mode. Values other than the known mode names leave the
// mode untouched; the last one seen is kept for the diagnostic.
type modeValue struct {
	mode     *app.Mode
	rejected string
}

func (v *modeValue) String() string {
	if v.mode == nil {
		return ""
	}
	return v.mode.String()
}

func (v *modeValue) Set(s string) error {
	if m, ok := app.ParseMode(s); ok {
		*v.mode = m
		return nil
	}
	v.rejected = s
	return nil
}

func (v *modeValue) Type() string {
	return "mode"
}

// Parse processes the arguments following the invocation name. It returns
// the validated configuration together with the positional paths, in their
// original order; a boolean indicating that usage was printed to errW and
// the program should exit cleanly; or an *ExitError.
//
// Options and positional paths may be interspersed. "--" ends option
// scanning and everything after it is positional.
func Parse(name string, args []string, errW io.Writer) (*app.Config, []string, bool, error) {
	slog.Debug("CLI parser started.", "args", len(args))

	var (
		cfg  app.Config
		help bool
	)
	mode := &modeValue{mode: &cfg.Mode}

	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	flagSet.SetInterspersed(true)

	flagSet.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to configuration file")
	flagSet.VarP(mode, "mode", "m", "Process stream of VCDU packets or pre-assembled LRIT files")
	flagSet.BoolVar(&help, "help", false, "Show this help")

	if err := flagSet.Parse(args); err != nil {
		if help || helpRequested(flagSet, args) {
			slog.Debug("Help requested alongside an invalid option.")
			printUsage(errW, name)
			return nil, nil, true, nil
		}
		// pflag answers an undefined -h with ErrHelp; goesproc has no -h.
		if errors.Is(err, pflag.ErrHelp) {
			err = errors.New("unknown shorthand flag: 'h'")
		}
		return nil, nil, false, &ExitError{
			Code:    exitCodeFailure,
			Message: diagnostic(name, fmt.Sprintf("%v: %v", ErrInvalidOption, err)),
			Err:     ErrInvalidOption,
		}
	}
	slog.Debug("Arguments parsed successfully.")

	if help {
		printUsage(errW, name)
		return nil, nil, true, nil
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, app.ErrNoMode) && mode.rejected != "" {
			reason = fmt.Sprintf("%s (unsupported mode %q)", reason, mode.rejected)
		}
		return nil, nil, false, &ExitError{
			Code:    exitCodeFailure,
			Message: diagnostic(name, reason),
			Err:     err,
		}
	}

	paths := flagSet.Args()
	slog.Debug("CLI parser finished successfully.", "config", config.ConfigPath, "mode", config.Mode.String(), "paths", len(paths))
	return config, paths, false, nil
}

// helpRequested reports whether --help appears as an option token. Values
// of options that take one are skipped, and scanning stops at "--".
func helpRequested(flagSet *pflag.FlagSet, args []string) bool {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "--":
			return false
		case tok == "--help":
			return true
		case strings.HasPrefix(tok, "--") && !strings.Contains(tok, "="):
			if f := flagSet.Lookup(tok[2:]); f != nil && f.NoOptDefVal == "" {
				i++
			}
		case len(tok) == 2 && tok[0] == '-':
			if f := flagSet.ShorthandLookup(tok[1:]); f != nil && f.NoOptDefVal == "" {
				i++
			}
		}
	}
	return false
}
