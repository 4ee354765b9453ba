package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jhunt/go-cli"
	"github.com/jhunt/go-log"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/avahowell/passwdgen/config"
	"github.com/avahowell/passwdgen/pwgen"
	"github.com/avahowell/passwdgen/secureclip"
)

var Version = ""

type options struct {
	Help    bool `cli:"-h, --help"`
	Version bool `cli:"-v, --version"`
	Debug   bool `cli:"-d, --debug"`

	Length     string `cli:"-l, --length"`
	NoSpecials bool   `cli:"-S, --no-special-chars"`
	Specials   string `cli:"-s, --special-chars"`
	Config     string `cli:"-c, --config"`

	Interactive bool `cli:"-i, --interactive"`
	App         bool `cli:"-a, --app"`
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

func usage(d pwgen.Defaults) {
	fmt.Fprintf(os.Stderr, "passwdgen - generate a random password\n\n")
	fmt.Fprintf(os.Stderr, "Always includes lowercase and uppercase letters and digits. Includes\n")
	fmt.Fprintf(os.Stderr, "special characters by default, drawing from [%v].\n", d.Specials)
	fmt.Fprintf(os.Stderr, "The password is printed and saved to the clipboard.\n\n")
	fmt.Fprintf(os.Stderr, "Options\n")
	fmt.Fprintf(os.Stderr, "  -h, --help              Show this help screen.\n")
	fmt.Fprintf(os.Stderr, "  -v, --version           Display the passwdgen version.\n")
	fmt.Fprintf(os.Stderr, "  -d, --debug             Print debug statements.\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  -l, --length N          Password length, between %v and %v (default %v).\n", pwgen.MinLength(false), d.MaxLength, d.Length)
	fmt.Fprintf(os.Stderr, "  -S, --no-special-chars  Do not use any special characters.\n")
	fmt.Fprintf(os.Stderr, "  -s, --special-chars S   Only use the special characters in S.\n")
	fmt.Fprintf(os.Stderr, "  -c, --config FILE       Read default settings from a YAML file.\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  -i, --interactive       Start an interactive prompt.\n")
	fmt.Fprintf(os.Stderr, "  -a, --app               Start the terminal app.\n")
}

// configFromOptions turns the command line settings into a generation
// request. Only the length text is converted here; the Generator validates
// the request.
func configFromOptions(opt options, d pwgen.Defaults) (pwgen.Config, error) {
	cfg := pwgen.Config{
		Length:     d.Length,
		NoSpecials: opt.NoSpecials,
		Specials:   opt.Specials,
	}
	if opt.Length != "" {
		length, err := strconv.Atoi(strings.TrimSpace(opt.Length))
		if err != nil {
			return cfg, fmt.Errorf("Length given is invalid. Must be an integer between %v and %v. %w",
				pwgen.MinLength(opt.NoSpecials), d.MaxLength, pwgen.ErrLengthNotNumeric)
		}
		cfg.Length = length
	}
	return cfg, nil
}

// explain wraps a Generator error with the message shown on the command line.
func explain(err error, d pwgen.Defaults) error {
	var lerr *pwgen.LengthError
	switch {
	case errors.Is(err, pwgen.ErrMutuallyExclusiveOptions):
		return fmt.Errorf("-s and -S are mutually exclusive: %w", err)
	case errors.As(err, &lerr):
		return fmt.Errorf("Length given is invalid. Must be an integer between %v and %v. %w", lerr.Min, lerr.Max, err)
	case errors.Is(err, pwgen.ErrSpecialSetNotSubset), errors.Is(err, pwgen.ErrEmptySpecialSet):
		return fmt.Errorf("Special chars given are invalid. Characters must be drawn from %v. %w", d.Specials, err)
	}
	return err
}

// generate runs a one-shot generation: the password is written to `out` and
// handed to `clip`. Nothing is written unless every check passes.
func generate(opt options, d pwgen.Defaults, out io.Writer, clip func(string) error) error {
	cfg, err := configFromOptions(opt, d)
	if err != nil {
		return err
	}
	password, err := pwgen.New(d).Generate(cfg)
	if err != nil {
		return explain(err, d)
	}

	fmt.Fprintln(out, password)
	if err := clip(password); err != nil {
		log.Warnf("could not copy password to clipboard: %s", err)
		return nil
	}
	log.Debugf("new password saved to clipboard")
	return nil
}

func main() {
	var opt options
	_, args, err := cli.Parse(&opt)
	if err != nil {
		die(err)
	}
	if len(args) != 0 {
		die(fmt.Errorf("extra arguments found: %v", args))
	}

	level := "warning"
	if opt.Debug {
		level = "debug"
	}
	log.SetupLogging(log.LogConfig{Type: "console", Level: level})

	d, err := config.Load(opt.Config)
	if err != nil {
		die(err)
	}

	if opt.Help {
		usage(d)
		os.Exit(0)
	}
	if opt.Version {
		if Version == "" || Version == "dev" {
			fmt.Fprintf(os.Stderr, "passwdgen (development)\n")
		} else {
			fmt.Fprintf(os.Stderr, "passwdgen v%s\n", Version)
		}
		os.Exit(0)
	}

	if opt.Interactive && opt.App {
		die(errors.New("-i and -a are mutually exclusive"))
	}
	if opt.App {
		if !terminal.IsTerminal(int(os.Stdout.Fd())) {
			die(errors.New("the terminal app needs an interactive terminal"))
		}
		if err := runUI(newSession(d)); err != nil {
			die(err)
		}
		return
	}
	if opt.Interactive {
		if err := startRepl(newSession(d)); err != nil {
			die(err)
		}
		return
	}

	if err := generate(opt, d, os.Stdout, secureclip.Copy); err != nil {
		die(err)
	}
}
