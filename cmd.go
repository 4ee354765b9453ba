package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/avahowell/passwdgen/prefs"
	"github.com/avahowell/passwdgen/pwgen"
	"github.com/avahowell/passwdgen/repl"
	"github.com/avahowell/passwdgen/secureclip"
)

// session is the state shared by the interactive commands.
type session struct {
	gen   *pwgen.Generator
	prefs *prefs.Preferences
	clip  func(string) error
}

func newSession(d pwgen.Defaults) *session {
	return &session{
		gen:   pwgen.New(d),
		prefs: prefs.New(d),
		clip:  secureclip.Clip,
	}
}

var (
	genCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "gen",
			Action: gen(s),
			Usage:  "gen: generate a password with the current settings and copy it to the clipboard",
		}
	}

	nospecialsCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "nospecials",
			Action: nospecials(s),
			Usage:  "nospecials: toggle whether special characters are avoided",
		}
	}

	lengthCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "length",
			Action: length(s),
			Usage:  "length [n]: set the password length",
		}
	}

	specialsCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "specials",
			Action: specials(s),
			Usage:  "specials [chars]: draw special characters only from [chars]. Quote [chars] if it contains spaces or shell characters.",
		}
	}

	defaultsCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "defaults",
			Action: defaults(s),
			Usage:  "defaults: use the default special characters again",
		}
	}

	showCmd = func(s *session) repl.Command {
		return repl.Command{
			Name:   "show",
			Action: show(s),
			Usage:  "show: show the current settings",
		}
	}
)

func gen(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 0 {
			return "", fmt.Errorf("gen takes no arguments. See help for usage.")
		}
		password, err := s.gen.Generate(s.prefs.Config())
		if err != nil {
			return "", err
		}
		if err := s.clip(password); err != nil {
			return "", fmt.Errorf("generated password could not be copied: %w", err)
		}
		return fmt.Sprintf("%v\ncopied to clipboard, will clear in %v\n", password, secureclip.Timeout()), nil
	}
}

func nospecials(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if s.prefs.ToggleSpecials() {
			return "special characters disabled\n", nil
		}
		return "special characters enabled\n", nil
	}
}

func length(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("length requires 1 argument. See help for usage.")
		}
		if err := s.prefs.SetLength(args[0]); err != nil {
			return "", fmt.Errorf("invalid length %v. Must be a number between %v and %v: %w",
				args[0], pwgen.MinLength(s.prefs.NoSpecials()), s.prefs.Defaults().MaxLength, err)
		}
		return fmt.Sprintf("length set to %v\n", s.prefs.Length()), nil
	}
}

func specials(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("specials requires 1 argument. See help for usage.")
		}
		if err := s.prefs.SetSpecials(args[0]); err != nil {
			return "", fmt.Errorf("invalid special characters [%v]. They must be nonempty and a subset of [%v]: %w",
				args[0], s.prefs.Defaults().Specials, err)
		}
		return fmt.Sprintf("special characters set to %v\n", s.prefs.Specials()), nil
	}
}

func defaults(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		s.prefs.UseDefaultSpecials()
		return fmt.Sprintf("special characters set to %v\n", s.prefs.Defaults().Specials), nil
	}
}

func show(s *session) repl.ActionFunc {
	return func(args []string) (string, error) {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Setting", "Value"})
		t.AppendRows([]table.Row{
			{"length", s.prefs.Length()},
			{"avoid specials", strconv.FormatBool(s.prefs.NoSpecials())},
			{"specials", s.prefs.ActiveSpecials()},
			{"allowed lengths", fmt.Sprintf("%v-%v", pwgen.MinLength(s.prefs.NoSpecials()), s.prefs.Defaults().MaxLength)},
		})
		return t.Render() + "\n", nil
	}
}

func startRepl(s *session) error {
	r := repl.New("passwdgen > ")
	r.AddCommand(genCmd(s))
	r.AddCommand(nospecialsCmd(s))
	r.AddCommand(lengthCmd(s))
	r.AddCommand(specialsCmd(s))
	r.AddCommand(defaultsCmd(s))
	r.AddCommand(showCmd(s))
	r.OnStop(func() {
		secureclip.Clear()
	})
	return r.Loop()
}
