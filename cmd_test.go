package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/avahowell/passwdgen/pwgen"
)

// testSession returns a session that records clipboard writes instead of
// touching the system clipboard.
func testSession() (*session, *[]string) {
	var clipped []string
	s := newSession(pwgen.StandardDefaults())
	s.gen.Source = pwgen.NewSeededSource(1)
	s.clip = func(password string) error {
		clipped = append(clipped, password)
		return nil
	}
	return s, &clipped
}

func TestGenerateCommandLine(t *testing.T) {
	var out bytes.Buffer
	var clipped string
	clip := func(s string) error {
		clipped = s
		return nil
	}

	err := generate(options{Length: "20"}, pwgen.StandardDefaults(), &out, clip)
	if err != nil {
		t.Fatal(err)
	}
	password := strings.TrimSuffix(out.String(), "\n")
	if len(password) != 20 {
		t.Fatal("expected a 20 character password, got", password)
	}
	if clipped != password {
		t.Fatal("printed password was not copied to the clipboard")
	}

	out.Reset()
	if err := generate(options{}, pwgen.StandardDefaults(), &out, clip); err != nil {
		t.Fatal(err)
	}
	if len(strings.TrimSpace(out.String())) != pwgen.DefaultLength {
		t.Fatal("expected the default length without -l")
	}

	out.Reset()
	if err := generate(options{Length: "3", NoSpecials: true}, pwgen.StandardDefaults(), &out, clip); err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(out.String(), pwgen.Punctuation) {
		t.Fatal("-S produced a password with special characters")
	}
}

func TestGenerateCommandLineErrors(t *testing.T) {
	tests := []struct {
		opt         options
		expectedErr error
	}{
		{options{NoSpecials: true, Specials: "!"}, pwgen.ErrMutuallyExclusiveOptions},
		{options{NoSpecials: true, Specials: "abc", Length: "2"}, pwgen.ErrMutuallyExclusiveOptions},
		{options{Length: "3"}, pwgen.ErrLengthOutOfRange},
		{options{Length: "257"}, pwgen.ErrLengthOutOfRange},
		{options{Length: "long"}, pwgen.ErrLengthNotNumeric},
		{options{Specials: "abc"}, pwgen.ErrSpecialSetNotSubset},
	}
	for _, test := range tests {
		var out bytes.Buffer
		clipped := false
		err := generate(test.opt, pwgen.StandardDefaults(), &out, func(string) error {
			clipped = true
			return nil
		})
		if !errors.Is(err, test.expectedErr) {
			t.Fatalf("generate(%+v): got %v wanted %v", test.opt, err, test.expectedErr)
		}
		if out.Len() != 0 || clipped {
			t.Fatal("expected no output and no clipboard write on failure")
		}
	}
}

func TestGenerateCommandLineMessages(t *testing.T) {
	tests := []struct {
		opt     options
		message string
	}{
		{options{NoSpecials: true, Specials: "!"}, "-s and -S are mutually exclusive"},
		{options{Length: "3"}, "Must be an integer between 4 and 256"},
		{options{Length: "2", NoSpecials: true}, "Must be an integer between 3 and 256"},
		{options{Length: "long"}, "Must be an integer between 4 and 256"},
		{options{Specials: "abc"}, "Characters must be drawn from " + pwgen.Punctuation},
	}
	for _, test := range tests {
		var out bytes.Buffer
		err := generate(test.opt, pwgen.StandardDefaults(), &out, func(string) error { return nil })
		if err == nil || !strings.Contains(err.Error(), test.message) {
			t.Fatalf("generate(%+v): got %v wanted a message containing %q", test.opt, err, test.message)
		}
	}
}

func TestGenerateCommandLineClipFailure(t *testing.T) {
	var out bytes.Buffer
	err := generate(options{Length: "12"}, pwgen.StandardDefaults(), &out, func(string) error {
		return errors.New("no clipboard")
	})
	if err != nil {
		t.Fatal("a clipboard failure should not fail generation:", err)
	}
	if len(strings.TrimSpace(out.String())) != 12 {
		t.Fatal("expected the password to be printed")
	}
}

func TestGenCmd(t *testing.T) {
	s, clipped := testSession()
	gencmd := gen(s)

	if _, err := gencmd([]string{"extra"}); err == nil {
		t.Fatal("expected gen cmd to fail with args")
	}
	res, err := gencmd([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if len(*clipped) != 1 || len((*clipped)[0]) != pwgen.DefaultLength {
		t.Fatal("gen cmd did not clip a default length password")
	}
	if !strings.HasPrefix(res, (*clipped)[0]+"\n") {
		t.Fatal("gen cmd did not print the password, got", res)
	}
}

func TestLengthCmd(t *testing.T) {
	s, clipped := testSession()
	lengthcmd := length(s)

	if _, err := lengthcmd([]string{}); err == nil {
		t.Fatal("expected length cmd to fail with no args")
	}
	res, err := lengthcmd([]string{"16"})
	if err != nil {
		t.Fatal(err)
	}
	if res != "length set to 16\n" {
		t.Fatal("length returned the incorrect result:", res)
	}
	if _, err := lengthcmd([]string{"3"}); !errors.Is(err, pwgen.ErrLengthOutOfRange) {
		t.Fatal("expected length 3 to be rejected with specials on, got", err)
	}
	if s.prefs.Length() != 16 {
		t.Fatal("a rejected length changed the preferences")
	}

	if _, err := gen(s)([]string{}); err != nil {
		t.Fatal(err)
	}
	if len((*clipped)[0]) != 16 {
		t.Fatal("gen did not use the configured length")
	}
}

func TestSpecialsCmds(t *testing.T) {
	s, clipped := testSession()

	if _, err := specials(s)([]string{"abc"}); !errors.Is(err, pwgen.ErrSpecialSetNotSubset) {
		t.Fatal("expected ErrSpecialSetNotSubset, got", err)
	}
	res, err := specials(s)([]string{"!!@@"})
	if err != nil {
		t.Fatal(err)
	}
	if res != "special characters set to !@\n" {
		t.Fatal("specials returned the incorrect result:", res)
	}
	if _, err := gen(s)([]string{}); err != nil {
		t.Fatal(err)
	}
	for _, c := range (*clipped)[0] {
		if strings.ContainsRune(pwgen.Punctuation, c) && c != '!' && c != '@' {
			t.Fatal("password used a special character outside the override:", (*clipped)[0])
		}
	}

	if res, _ := nospecials(s)(nil); res != "special characters disabled\n" {
		t.Fatal("nospecials did not disable specials:", res)
	}
	if _, err := gen(s)([]string{}); err != nil {
		t.Fatal("generation with stored override and specials disabled failed:", err)
	}
	if strings.ContainsAny((*clipped)[1], pwgen.Punctuation) {
		t.Fatal("password contains specials while they are disabled")
	}
	if res, _ := nospecials(s)(nil); res != "special characters enabled\n" {
		t.Fatal("nospecials did not enable specials:", res)
	}

	if _, err := defaults(s)(nil); err != nil {
		t.Fatal(err)
	}
	if s.prefs.Specials() != "" {
		t.Fatal("defaults did not drop the override")
	}
}

func TestShowCmd(t *testing.T) {
	s, _ := testSession()
	res, err := show(s)(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"length", "64", "avoid specials", "false", "4-256"} {
		if !strings.Contains(res, want) {
			t.Fatalf("show output missing %q:\n%v", want, res)
		}
	}
}

func TestUIMenu(t *testing.T) {
	s, clipped := testSession()
	m := newPasswdgenUI(s)

	m.inputHandler("g")
	if len(*clipped) != 1 || m.alertTitle != "New password generated" {
		t.Fatal("g did not generate a password")
	}
	if !strings.Contains(m.alertText, (*clipped)[0]) {
		t.Fatal("alert does not show the password")
	}
	m.inputHandler("x") // dismiss
	if m.alertTitle != "" {
		t.Fatal("alert was not dismissed")
	}

	m.inputHandler("<down>")
	m.inputHandler("<enter>")
	if !s.prefs.NoSpecials() {
		t.Fatal("selecting avoid special characters did not toggle it")
	}
	if !strings.HasPrefix(m.menuItems()[1], "> [x]") {
		t.Fatal("menu does not show the toggle state:", m.menuItems()[1])
	}

	m.inputHandler("q")
	if !m.quit {
		t.Fatal("q did not quit")
	}
}

func TestUILengthDialog(t *testing.T) {
	s, _ := testSession()
	m := newPasswdgenUI(s)

	m.inputHandler("l")
	if m.dialogKind != lengthDialog || m.dialogInput != "64" {
		t.Fatal("l did not open the length dialog")
	}
	m.inputHandler("C-8")
	m.inputHandler("C-8")
	m.inputHandler("2")
	m.inputHandler("<enter>")
	if m.alertTitle != "Invalid length setting" {
		t.Fatal("expected an invalid length alert")
	}
	if s.prefs.Length() != 64 {
		t.Fatal("an invalid length changed the preferences")
	}
	m.inputHandler("x")

	m.inputHandler("l")
	m.inputHandler("C-8")
	m.inputHandler("C-8")
	m.inputHandler("3")
	m.inputHandler("2")
	m.inputHandler("<enter>")
	if s.prefs.Length() != 32 || m.alertTitle != "" {
		t.Fatal("valid length was not stored")
	}

	m.inputHandler("l")
	m.inputHandler("9")
	m.inputHandler("<escape>")
	if s.prefs.Length() != 32 || m.dialogKind != noDialog {
		t.Fatal("escape did not cancel the dialog")
	}
}

func TestUISpecialsDialog(t *testing.T) {
	s, _ := testSession()
	m := newPasswdgenUI(s)

	m.inputHandler("s")
	if m.dialogKind != specialsDialog || m.dialogInput != pwgen.Punctuation {
		t.Fatal("s did not open the specials dialog with the defaults")
	}
	m.dialogInput = ""
	m.inputHandler("a")
	m.inputHandler("<enter>")
	if m.alertTitle != "Invalid special character setting" || s.prefs.Specials() != "" {
		t.Fatal("invalid specials were not rejected")
	}
	m.inputHandler("x")

	m.inputHandler("s")
	m.dialogInput = ""
	m.inputHandler("#")
	m.inputHandler("#")
	m.inputHandler("<enter>")
	if s.prefs.Specials() != "#" {
		t.Fatal("valid specials were not stored, got", s.prefs.Specials())
	}

	m.inputHandler("s")
	m.inputHandler("<tab>")
	if s.prefs.Specials() != "" || m.dialogKind != noDialog {
		t.Fatal("tab did not restore the default specials")
	}
}
