package main

import (
	"fmt"

	"github.com/jhunt/go-log"

	"github.com/avahowell/passwdgen/pwgen"
	"github.com/avahowell/passwdgen/secureclip"

	ui "github.com/gizak/termui"
)

const (
	menuGenerate = iota
	menuAvoidSpecials
	menuLength
	menuSpecials
)

type dialogKind int

const (
	noDialog dialogKind = iota
	lengthDialog
	specialsDialog
)

type passwdgenUI struct {
	s           *session
	selectedIdx int
	menu        *ui.List
	dialog      *ui.Par
	alert       *ui.Par
	dialogKind  dialogKind
	dialogInput string
	alertTitle  string
	alertText   string
	quit        bool
}

func newPasswdgenUI(s *session) *passwdgenUI {
	menu := ui.NewList()
	menu.ItemFgColor = ui.ColorYellow
	menu.BorderLabel = "PasswdGen"
	menu.Height = 6

	dialog := ui.NewPar("")
	dialog.Float = ui.AlignCenter
	dialog.Height = 5
	dialog.Width = 60

	alert := ui.NewPar("")
	alert.Float = ui.AlignCenter
	alert.BorderFg = ui.ColorCyan
	alert.Height = 7
	alert.Width = 70

	m := &passwdgenUI{
		s:      s,
		menu:   menu,
		dialog: dialog,
		alert:  alert,
	}
	m.menu.Items = m.menuItems()
	return m
}

func (m *passwdgenUI) menuItems() []string {
	check := "[ ]"
	if m.s.prefs.NoSpecials() {
		check = "[x]"
	}
	items := []string{
		"Generate password",
		check + " Avoid special characters",
		fmt.Sprintf("Configure password length (%v)", m.s.prefs.Length()),
		"Configure special characters",
	}
	items[m.selectedIdx] = "> " + items[m.selectedIdx] + " <"
	return items
}

func (m *passwdgenUI) showAlert(title, text string) {
	m.alertTitle = title
	m.alertText = text
}

func (m *passwdgenUI) generate() {
	password, err := m.s.gen.Generate(m.s.prefs.Config())
	if err != nil {
		m.showAlert("Could not generate password", err.Error())
		return
	}
	if err := m.s.clip(password); err != nil {
		m.showAlert("New password generated", fmt.Sprintf("New password\n%v\ncould not be copied: %v", password, err))
		return
	}
	m.showAlert("New password generated", fmt.Sprintf("New password\n%v\ncopied to clipboard!", password))
}

func (m *passwdgenUI) openDialog(kind dialogKind) {
	m.dialogKind = kind
	switch kind {
	case lengthDialog:
		m.dialogInput = fmt.Sprint(m.s.prefs.Length())
	case specialsDialog:
		m.dialogInput = m.s.prefs.Specials()
		if m.dialogInput == "" {
			m.dialogInput = m.s.prefs.Defaults().Specials
		}
	}
}

func (m *passwdgenUI) applyDialog() {
	kind := m.dialogKind
	m.dialogKind = noDialog
	switch kind {
	case lengthDialog:
		if err := m.s.prefs.SetLength(m.dialogInput); err != nil {
			log.Debugf("ui: rejected length %q: %s", m.dialogInput, err)
			m.showAlert("Invalid length setting", fmt.Sprintf("Invalid length: %v. Must be a number between %v and %v.",
				m.dialogInput, pwgen.MinLength(m.s.prefs.NoSpecials()), m.s.prefs.Defaults().MaxLength))
		}
	case specialsDialog:
		if err := m.s.prefs.SetSpecials(m.dialogInput); err != nil {
			log.Debugf("ui: rejected specials %q: %s", m.dialogInput, err)
			m.showAlert("Invalid special character setting", fmt.Sprintf("Invalid specified special chars: [%v]. Special characters must be nonempty, and be a subset of the default specials, which are [%v].",
				m.dialogInput, m.s.prefs.Defaults().Specials))
		}
	}
}

func (m *passwdgenUI) dialogInputHandler(inputKey string) {
	switch inputKey {
	case "<escape>":
		m.dialogKind = noDialog
	case "<enter>":
		m.applyDialog()
	case "<tab>":
		if m.dialogKind == specialsDialog {
			m.s.prefs.UseDefaultSpecials()
			m.dialogKind = noDialog
		}
	case "C-8":
		if len(m.dialogInput) > 0 {
			m.dialogInput = m.dialogInput[:len(m.dialogInput)-1]
		}
	case "<space>":
		m.dialogInput += " "
	default:
		// named keys such as <left> are not text
		if len(inputKey) == 1 {
			m.dialogInput += inputKey
		}
	}
}

func (m *passwdgenUI) activate(item int) {
	switch item {
	case menuGenerate:
		m.generate()
	case menuAvoidSpecials:
		m.s.prefs.ToggleSpecials()
	case menuLength:
		m.openDialog(lengthDialog)
	case menuSpecials:
		m.openDialog(specialsDialog)
	}
}

func (m *passwdgenUI) inputHandler(inputKey string) {
	log.Debugf("ui: key %v", inputKey)
	if m.alertTitle != "" {
		m.alertTitle, m.alertText = "", ""
		return
	}
	if m.dialogKind != noDialog {
		m.dialogInputHandler(inputKey)
		return
	}

	switch inputKey {
	case "<up>", "k":
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
	case "<down>", "j":
		if m.selectedIdx < menuSpecials {
			m.selectedIdx++
		}
	case "<enter>":
		m.activate(m.selectedIdx)
	case "g":
		m.activate(menuGenerate)
	case "t":
		m.activate(menuAvoidSpecials)
	case "l":
		m.activate(menuLength)
	case "s":
		m.activate(menuSpecials)
	case "q", "C-c":
		m.quit = true
	}
}

func (m *passwdgenUI) render() {
	m.menu.Items = m.menuItems()
	ui.Clear()
	ui.Render(ui.Body)
	switch m.dialogKind {
	case lengthDialog:
		m.dialog.BorderLabel = "Configure password length"
		m.dialog.Text = fmt.Sprintf("Choose length: %v\n[ enter ](fg-black,bg-white) OK [ esc ](fg-black,bg-white) Cancel", m.dialogInput)
		ui.Render(m.dialog)
	case specialsDialog:
		m.dialog.BorderLabel = "Configure special characters"
		m.dialog.Text = fmt.Sprintf("Choose which special characters are used: %v\n[ enter ](fg-black,bg-white) OK [ tab ](fg-black,bg-white) Use defaults [ esc ](fg-black,bg-white) Cancel", m.dialogInput)
		ui.Render(m.dialog)
	}
	if m.alertTitle != "" {
		m.alert.BorderLabel = m.alertTitle
		m.alert.Text = m.alertText
		ui.Render(m.alert)
	}
}

func runUI(s *session) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()
	defer secureclip.Clear()

	m := newPasswdgenUI(s)

	keys := ui.NewPar("[ enter ](fg-black,bg-white) Select [ g ](fg-black,bg-white) Generate [ t ](fg-black,bg-white) Specials on/off [ q ](fg-black,bg-white) Quit")
	keys.Height = 1
	keys.Border = false

	ui.Body.AddRows(
		ui.NewRow(
			ui.NewCol(12, 0, m.menu),
		),
		ui.NewRow(
			ui.NewCol(12, 0, keys),
		),
	)

	ui.Handle("/sys/kbd", func(e ui.Event) {
		m.inputHandler(e.Data.(ui.EvtKbd).KeyStr)
		if m.quit {
			ui.StopLoop()
			return
		}
		m.render()
	})
	ui.Handle("/sys/wnd/resize", func(ui.Event) {
		if ui.TermWidth() > 20 {
			ui.Body.Width = ui.TermWidth()
		}
		ui.Body.Align()
		m.render()
	})

	ui.Body.Align()
	m.render()
	ui.Loop()
	return nil
}
