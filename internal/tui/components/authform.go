package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ludo/internal/tui/styles"
)

// AuthMode selects between the sign-in and sign-up forms.
type AuthMode int

const (
	ModeSignIn AuthMode = iota
	ModeSignUp
)

// Credentials is a submitted auth form.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// AuthForm is the sign-in / sign-up input form.
type AuthForm struct {
	mode   AuthMode
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

// NewAuthForm creates a form in the given mode.
func NewAuthForm(mode AuthMode) *AuthForm {
	f := &AuthForm{mode: mode}

	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "> "
	username.CharLimit = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 72 // bcrypt input limit

	if mode == ModeSignUp {
		email := textinput.New()
		email.Placeholder = "email (optional)"
		email.Prompt = "> "
		email.CharLimit = 80
		f.inputs = []textinput.Model{username, email, password}
	} else {
		f.inputs = []textinput.Model{username, password}
	}
	return f
}

// Mode returns the form mode.
func (f *AuthForm) Mode() AuthMode {
	return f.mode
}

// Focus focuses the first input.
func (f *AuthForm) Focus() tea.Cmd {
	f.focus = 0
	return f.inputs[0].Focus()
}

// SetError shows an inline error and re-enables the form.
func (f *AuthForm) SetError(msg string) {
	f.errMsg = msg
	f.busy = false
}

// SetBusy disables input while a submission is in flight.
func (f *AuthForm) SetBusy() {
	f.busy = true
	f.errMsg = ""
}

// Update handles a key. It returns submitted credentials when the user
// confirms the last field.
func (f *AuthForm) Update(msg tea.KeyMsg) (tea.Cmd, *Credentials) {
	if f.busy {
		return nil, nil
	}

	switch msg.String() {
	case "tab", "down":
		return f.setFocus((f.focus + 1) % len(f.inputs)), nil
	case "shift+tab", "up":
		return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs)), nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			return f.setFocus(f.focus + 1), nil
		}
		creds := f.credentials()
		if creds.Username == "" || creds.Password == "" {
			f.errMsg = "username and password are required"
			return nil, nil
		}
		return nil, &creds
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, nil
}

func (f *AuthForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *AuthForm) credentials() Credentials {
	c := Credentials{Username: strings.TrimSpace(f.inputs[0].Value())}
	if f.mode == ModeSignUp {
		c.Email = strings.TrimSpace(f.inputs[1].Value())
		c.Password = f.inputs[2].Value()
	} else {
		c.Password = f.inputs[1].Value()
	}
	return c
}

// View renders the form.
func (f *AuthForm) View() string {
	var b strings.Builder

	title := "Sign In"
	hint := "No account yet? Press ctrl+s to sign up."
	if f.mode == ModeSignUp {
		title = "Sign Up"
		hint = "Already registered? Press ctrl+s to sign in."
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Username", "Password"}
	if f.mode == ModeSignUp {
		labels = []string{"Username", "Email", "Password"}
	}
	for i, input := range f.inputs {
		b.WriteString(styles.SubtitleStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if f.busy {
		b.WriteString(styles.DimStyle.Render("signing in..."))
		b.WriteString("\n")
	} else if f.errMsg != "" {
		b.WriteString(styles.ErrorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(hint))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("enter submit · esc back"))
	return b.String()
}
