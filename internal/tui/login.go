package tui

import "github.com/charmbracelet/bubbles/textinput"

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
	}
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[0].Focus()
	return loginModel{inputs: inputs}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Administrator login") + "\n\n"
	out += "Username: [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("Credentials are checked on the first edit or delete.") + "\n\n"
	out += helpStyle.Render("esc cancel  tab next field  enter log in")
	return out
}
