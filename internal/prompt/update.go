package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for a prompt model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	default:
		if m.kind == kindInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// HandleKeyMsg processes a key press for the active prompt kind.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	k := msg.String()
	switch k {
	case "ctrl+c", "esc":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	}

	switch m.kind {
	case kindConfirm:
		switch k {
		case "y", "Y":
			m.yes = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.yes = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.yes = !m.yes
		}

	case kindCheckbox:
		switch k {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case " ", "x":
			if len(m.options) > 0 {
				m.options[m.cursor].Checked = !m.options[m.cursor].Checked
			}
		case "a":
			all := true
			for _, o := range m.options {
				all = all && o.Checked
			}
			for i := range m.options {
				m.options[i].Checked = !all
			}
		}

	case kindInput:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	if msg.Width > 0 {
		m.width = msg.Width
	}
	return m, nil
}
