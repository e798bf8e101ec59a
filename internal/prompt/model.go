package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// kind selects which prompt the model renders.
type kind int

const (
	kindConfirm kind = iota
	kindCheckbox
	kindInput
)

// model is the Bubbletea model for a single question.
type model struct {
	kind     kind
	question Question

	// confirm
	yes bool

	// checkbox
	options []Option
	cursor  int

	// input
	input textinput.Model

	done    bool
	aborted bool
	width   int
}

func newConfirmModel(q Question) model {
	return model{kind: kindConfirm, question: q, yes: q.Default == "true", width: defaultWidth}
}

func newCheckboxModel(q Question, options []Option) model {
	opts := make([]Option, len(options))
	copy(opts, options)
	return model{kind: kindCheckbox, question: q, options: opts, width: defaultWidth}
}

func newInputModel(q Question) model {
	ti := textinput.New()
	ti.Placeholder = q.Default
	ti.Prompt = "> "
	ti.CharLimit = 214
	ti.Focus()
	return model{kind: kindInput, question: q, input: ti, width: defaultWidth}
}

// selected returns the checked option values in option order.
func (m model) selected() []string {
	var out []string
	for _, o := range m.options {
		if o.Checked {
			out = append(out, o.Value)
		}
	}
	return out
}

// value returns the text answer, or the default when nothing was typed.
func (m model) value() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.question.Default
}
