package prompt

import (
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	scerrors "ngscaffold/internal/errors"
)

// TUI asks questions interactively in the terminal, one Bubbletea program
// per question.
type TUI struct {
	In  io.Reader
	Out io.Writer
}

// NewTUI returns a TUI prompter reading keys from in and drawing to out.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{In: in, Out: out}
}

func (t *TUI) Confirm(q Question) (bool, error) {
	m, err := t.run(newConfirmModel(q))
	if err != nil {
		return false, err
	}
	return m.yes, nil
}

func (t *TUI) Checkbox(q Question, options []Option) ([]string, error) {
	m, err := t.run(newCheckboxModel(q, options))
	if err != nil {
		return nil, err
	}
	return m.selected(), nil
}

func (t *TUI) Input(q Question) (string, error) {
	m, err := t.run(newInputModel(q))
	if err != nil {
		return "", err
	}
	return m.value(), nil
}

func (t *TUI) run(m model) (model, error) {
	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	adapter := &teaModelAdapter{m: m}
	if _, err := tea.NewProgram(adapter, opts...).Run(); err != nil {
		return m, scerrors.Wrap(scerrors.EInternal, "running prompt", err)
	}
	if adapter.m.aborted {
		return adapter.m, scerrors.New(scerrors.EPromptAborted, "prompt aborted")
	}
	return adapter.m, nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	if a.m.kind == kindInput {
		return textinput.Blink
	}
	return nil
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
