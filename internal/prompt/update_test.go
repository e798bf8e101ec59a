package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		m, _ = Update(m, key(k))
	}
	return m
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		name        string
		def         string
		keys        []string
		wantYes     bool
		wantAborted bool
	}{
		{"enter keeps default yes", "true", []string{"enter"}, true, false},
		{"enter keeps default no", "false", []string{"enter"}, false, false},
		{"y answers yes", "false", []string{"y"}, true, false},
		{"n answers no", "true", []string{"n"}, false, false},
		{"arrow toggles", "false", []string{"right", "enter"}, true, false},
		{"ctrl+c aborts", "true", []string{"ctrl+c"}, true, true},
		{"keys after answer are ignored", "false", []string{"y", "n"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newConfirmModel(Question{Message: "Continue?", Default: tt.def}), tt.keys...)
			assert.True(t, m.done)
			assert.Equal(t, tt.wantYes, m.yes)
			assert.Equal(t, tt.wantAborted, m.aborted)
		})
	}
}

func TestConfirmReturnsQuit(t *testing.T) {
	m := newConfirmModel(Question{Message: "Continue?"})
	_, cmd := Update(m, key("y"))
	if assert.NotNil(t, cmd) {
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestCheckboxKeys(t *testing.T) {
	options := []Option{
		{Value: "a", Label: "A", Checked: true},
		{Value: "b", Label: "B", Checked: true},
		{Value: "c", Label: "C", Checked: false},
	}

	m := press(newCheckboxModel(Question{Message: "Pick"}, options), "down", " ", "down", "down", " ", "enter")
	assert.True(t, m.done)
	assert.Equal(t, []string{"a", "c"}, m.selected())
	assert.True(t, options[1].Checked, "caller's options are not modified")

	m = press(newCheckboxModel(Question{Message: "Pick"}, options), "up", "a", "enter")
	assert.Equal(t, []string{"a", "b", "c"}, m.selected())

	m = press(newCheckboxModel(Question{Message: "Pick"}, options), "a", "a", "enter")
	assert.Nil(t, m.selected(), "toggling all twice clears every option once all are checked")
}

func TestInputKeys(t *testing.T) {
	m := press(newInputModel(Question{Message: "Name?", Default: "app"}), "enter")
	assert.Equal(t, "app", m.value())

	m = press(newInputModel(Question{Message: "Name?", Default: "app"}), "s", "h", "o", "p", "enter")
	assert.Equal(t, "shop", m.value())
}

func TestWindowResize(t *testing.T) {
	m, _ := Update(newConfirmModel(Question{}), tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, 40, m.width)
}

func TestModelView(t *testing.T) {
	m := newCheckboxModel(Question{Message: "Which modules?"}, []Option{
		{Value: "route", Label: "angular-route.js", Checked: true},
	})
	view := ModelView(m)
	assert.Contains(t, view, "Which modules?")
	assert.Contains(t, view, "angular-route.js")

	m = press(newConfirmModel(Question{Message: "Bootstrap?", Default: "true"}), "enter")
	assert.Contains(t, ModelView(m), "Yes")

	m = press(newConfirmModel(Question{Message: "Bootstrap?"}))
	assert.Contains(t, ModelView(m), "(y/N)")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 20, "short"},
		{"one two three four", 9, "one two\nthree\nfour"},
		{"averyveryverylongword tail", 5, "averyveryverylongword\ntail"},
		{"para one\n\npara two", 0, "para one\n\npara two"},
		{"日本語 テキスト", 7, "日本語\nテキスト"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wrapText(tt.in, tt.width), "%q at %d", tt.in, tt.width)
	}
}
