package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const defaultWidth = 80

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// wrapText wraps input text to lines no longer than maxWidth display cells.
// It wraps on word boundaries to avoid breaking words when possible.
func wrapText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var lineBuilder strings.Builder
		lineWidth := 0
		spaceWidth := runewidth.StringWidth(" ")
		for i, word := range words {
			wordWidth := runewidth.StringWidth(word)
			addedWidth := wordWidth
			if lineWidth > 0 {
				addedWidth += spaceWidth
			}
			if lineWidth > 0 && lineWidth+addedWidth > maxWidth {
				lines = append(lines, lineBuilder.String())
				lineBuilder.Reset()
				lineBuilder.WriteString(word)
				lineWidth = wordWidth
			} else {
				if lineWidth > 0 {
					lineBuilder.WriteString(" ")
					lineWidth += spaceWidth
				}
				lineBuilder.WriteString(word)
				lineWidth += wordWidth
			}
			if i == len(words)-1 {
				lines = append(lines, lineBuilder.String())
			}
		}
	}
	return strings.Join(lines, "\n")
}

// ModelView renders the prompt model's view as a string.
func ModelView(m model) string {
	title := questionStyle.Render("? ") + wrapText(m.question.Message, m.width-2)

	if m.done {
		if m.aborted {
			return title + "\n"
		}
		return title + " " + answerStyle.Render(answerText(m)) + "\n"
	}

	switch m.kind {
	case kindConfirm:
		return confirmView(title, m)
	case kindCheckbox:
		return checkboxView(title, m)
	default:
		return inputView(title, m)
	}
}

func answerText(m model) string {
	switch m.kind {
	case kindConfirm:
		if m.yes {
			return "Yes"
		}
		return "No"
	case kindCheckbox:
		var labels []string
		for _, o := range m.options {
			if o.Checked {
				labels = append(labels, o.Label)
			}
		}
		return strings.Join(labels, ", ")
	default:
		return m.value()
	}
}

func confirmView(title string, m model) string {
	hint := "(y/N)"
	if m.yes {
		hint = "(Y/n)"
	}
	return fmt.Sprintf("%s %s\n", title, hintStyle.Render(hint))
}

func checkboxView(title string, m model) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for i, o := range m.options {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("❯ ")
		}
		box := "◯"
		if o.Checked {
			box = answerStyle.Render("◉")
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, box, o.Label)
	}
	b.WriteString(hintStyle.Render("(space to toggle, a to toggle all, enter to confirm)"))
	b.WriteString("\n")
	return b.String()
}

func inputView(title string, m model) string {
	return fmt.Sprintf("%s\n%s\n", title, m.input.View())
}
