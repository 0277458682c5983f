// Package tui is the interactive terminal client for grammar practice.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/ayaka/kotoba/internal/persona"
	"github.com/ayaka/kotoba/internal/quiz"
)

type phase int

const (
	phaseCharacter phase = iota // picking a chat partner
	phaseInput                  // typing the opening message
	phaseLoading                // waiting for a round
	phaseQuiz                   // choosing a sentence
	phaseFeedback               // showing the grade result
)

type roundMsg struct {
	view *quiz.RoundView
	err  error
}

type gradeMsg struct {
	result *quiz.GradeResult
	err    error
}

// Model is the root Bubble Tea model for the practice loop.
type Model struct {
	engine    *quiz.Engine
	sessionID string

	phase      phase
	characters []persona.Character
	charIndex  int
	character  persona.Character

	input   textinput.Model
	spin    spinner.Model
	choices choiceList

	topic      string
	lastResult *quiz.GradeResult
	rounds     int
	correct    int

	width  int
	height int
	err    error
}

func newModel(engine *quiz.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Tell me something, like \"I love cooking\"..."
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	return Model{
		engine:     engine,
		sessionID:  uuid.NewString(),
		phase:      phaseCharacter,
		characters: persona.Characters(),
		input:      ti,
		spin:       sp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) startRoundCmd(message string) tea.Cmd {
	return func() tea.Msg {
		view, err := m.engine.StartOrContinueRound(context.Background(), m.sessionID, message, m.character.ID)
		return roundMsg{view: view, err: err}
	}
}

func (m Model) gradeCmd(choice int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.GradeSelection(context.Background(), m.sessionID, choice)
		return gradeMsg{result: result, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case roundMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.topic = msg.view.Topic.Name
		m.choices = newChoiceList(msg.view.Options[:])
		m.phase = phaseQuiz
		return m, nil

	case gradeMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.lastResult = msg.result
		m.rounds++
		if msg.result.Correct {
			m.correct++
		}
		m.phase = phaseFeedback
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.engine.EndSession(m.sessionID)
		return m, tea.Quit
	}

	switch m.phase {
	case phaseCharacter:
		switch key {
		case "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.charIndex > 0 {
				m.charIndex--
			}
		case "down", "j":
			if m.charIndex < len(m.characters)-1 {
				m.charIndex++
			}
		case "enter":
			m.character = m.characters[m.charIndex]
			m.phase = phaseInput
			return m, m.input.Focus()
		}
		return m, nil

	case phaseInput:
		if key == "enter" {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.phase = phaseLoading
			return m, tea.Batch(m.spin.Tick, m.startRoundCmd(text))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseQuiz:
		var cmd tea.Cmd
		m.choices, cmd = m.choices.Update(msg)
		if m.choices.Submitted {
			m.phase = phaseLoading
			return m, tea.Batch(m.spin.Tick, m.gradeCmd(m.choices.ChosenIndex))
		}
		return m, cmd

	case phaseFeedback:
		switch key {
		case "q", "esc":
			m.engine.EndSession(m.sessionID)
			return m, tea.Quit
		case "enter", " ":
			// The grade result already carries the next round.
			m.topic = m.lastResult.Next.Topic.Name
			m.choices = newChoiceList(m.lastResult.Next.Options[:])
			m.phase = phaseQuiz
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")

	var b strings.Builder
	b.WriteString(titleStyle.Render("Kotoba — grammar practice") + "\n\n")

	switch m.phase {
	case phaseCharacter:
		b.WriteString(bodyStyle.Render("Who do you want to practice with?") + "\n\n")
		for i, c := range m.characters {
			line := fmt.Sprintf("  %s — %s", c.Name, c.Tagline)
			if i == m.charIndex {
				line = "▸" + line[1:]
				b.WriteString(selectedStyle.Render(line) + "\n")
			} else {
				b.WriteString(bodyStyle.Render(line) + "\n")
			}
		}
		b.WriteString("\n" + hintStyle.Render("↑↓ navigate · enter select · q quit"))

	case phaseInput:
		b.WriteString(speakerStyle.Render(m.character.Name+": ") + bodyStyle.Render(m.character.Greeting) + "\n\n")
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(hintStyle.Render("enter send · ctrl+c quit"))

	case phaseLoading:
		b.WriteString(m.spin.View() + bodyStyle.Render(" thinking..."))

	case phaseQuiz:
		b.WriteString(bodyStyle.Render("Topic: ") + titleStyle.Render(m.topic) + "\n\n")
		b.WriteString(bodyStyle.Render("Which sentence is correct?") + "\n\n")
		b.WriteString(m.choices.View())
		b.WriteString("\n" + hintStyle.Render("↑↓/1-3 navigate · enter answer · ctrl+c quit"))

	case phaseFeedback:
		r := m.lastResult
		if r.Correct {
			b.WriteString(correctStyle.Render("✓ Correct!") + "\n")
			b.WriteString(speakerStyle.Render(m.character.Name+": ") + bodyStyle.Render(m.character.CorrectReply()) + "\n")
		} else {
			b.WriteString(incorrectStyle.Render("✗ Not quite.") + "\n")
			b.WriteString(speakerStyle.Render(m.character.Name+": ") + bodyStyle.Render(m.character.IncorrectReply()) + "\n\n")
			b.WriteString(bodyStyle.Render(r.Explanation) + "\n")
		}
		b.WriteString("\n" + hintStyle.Render(fmt.Sprintf("score %d/%d · enter next round · q quit", m.correct, m.rounds)))
	}

	v.SetContent(b.String())
	return v
}

// Run starts the interactive practice loop.
func Run(engine *quiz.Engine) error {
	p := tea.NewProgram(newModel(engine))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
