package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// choiceList is the three-option sentence selector.
type choiceList struct {
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

func newChoiceList(options []string) choiceList {
	return choiceList{
		Options:     options,
		ChosenIndex: -1,
	}
}

// Update handles keyboard navigation and selection.
func (c choiceList) Update(msg tea.Msg) (choiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "1", "2", "3":
		c.Selected = int(kmsg.String()[0] - '1')
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// View renders the option list.
func (c choiceList) View() string {
	labels := []string{"A", "B", "C"}

	s := ""
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		switch {
		case c.Submitted && i == c.ChosenIndex:
			s += selectedStyle.Render(line) + "\n"
		case i == c.Selected && !c.Submitted:
			s += selectedStyle.Render(line) + "\n"
		default:
			s += bodyStyle.Render(line) + "\n"
		}
	}

	return s
}
