package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// current room, visible exits, battery, and turn count.
func (m Model) renderStatusBar() string {
	s := m.game.State()
	w := m.game.World()

	roomTitle := "Nowhere"
	var dirs []string
	if room := w.Room(s.CurrentRoomID); room != nil {
		roomTitle = room.Title
		for dir, exit := range room.Exits {
			if !exit.Hidden {
				dirs = append(dirs, dir)
			}
		}
		sort.Strings(dirs)
	}

	left := fmt.Sprintf(" %s | Exits: %s", roomTitle, strings.Join(dirs, ","))

	battery := fmt.Sprintf("Bat:%d%%", s.Phone.Battery)
	if s.Phone.LightOn {
		battery += "*"
	}
	right := fmt.Sprintf("%s | T:%d ", battery, s.TurnCount)
	if s.Phone.Unread > 0 {
		right = fmt.Sprintf("Msg:%d | %s", s.Phone.Unread, right)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
