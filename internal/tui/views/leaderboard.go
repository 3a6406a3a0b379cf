package views

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoaliados/internal/leaderboard"
	"ecoaliados/internal/mission"
	"ecoaliados/internal/tui/styles"
	"ecoaliados/pkg/models"
)

// LeaderboardModel shows the user ranked against simulated neighbors
type LeaderboardModel struct {
	generator *leaderboard.Generator
	entries   []models.LeaderboardEntry
	profile   models.Profile
	stats     models.ProfileStats
	loaded    bool
	width     int
	height    int
}

// NewLeaderboardModel creates the leaderboard view
func NewLeaderboardModel(generator *leaderboard.Generator) LeaderboardModel {
	if generator == nil {
		generator = leaderboard.New(nil)
	}
	return LeaderboardModel{generator: generator}
}

// SetSize updates the view dimensions
func (m *LeaderboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the leaderboard
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DataRefreshMsg:
		m.profile = msg.Profile
		m.stats = mission.Stats(msg.Missions, msg.Profile, time.Now())
		m.entries = m.generator.Generate(m.profile, m.stats)
		m.loaded = true
	case tea.KeyMsg:
		if msg.String() == "g" && m.loaded {
			m.entries = m.generator.Generate(m.profile, m.stats)
			return m, func() tea.Msg {
				return StatusMsg{Text: "Shuffled the neighborhood", IsErr: false}
			}
		}
	}
	return m, nil
}

// View renders the leaderboard
func (m LeaderboardModel) View() string {
	title := styles.TitleStyle.Render("🏆 Leaderboard")

	if len(m.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title, "",
			styles.HelpStyle.Render("No data yet."))
	}

	rows := make([]string, 0, len(m.entries)+1)
	header := fmt.Sprintf("  %-3s %-20s %8s %9s %7s", "#", "Name", "Kg", "Missions", "Streak")
	rows = append(rows, styles.MetaKeyStyle.Render(header))

	for i, e := range m.entries {
		medal := "  "
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		line := fmt.Sprintf("%s %-3d %-20s %8s %9d %7d",
			medal, i+1,
			styles.Truncate(e.Profile.Avatar+" "+e.Profile.Name, 20),
			e.TotalKg, e.CompletedMissions, e.CurrentStreak)
		if e.IsCurrentUser {
			rows = append(rows, styles.ListItemSelectedStyle.Render(line))
		} else {
			rows = append(rows, styles.ListItemStyle.Render(line))
		}
	}

	position := leaderboard.UserPosition(m.entries)
	footer := ""
	if position > 0 {
		footer = styles.InfoStyle.Render(
			fmt.Sprintf("You are #%d of %d this week", position, len(m.entries)))
	} else {
		footer = styles.HelpStyle.Render("Keep reporting to crack the top 10!")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title, "",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		footer,
		styles.HelpStyle.Render("g shuffle"),
	)
}
