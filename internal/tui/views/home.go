package views

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoaliados/internal/mission"
	"ecoaliados/internal/tui/styles"
	"ecoaliados/pkg/models"
)

// HomeModel is the dashboard view with the user's recycling stats
type HomeModel struct {
	missions []models.Mission
	profile  models.Profile
	width    int
	height   int
}

// NewHomeModel creates the dashboard view
func NewHomeModel() HomeModel {
	return HomeModel{}
}

// SetSize updates the view dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the dashboard
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DataRefreshMsg:
		m.missions = msg.Missions
		m.profile = msg.Profile
	}
	return m, nil
}

// View renders the dashboard
func (m HomeModel) View() string {
	stats := mission.Stats(m.missions, m.profile, time.Now())

	greeting := styles.TitleStyle.Render(
		fmt.Sprintf("%s  Hola, %s", m.profile.Avatar, m.profile.Name))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("♻️ Recycled", stats.TotalKg+" kg"),
		m.statCard("🎯 Missions", fmt.Sprintf("%d done", stats.CompletedMissions)),
		m.statCard("🔥 Streak", fmt.Sprintf("%d days", stats.CurrentStreak)),
		m.statCard("🎁 Rewards", fmt.Sprintf("%d/%d", stats.ClaimedRewards, stats.TotalRewards)),
	)

	streak := m.streakSection(stats)
	today := m.todaySection()
	main := m.mainMissionSection()

	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		"",
		cards,
		streak,
		"",
		main,
		today,
	)
}

// mainMissionSection shows the mission currently at the top of the display
// order, the one the user should work on next.
func (m HomeModel) mainMissionSection() string {
	sorted := mission.SortByPriority(m.missions)
	for _, ms := range sorted {
		if ms.Completed || !ms.Active {
			continue
		}
		percent := mission.ProgressPercentage(ms)
		title := ms.Title
		if ms.Metadata != nil && ms.Metadata.Icon != "" {
			title = ms.Metadata.Icon + " " + title
		}
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.CardTitleStyle.Render(title),
			fmt.Sprintf("%s %d%%", styles.RenderProgressBar(float64(percent), 24), percent),
		)
		return styles.CardStyle.Render(content)
	}
	return styles.SuccessStyle.Render("All missions completed. 🎉")
}

func (m HomeModel) statCard(title, value string) string {
	content := styles.CardTitleStyle.Render(title) + "\n" +
		styles.MetaValueStyle.Render(value)
	return styles.CardStyle.Render(content)
}

func (m HomeModel) streakSection(stats models.ProfileStats) string {
	next := mission.NextMilestone(stats.CurrentStreak)
	if stats.CurrentStreak >= next {
		return styles.SuccessStyle.Render(
			fmt.Sprintf("🏆 %d day streak, every milestone reached!", stats.CurrentStreak))
	}

	percent := mission.MilestoneProgress(stats.CurrentStreak)
	bar := styles.RenderProgressBar(float64(percent), 30)
	label := fmt.Sprintf("Next milestone: %d days", next)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.SubtitleStyle.Render(label),
		bar,
	)
}

func (m HomeModel) todaySection() string {
	todayKg := mission.TodayKg(m.missions, time.Now())
	if todayKg == "0.0" {
		return styles.HelpStyle.Render("Nothing reported today yet. Press 2 to open missions.")
	}
	return styles.InfoStyle.Render(fmt.Sprintf("Today: %s kg reported", todayKg))
}
