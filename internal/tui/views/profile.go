package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoaliados/internal/mission"
	"ecoaliados/internal/tui/components"
	"ecoaliados/internal/tui/styles"
	"ecoaliados/pkg/models"
)

// ProfileModel shows the local profile and lets the user edit it
type ProfileModel struct {
	profile  models.Profile
	missions []models.Mission

	editing     bool
	nameInput   components.Input
	avatarInput components.Input
	focusIdx    int

	width  int
	height int
}

// NewProfileModel creates the profile view
func NewProfileModel() ProfileModel {
	name := components.NewInput("Name", "display name", 40)
	avatar := components.NewInput("Avatar", "an emoji works best", 8)
	return ProfileModel{
		nameInput:   name,
		avatarInput: avatar,
	}
}

// SetSize updates the view dimensions
func (m *ProfileModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InputActive reports whether a text input is capturing keystrokes
func (m ProfileModel) InputActive() bool {
	return m.editing
}

// Update handles messages for the profile view
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DataRefreshMsg:
		m.profile = msg.Profile
		m.missions = msg.Missions
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditForm(msg)
		}
		if msg.String() == "e" || msg.String() == "enter" {
			m.editing = true
			m.focusIdx = 0
			m.nameInput.SetValue(m.profile.Name)
			m.avatarInput.SetValue(m.profile.Avatar)
			return m, m.nameInput.Focus()
		}
	}
	return m, nil
}

func (m ProfileModel) updateEditForm(msg tea.KeyMsg) (ProfileModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.nameInput.Blur()
		m.avatarInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		m.focusIdx = (m.focusIdx + 1) % 2
		if m.focusIdx == 0 {
			m.avatarInput.Blur()
			return m, m.nameInput.Focus()
		}
		m.nameInput.Blur()
		return m, m.avatarInput.Focus()

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		avatar := strings.TrimSpace(m.avatarInput.Value())
		if name == "" {
			return m, func() tea.Msg {
				return StatusMsg{Text: "Name cannot be empty", IsErr: true}
			}
		}
		m.editing = false
		m.nameInput.Blur()
		m.avatarInput.Blur()
		return m, func() tea.Msg {
			return ProfileSaveMsg{Name: name, Avatar: avatar}
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.avatarInput, cmd = m.avatarInput.Update(msg)
	}
	return m, cmd
}

// View renders the profile view
func (m ProfileModel) View() string {
	if m.editing {
		return m.editFormView()
	}

	stats := mission.Stats(m.missions, m.profile, time.Now())

	title := styles.TitleStyle.Render(
		fmt.Sprintf("%s  %s", m.profile.Avatar, m.profile.Name))

	details := lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderKeyValue("Joined", m.profile.CreatedAt.Format("2006-01-02")),
		styles.RenderKeyValue("Days active", fmt.Sprintf("%d", stats.DaysSinceJoined)),
		styles.RenderKeyValue("Recycled", stats.TotalKg+" kg"),
		styles.RenderKeyValue("Missions completed", fmt.Sprintf("%d", stats.CompletedMissions)),
		styles.RenderKeyValue("Current streak", fmt.Sprintf("%d days", stats.CurrentStreak)),
		styles.RenderKeyValue("Rewards", fmt.Sprintf("%d unlocked, %d claimed",
			stats.TotalRewards, stats.ClaimedRewards)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		styles.CardStyle.Render(details),
		styles.HelpStyle.Render("e edit profile"),
	)
}

func (m ProfileModel) editFormView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.DialogTitleStyle.Render("Edit profile"),
		"",
		m.nameInput.View(),
		"",
		m.avatarInput.View(),
		"",
		styles.HelpStyle.Render("enter save · tab switch field · esc cancel"),
	)
	return styles.DialogStyle.Render(body)
}
