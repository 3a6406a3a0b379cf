// Package tui is the interactive terminal app. A single root model owns the
// mission collection and profile; views render them and request mutations
// through messages, so all writes flow through one place.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoaliados/internal/leaderboard"
	"ecoaliados/internal/mission"
	"ecoaliados/internal/storage"
	"ecoaliados/internal/tui/styles"
	"ecoaliados/internal/tui/views"
	"ecoaliados/pkg/logger"
	"ecoaliados/pkg/models"
)

// View identifies the active screen
type View int

const (
	HomeView View = iota
	MissionsView
	LeaderboardView
	ProfileView
)

var viewNames = map[View]string{
	HomeView:        "Home",
	MissionsView:    "Missions",
	LeaderboardView: "Leaderboard",
	ProfileView:     "Profile",
}

// Model is the root bubbletea model
type Model struct {
	keys  KeyMap
	view  View
	store storage.Store

	missions []models.Mission
	profile  models.Profile

	home        views.HomeModel
	missionList views.MissionsModel
	board       views.LeaderboardModel
	profileView views.ProfileModel

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel creates the root model, loading state from the store
func NewModel(store storage.Store, generator *leaderboard.Generator) (Model, error) {
	ctx := context.Background()
	missions, err := store.LoadMissions(ctx)
	if err != nil {
		return Model{}, err
	}
	profile, err := store.LoadProfile(ctx)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		keys:        DefaultKeyMap(),
		view:        HomeView,
		store:       store,
		missions:    missions,
		profile:     profile,
		home:        views.NewHomeModel(),
		missionList: views.NewMissionsModel(),
		board:       views.NewLeaderboardModel(generator),
		profileView: views.NewProfileModel(),
	}
	m.refreshViews()
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.SetSize(msg.Width, msg.Height)
		m.missionList.SetSize(msg.Width, msg.Height)
		m.board.SetSize(msg.Width, msg.Height)
		m.profileView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.inputActive() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Home):
				m.view = HomeView
				return m, nil
			case key.Matches(msg, m.keys.Missions):
				m.view = MissionsView
				return m, nil
			case key.Matches(msg, m.keys.Leaderboard):
				m.view = LeaderboardView
				return m, nil
			case key.Matches(msg, m.keys.Profile):
				m.view = ProfileView
				return m, nil
			}
		}
		return m.updateActiveView(msg)

	case views.ReportRequestMsg:
		return m.handleReport(msg)

	case views.ProfileSaveMsg:
		return m.handleProfileSave(msg)

	case views.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	}

	return m.updateActiveView(msg)
}

func (m Model) inputActive() bool {
	switch m.view {
	case MissionsView:
		return m.missionList.InputActive()
	case ProfileView:
		return m.profileView.InputActive()
	}
	return false
}

func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case HomeView:
		m.home, cmd = m.home.Update(msg)
	case MissionsView:
		m.missionList, cmd = m.missionList.Update(msg)
	case LeaderboardView:
		m.board, cmd = m.board.Update(msg)
	case ProfileView:
		m.profileView, cmd = m.profileView.Update(msg)
	}
	return m, cmd
}

func (m Model) handleReport(msg views.ReportRequestMsg) (tea.Model, tea.Cmd) {
	result, updated := mission.ReportToCollection(
		m.missions, msg.MissionID, msg.Count, msg.Note, time.Now())

	m.status = result.Message
	m.statusErr = !result.Success

	if result.Success {
		m.missions = updated
		if err := m.store.SaveMissions(context.Background(), m.missions); err != nil {
			logger.Warnf("failed to save missions: %v", err)
		}
	}

	m.refreshViews()
	return m, nil
}

func (m Model) handleProfileSave(msg views.ProfileSaveMsg) (tea.Model, tea.Cmd) {
	m.profile.Name = msg.Name
	if msg.Avatar != "" {
		m.profile.Avatar = msg.Avatar
	}

	if err := m.store.SaveProfile(context.Background(), m.profile); err != nil {
		logger.Warnf("failed to save profile: %v", err)
		m.status = "Profile saved locally but not persisted"
		m.statusErr = true
	} else {
		m.status = "Profile updated"
		m.statusErr = false
	}

	m.refreshViews()
	return m, nil
}

func (m *Model) refreshViews() {
	refresh := views.DataRefreshMsg{Missions: m.missions, Profile: m.profile}
	m.home, _ = m.home.Update(refresh)
	m.missionList, _ = m.missionList.Update(refresh)
	m.board, _ = m.board.Update(refresh)
	m.profileView, _ = m.profileView.Update(refresh)
}

// View implements tea.Model
func (m Model) View() string {
	tabs := m.tabBar()

	var body string
	switch m.view {
	case HomeView:
		body = m.home.View()
	case MissionsView:
		body = m.missionList.View()
	case LeaderboardView:
		body = m.board.View()
	case ProfileView:
		body = m.profileView.View()
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = styles.ErrorStyle.Render(m.status)
		} else {
			status = styles.SuccessStyle.Render(m.status)
		}
	}

	help := styles.HelpStyle.Render("1-4 switch view · q quit")

	return styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		tabs,
		"",
		body,
		"",
		status,
		help,
	))
}

func (m Model) tabBar() string {
	order := []View{HomeView, MissionsView, LeaderboardView, ProfileView}
	rendered := make([]string, 0, len(order))
	for _, v := range order {
		if v == m.view {
			rendered = append(rendered, styles.TabActiveStyle.Render(viewNames[v]))
		} else {
			rendered = append(rendered, styles.TabStyle.Render(viewNames[v]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}
