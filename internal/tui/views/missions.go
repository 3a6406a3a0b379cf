package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ecoaliados/internal/mission"
	"ecoaliados/internal/tui/components"
	"ecoaliados/internal/tui/styles"
	"ecoaliados/pkg/models"
)

// MissionsModel is the mission list view with an inline report form
type MissionsModel struct {
	missions []models.Mission
	cursor   int
	showAll  bool

	reporting  bool
	countInput components.Input
	noteInput  components.Input
	focusIdx   int

	width  int
	height int
}

// NewMissionsModel creates the mission list view
func NewMissionsModel() MissionsModel {
	count := components.NewInput("Count", "how many items?", 10)
	note := components.NewInput("Note", "optional note", 80)
	return MissionsModel{
		countInput: count,
		noteInput:  note,
	}
}

// SetSize updates the view dimensions
func (m *MissionsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// InputActive reports whether a text input is capturing keystrokes
func (m MissionsModel) InputActive() bool {
	return m.reporting
}

// Update handles messages for the mission list
func (m MissionsModel) Update(msg tea.Msg) (MissionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DataRefreshMsg:
		m.missions = mission.SortByPriority(msg.Missions)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.reporting {
			return m.updateReportForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m MissionsModel) updateList(msg tea.KeyMsg) (MissionsModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "a":
		m.showAll = !m.showAll
		m.clampCursor()
	case "enter", "r":
		visible := m.visible()
		if m.cursor < len(visible) && visible[m.cursor].Active {
			m.reporting = true
			m.focusIdx = 0
			m.countInput.Reset()
			m.noteInput.Reset()
			return m, m.countInput.Focus()
		}
	}
	return m, nil
}

func (m MissionsModel) updateReportForm(msg tea.KeyMsg) (MissionsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.reporting = false
		m.countInput.Blur()
		m.noteInput.Blur()
		return m, nil

	case "tab", "shift+tab":
		m.focusIdx = (m.focusIdx + 1) % 2
		if m.focusIdx == 0 {
			m.noteInput.Blur()
			return m, m.countInput.Focus()
		}
		m.countInput.Blur()
		return m, m.noteInput.Focus()

	case "enter":
		return m.submitReport()
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.countInput, cmd = m.countInput.Update(msg)
	} else {
		m.noteInput, cmd = m.noteInput.Update(msg)
	}
	return m, cmd
}

func (m MissionsModel) submitReport() (MissionsModel, tea.Cmd) {
	visible := m.visible()
	if m.cursor >= len(visible) {
		m.reporting = false
		return m, nil
	}
	target := visible[m.cursor]

	raw := strings.TrimSpace(m.countInput.Value())
	count, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return m, func() tea.Msg {
			return StatusMsg{Text: "Enter a valid number of items", IsErr: true}
		}
	}
	note := strings.TrimSpace(m.noteInput.Value())

	m.reporting = false
	m.countInput.Blur()
	m.noteInput.Blur()

	return m, func() tea.Msg {
		return ReportRequestMsg{MissionID: target.ID, Count: count, Note: note}
	}
}

func (m *MissionsModel) clampCursor() {
	n := len(m.visible())
	if n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m MissionsModel) visible() []models.Mission {
	if m.showAll {
		return m.missions
	}
	visible := make([]models.Mission, 0, len(m.missions))
	for _, ms := range m.missions {
		if !ms.Completed {
			visible = append(visible, ms)
		}
	}
	return visible
}

// View renders the mission list or the report form
func (m MissionsModel) View() string {
	if m.reporting {
		return m.reportFormView()
	}
	return m.listView()
}

func (m MissionsModel) listView() string {
	visible := m.visible()

	title := styles.TitleStyle.Render("🎯 Missions")
	filter := "active"
	if m.showAll {
		filter = "all"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		title, styles.HelpStyle.Render(fmt.Sprintf("  showing %s · a to toggle", filter)))

	if len(visible) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header, "",
			styles.HelpStyle.Render("No missions to show."))
	}

	rows := make([]string, 0, len(visible))
	for i, ms := range visible {
		rows = append(rows, m.missionRow(ms, i == m.cursor))
	}

	help := styles.HelpStyle.Render("↑/↓ move · enter report · a toggle completed")
	return lipgloss.JoinVertical(lipgloss.Left,
		header, "",
		strings.Join(rows, "\n"),
		"",
		help,
	)
}

func (m MissionsModel) missionRow(ms models.Mission, selected bool) string {
	percent := mission.ProgressPercentage(ms)
	bar := styles.RenderProgressBar(float64(percent), 20)

	status := ""
	switch {
	case ms.Completed && ms.RewardUnlocked:
		status = styles.SuccessStyle.Render(" ✓ reward unlocked")
	case ms.Completed:
		status = styles.SuccessStyle.Render(" ✓ done")
	case !ms.Active:
		status = styles.WarningStyle.Render(" paused")
	}

	title := ms.Title
	if ms.Metadata != nil && ms.Metadata.Icon != "" {
		title = ms.Metadata.Icon + " " + title
	}
	progress := fmt.Sprintf("%s %d%%  (%s/%s %s)%s",
		bar, percent,
		trimFloat(ms.CurrentCount), trimFloat(ms.TargetCount), ms.Unit(), status)

	if selected {
		return styles.ListItemSelectedStyle.Render(
			styles.ListItemTitleStyle.Render(title) + "\n" + progress)
	}
	return styles.ListItemStyle.Render(
		title + "\n" + styles.ListItemDescStyle.Render(progress))
}

func (m MissionsModel) reportFormView() string {
	visible := m.visible()
	if m.cursor >= len(visible) {
		return ""
	}
	target := visible[m.cursor]

	name := target.Title
	if target.Metadata != nil && target.Metadata.Icon != "" {
		name = target.Metadata.Icon + " " + name
	}
	title := styles.DialogTitleStyle.Render("Report · " + name)

	hint := fmt.Sprintf("%s/%s %s so far",
		trimFloat(target.CurrentCount), trimFloat(target.TargetCount), target.Unit())
	if limit, ok := target.DailyLimit(); ok {
		today := mission.TodaySum(target, time.Now())
		hint += fmt.Sprintf(" · daily limit %s (%s used today)",
			trimFloat(limit), trimFloat(today))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.HelpStyle.Render(hint),
		"",
		m.countInput.View(),
		"",
		m.noteInput.View(),
		"",
		styles.HelpStyle.Render("enter submit · tab switch field · esc cancel"),
	)
	return styles.DialogStyle.Render(body)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
