package views

import "ecoaliados/pkg/models"

// ReportRequestMsg asks the app to record a report against a mission
type ReportRequestMsg struct {
	MissionID string
	Count     float64
	Note      string
}

// ProfileSaveMsg asks the app to persist profile changes
type ProfileSaveMsg struct {
	Name   string
	Avatar string
}

// DataRefreshMsg carries the current missions and profile into a view
type DataRefreshMsg struct {
	Missions []models.Mission
	Profile  models.Profile
}

// StatusMsg sets the status line at the bottom of the app
type StatusMsg struct {
	Text  string
	IsErr bool
}
