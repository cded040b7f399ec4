// Package models defines the records Lumii persists and passes between its
// packages.
package models

import (
	"slices"
	"time"
)

// Technique identifies the study method used for a session. It only feeds
// breakdown statistics and never influences aggregation.
type Technique string

const (
	TechniquePomodoro Technique = "pomodoro"
	TechniqueFocused  Technique = "focused"
	TechniqueMockExam Technique = "mock-exam"
)

var Techniques = []Technique{
	TechniquePomodoro,
	TechniqueFocused,
	TechniqueMockExam,
}

// Valid reports whether t is a known technique.
func (t Technique) Valid() bool {
	return slices.Contains(Techniques, t)
}

// StudySession is an immutable record of one completed study interval.
// OccurredAt is when the session took place, not when it was persisted.
type StudySession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	OccurredAt      time.Time `json:"occurred_at"`
	DurationMinutes int       `json:"duration_minutes"`
	CertificateID   string    `json:"certificate_id,omitempty"`
	Technique       Technique `json:"technique,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Certificate is a certification a user is studying towards. The tracker
// core treats its ID opaquely; the record exists for attribution labels.
type Certificate struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	TargetHours int       `json:"target_hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// StudyGoals are the configured daily and weekly targets in minutes.
type StudyGoals struct {
	DailyMinutes  int `json:"daily_minutes"`
	WeeklyMinutes int `json:"weekly_minutes"`
}

// User is the profile the presentation layer needs. The tracker core only
// ever uses the ID.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	StudyGoals StudyGoals `json:"study_goals"`
}
