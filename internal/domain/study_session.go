package domain

import (
	"strings"
	"time"
)

// SessionType classifies a study session.
type SessionType string

const (
	SessionStudy    SessionType = "study"
	SessionBreak    SessionType = "break"
	SessionPomodoro SessionType = "pomodoro"
)

// IsValid reports whether t is a known session type.
func (t SessionType) IsValid() bool {
	switch t {
	case SessionStudy, SessionBreak, SessionPomodoro:
		return true
	}
	return false
}

// StudySession records time spent on a subject. Duration is in seconds.
type StudySession struct {
	Record   `bson:",inline"`
	Subject  string      `json:"subject" bson:"subject"`
	Duration int64       `json:"duration" bson:"duration"`
	Type     SessionType `json:"type" bson:"type"`
	Date     time.Time   `json:"date" bson:"date"`
	Notes    string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// StudySessionFields carries caller supplied study session fields.
type StudySessionFields struct {
	Subject  *string      `json:"subject"`
	Duration *int64       `json:"duration"`
	Type     *SessionType `json:"type"`
	Date     *time.Time   `json:"date"`
	Notes    *string      `json:"notes"`
}

// NewStudySession builds a study session from create fields.
func NewStudySession(f StudySessionFields) StudySession {
	var s StudySession
	s.Apply(f)
	return s
}

// Apply replaces every field present in f.
func (s *StudySession) Apply(f StudySessionFields) {
	if f.Subject != nil {
		s.Subject = strings.TrimSpace(*f.Subject)
	}
	if f.Duration != nil {
		s.Duration = *f.Duration
	}
	if f.Type != nil {
		s.Type = *f.Type
	}
	if f.Date != nil {
		s.Date = *f.Date
	}
	if f.Notes != nil {
		s.Notes = *f.Notes
	}
}

// Elapsed returns the session length as a time.Duration.
func (s StudySession) Elapsed() time.Duration {
	return time.Duration(s.Duration) * time.Second
}
