package mission

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a composed mission that has not been numbered yet.
type Draft struct {
	MissionText string
	Platform    Platform
	Topic       string
	Style       Style
	Goal        Goal
	TimeMinutes int
}

type Mission struct {
	ID            string    `json:"id"`
	MissionText   string    `json:"missionText"`
	Platform      Platform  `json:"platform"`
	Topic         string    `json:"topic"`
	Style         Style     `json:"style"`
	Goal          Goal      `json:"goal,omitempty"`
	TimeMinutes   int       `json:"timeMinutes,omitempty"`
	MissionNumber int64     `json:"missionNumber"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewMission(draft Draft, number int64, createdAt time.Time) Mission {
	return Mission{
		ID:            uuid.NewString(),
		MissionText:   draft.MissionText,
		Platform:      draft.Platform,
		Topic:         draft.Topic,
		Style:         draft.Style,
		Goal:          draft.Goal,
		TimeMinutes:   draft.TimeMinutes,
		MissionNumber: number,
		CreatedAt:     createdAt.UTC(),
	}
}
