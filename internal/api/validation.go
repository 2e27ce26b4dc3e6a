package api

import (
	"fmt"
	"strconv"
	"strings"

	"attentionops/backend/internal/mission"
	"attentionops/backend/internal/safety"
)

type generateMissionRequest struct {
	Platform    string `json:"platform"`
	Topic       string `json:"topic"`
	Style       string `json:"style"`
	Goal        string `json:"goal,omitempty"`
	TimeMinutes *int   `json:"timeMinutes,omitempty"`
}

// validateGenerateRequest checks the request against the active phrase bank
// and returns the composer request. Keys are accepted in any case.
func validateGenerateRequest(req generateMissionRequest, bank *mission.Bank, topicMaxLen int) (mission.Request, error) {
	platformRaw := strings.TrimSpace(req.Platform)
	if platformRaw == "" {
		return mission.Request{}, fmt.Errorf("platform is required")
	}
	platform, _ := mission.ParsePlatform(platformRaw)
	if !bank.HasPlatform(platform) {
		return mission.Request{}, fmt.Errorf("platform must be one of: %s", optionValues(bank.PlatformOptions()))
	}

	styleRaw := strings.TrimSpace(req.Style)
	if styleRaw == "" {
		return mission.Request{}, fmt.Errorf("style is required")
	}
	style, _ := mission.ParseStyle(styleRaw)
	if !bank.HasStyle(style) {
		return mission.Request{}, fmt.Errorf("style must be one of: %s", optionValues(bank.StyleOptions()))
	}

	if topicMaxLen <= 0 {
		topicMaxLen = 100
	}
	topic, err := validateTopic(req.Topic, topicMaxLen)
	if err != nil {
		return mission.Request{}, err
	}

	out := mission.Request{
		Platform: platform,
		Topic:    topic,
		Style:    style,
	}

	if goalRaw := strings.TrimSpace(req.Goal); goalRaw != "" {
		goal, _ := mission.ParseGoal(goalRaw)
		if !bank.HasGoal(goal) {
			return mission.Request{}, fmt.Errorf("goal must be one of: %s", optionValues(bank.GoalOptions()))
		}
		out.Goal = goal
	}

	if req.TimeMinutes != nil {
		if !mission.ValidTimeMinutes(*req.TimeMinutes) {
			return mission.Request{}, fmt.Errorf("timeMinutes must be one of: %s", joinInts(mission.TimeOptions))
		}
		out.TimeMinutes = *req.TimeMinutes
	}

	return out, nil
}

func validateTopic(value string, max int) (string, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return "", fmt.Errorf("topic is required")
	}
	if length := len([]rune(clean)); length > max {
		return "", fmt.Errorf("topic must be <= %d chars", max)
	}
	if err := safety.ValidateTopic(clean, max); err != nil {
		return "", err
	}
	return clean, nil
}

func parsePaginationLimit(raw string, defaultValue, minValue, maxValue int) (int, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("limit must be a number")
	}
	if value < minValue || value > maxValue {
		return 0, fmt.Errorf("limit must be between %d and %d", minValue, maxValue)
	}
	return value, nil
}

func optionValues(options []mission.Option) string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return strings.Join(values, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.Itoa(value))
	}
	return strings.Join(parts, ", ")
}
