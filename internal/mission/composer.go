package mission

import (
	"fmt"
	"strings"
)

const (
	bulletGlyph      = "• "
	sectionSeparator = "\n\n"
	defaultTopic     = "your business"
)

type Request struct {
	Platform    Platform
	Topic       string
	Style       Style
	Goal        Goal
	TimeMinutes int
}

// Fallback names a lookup that missed and resolved to a default entry.
type Fallback string

const (
	FallbackStyle    Fallback = "style"
	FallbackGoal     Fallback = "goal"
	FallbackPlatform Fallback = "platform"
)

type Composition struct {
	Request   Request
	Text      string
	Fallbacks []Fallback
}

func (c Composition) Draft() Draft {
	return Draft{
		MissionText: c.Text,
		Platform:    c.Request.Platform,
		Topic:       c.Request.Topic,
		Style:       c.Request.Style,
		Goal:        c.Request.Goal,
		TimeMinutes: c.Request.TimeMinutes,
	}
}

type Composer struct {
	bank *Bank
	src  Source
}

func NewComposer(bank *Bank, src Source) *Composer {
	if bank == nil {
		bank = DefaultBank()
	}
	if src == nil {
		src = GlobalSource
	}
	return &Composer{bank: bank, src: src}
}

func (c *Composer) Bank() *Bank {
	return c.bank
}

// Compose renders one mission. Sections in order: hook, operation header,
// situation/mission framing (goal requests only), execution list, rules of
// engagement, call to action with platform suffix.
func (c *Composer) Compose(req Request) Composition {
	req.Topic = strings.TrimSpace(req.Topic)
	out := Composition{Request: req}

	style, ok := c.bank.Style(req.Style)
	if !ok {
		out.Fallbacks = append(out.Fallbacks, FallbackStyle)
	}
	platform, ok := c.bank.Platform(req.Platform)
	if !ok {
		out.Fallbacks = append(out.Fallbacks, FallbackPlatform)
	}

	topic := req.Topic
	if topic == "" {
		topic = defaultTopic
	}
	fill := strings.NewReplacer("{topic}", topic, "{platform}", platform.Label).Replace

	sections := make([]string, 0, 6)

	hook := fill(Pick(c.src, style.Hooks))
	if prefix := strings.TrimSpace(style.Prefix); prefix != "" {
		hook = prefix + " " + hook
	}
	sections = append(sections, hook)

	if style.OperationHeader {
		sections = append(sections, "OPERATION: "+strings.ToUpper(topic))
	}

	if req.Goal != "" {
		goal, ok := c.bank.Goal(req.Goal)
		if !ok {
			out.Fallbacks = append(out.Fallbacks, FallbackGoal)
		}
		sections = append(sections,
			"SITUATION: "+situationLine(req.TimeMinutes, platform.Label)+"\n"+
				"MISSION: "+fill(Pick(c.src, goal.Objectives)))
	}

	bullets := Pick(c.src, c.bank.Executions())
	lines := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		lines = append(lines, bulletGlyph+fill(bullet))
	}
	sections = append(sections, "EXECUTION:\n"+strings.Join(lines, "\n"))

	sections = append(sections, "RULES OF ENGAGEMENT: "+fill(Pick(c.src, platform.Rules)))

	closing := fill(Pick(c.src, platform.CallsToAction))
	if suffix := strings.TrimSpace(platform.Suffix); suffix != "" {
		closing += sectionSeparator + suffix
	}
	sections = append(sections, closing)

	out.Text = strings.Join(sections, sectionSeparator)
	return out
}

func situationLine(minutes int, platformLabel string) string {
	if minutes > 0 {
		return fmt.Sprintf("You have %s on %s. Make every minute count.", TimeLabel(minutes), platformLabel)
	}
	return fmt.Sprintf("You are operating on %s today.", platformLabel)
}
