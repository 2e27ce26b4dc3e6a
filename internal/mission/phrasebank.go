package mission

import "sort"

type StyleProfile struct {
	Label           string   `yaml:"label"`
	Prefix          string   `yaml:"prefix"`
	OperationHeader bool     `yaml:"operation_header"`
	Hooks           []string `yaml:"hooks"`
}

type GoalProfile struct {
	Label      string   `yaml:"label"`
	Objectives []string `yaml:"objectives"`
}

type PlatformProfile struct {
	Label         string   `yaml:"label"`
	Rules         []string `yaml:"rules"`
	CallsToAction []string `yaml:"calls_to_action"`
	Suffix        string   `yaml:"suffix"`
}

// Bank is the read-only phrase library. Lookups never fail: a miss resolves
// to the default entry and reports ok=false.
type Bank struct {
	version       string
	styles        map[Style]StyleProfile
	styleOrder    []Style
	goals         map[Goal]GoalProfile
	goalOrder     []Goal
	platforms     map[Platform]PlatformProfile
	platformOrder []Platform
	executions    [][]string
}

const DefaultBankVersion = "2024.2"

var defaultBank = buildDefaultBank()

// DefaultBank returns the built-in phrase library.
func DefaultBank() *Bank {
	return defaultBank
}

func buildDefaultBank() *Bank {
	b := &Bank{
		version:   DefaultBankVersion,
		styles:    map[Style]StyleProfile{},
		goals:     map[Goal]GoalProfile{},
		platforms: map[Platform]PlatformProfile{},
	}
	for _, style := range Styles {
		profile := defaultStyleProfiles[style]
		profile.Label = style.Label()
		b.styles[style] = profile
		b.styleOrder = append(b.styleOrder, style)
	}
	for _, goal := range Goals {
		profile := defaultGoalProfiles[goal]
		profile.Label = goal.Label()
		b.goals[goal] = profile
		b.goalOrder = append(b.goalOrder, goal)
	}
	for _, platform := range Platforms {
		profile := defaultPlatformProfiles[platform]
		profile.Label = platform.Label()
		b.platforms[platform] = profile
		b.platformOrder = append(b.platformOrder, platform)
	}
	b.executions = defaultExecutionSets
	return b
}

func (b *Bank) Version() string {
	return b.version
}

func (b *Bank) Style(style Style) (StyleProfile, bool) {
	if profile, ok := b.styles[style]; ok {
		return profile, true
	}
	if profile, ok := b.styles[DefaultStyle]; ok {
		return profile, false
	}
	return defaultBank.styles[DefaultStyle], false
}

func (b *Bank) Goal(goal Goal) (GoalProfile, bool) {
	if profile, ok := b.goals[goal]; ok {
		return profile, true
	}
	if profile, ok := b.goals[DefaultGoal]; ok {
		return profile, false
	}
	return defaultBank.goals[DefaultGoal], false
}

// Platform resolves a platform profile. Unknown platforms get the generic
// profile labelled with the raw key.
func (b *Bank) Platform(platform Platform) (PlatformProfile, bool) {
	if profile, ok := b.platforms[platform]; ok {
		return profile, true
	}
	profile := fallbackPlatformProfile
	profile.Label = platform.Label()
	if profile.Label == "" {
		profile.Label = "your platform"
	}
	return profile, false
}

func (b *Bank) Executions() [][]string {
	if len(b.executions) == 0 {
		return defaultExecutionSets
	}
	return b.executions
}

func (b *Bank) HasStyle(style Style) bool {
	_, ok := b.styles[style]
	return ok
}

func (b *Bank) HasGoal(goal Goal) bool {
	_, ok := b.goals[goal]
	return ok
}

func (b *Bank) HasPlatform(platform Platform) bool {
	_, ok := b.platforms[platform]
	return ok
}

func (b *Bank) StyleOptions() []Option {
	out := make([]Option, 0, len(b.styleOrder))
	for _, style := range b.styleOrder {
		out = append(out, Option{Value: string(style), Label: b.styles[style].Label})
	}
	return out
}

func (b *Bank) GoalOptions() []Option {
	out := make([]Option, 0, len(b.goalOrder))
	for _, goal := range b.goalOrder {
		out = append(out, Option{Value: string(goal), Label: b.goals[goal].Label})
	}
	return out
}

func (b *Bank) PlatformOptions() []Option {
	out := make([]Option, 0, len(b.platformOrder))
	for _, platform := range b.platformOrder {
		out = append(out, Option{Value: string(platform), Label: b.platforms[platform].Label})
	}
	return out
}

func (b *Bank) clone() *Bank {
	out := &Bank{
		version:       b.version,
		styles:        make(map[Style]StyleProfile, len(b.styles)),
		styleOrder:    append([]Style(nil), b.styleOrder...),
		goals:         make(map[Goal]GoalProfile, len(b.goals)),
		goalOrder:     append([]Goal(nil), b.goalOrder...),
		platforms:     make(map[Platform]PlatformProfile, len(b.platforms)),
		platformOrder: append([]Platform(nil), b.platformOrder...),
		executions:    b.executions,
	}
	for key, value := range b.styles {
		out.styles[key] = value
	}
	for key, value := range b.goals {
		out.goals[key] = value
	}
	for key, value := range b.platforms {
		out.platforms[key] = value
	}
	return out
}

func sortedKeys[K ~string, V any](items map[string]V) []K {
	keys := make([]K, 0, len(items))
	for key := range items {
		keys = append(keys, K(key))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
