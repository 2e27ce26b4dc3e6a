package mission

import (
	"strconv"
	"strings"
)

type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformEmail     Platform = "email"
	PlatformPhone     Platform = "phone"
	PlatformInPerson  Platform = "in_person"
)

type Style string

const (
	StyleDirect       Style = "direct"
	StyleMotivational Style = "motivational"
	StyleTactical     Style = "tactical"
	StyleStorytelling Style = "storytelling"
)

type Goal string

const (
	GoalGrowAudience  Goal = "grow_audience"
	GoalMakeSales     Goal = "make_sales"
	GoalBuildNetwork  Goal = "build_network"
	GoalLearnSkill    Goal = "learn_skill"
	GoalCreateContent Goal = "create_content"
)

const (
	DefaultStyle = StyleDirect
	DefaultGoal  = GoalGrowAudience
)

var (
	Platforms      = []Platform{PlatformLinkedIn, PlatformInstagram, PlatformTwitter, PlatformFacebook, PlatformEmail, PlatformPhone, PlatformInPerson}
	Styles         = []Style{StyleDirect, StyleMotivational, StyleTactical, StyleStorytelling}
	Goals          = []Goal{GoalGrowAudience, GoalMakeSales, GoalBuildNetwork, GoalLearnSkill, GoalCreateContent}
	TimeOptions    = []int{15, 30, 45, 60, 90, 120}
	CategoryValues = []string{"business", "fitness", "learning", "networking"}
)

// Option is a value/label pair rendered by selection widgets.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TimeOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

func normalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ParsePlatform(raw string) (Platform, bool) {
	p := Platform(normalizeKey(raw))
	for _, known := range Platforms {
		if p == known {
			return p, true
		}
	}
	return p, false
}

func ParseStyle(raw string) (Style, bool) {
	s := Style(normalizeKey(raw))
	for _, known := range Styles {
		if s == known {
			return s, true
		}
	}
	return s, false
}

func ParseGoal(raw string) (Goal, bool) {
	g := Goal(normalizeKey(raw))
	for _, known := range Goals {
		if g == known {
			return g, true
		}
	}
	return g, false
}

func ValidTimeMinutes(minutes int) bool {
	for _, allowed := range TimeOptions {
		if minutes == allowed {
			return true
		}
	}
	return false
}

func ValidCategory(raw string) bool {
	clean := normalizeKey(raw)
	for _, allowed := range CategoryValues {
		if clean == allowed {
			return true
		}
	}
	return false
}

// Label returns the display name. Unknown platforms echo their raw key.
func (p Platform) Label() string {
	switch p {
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformInstagram:
		return "Instagram"
	case PlatformTwitter:
		return "Twitter/X"
	case PlatformFacebook:
		return "Facebook"
	case PlatformEmail:
		return "Email"
	case PlatformPhone:
		return "Phone"
	case PlatformInPerson:
		return "In-Person"
	default:
		return string(p)
	}
}

func (s Style) Label() string {
	switch s {
	case StyleDirect:
		return "Direct & No-Nonsense"
	case StyleMotivational:
		return "Motivational"
	case StyleTactical:
		return "Tactical & Detailed"
	case StyleStorytelling:
		return "Storytelling"
	default:
		return string(s)
	}
}

func (g Goal) Label() string {
	switch g {
	case GoalGrowAudience:
		return "Grow My Audience"
	case GoalMakeSales:
		return "Make Sales"
	case GoalBuildNetwork:
		return "Build Network"
	case GoalLearnSkill:
		return "Learn a Skill"
	case GoalCreateContent:
		return "Create Content"
	default:
		return string(g)
	}
}

func TimeLabel(minutes int) string {
	switch minutes {
	case 60:
		return "1 hour"
	case 90:
		return "1.5 hours"
	case 120:
		return "2 hours"
	default:
		return strconv.Itoa(minutes) + " minutes"
	}
}

func PlatformOptions() []Option {
	out := make([]Option, 0, len(Platforms))
	for _, p := range Platforms {
		out = append(out, Option{Value: string(p), Label: p.Label()})
	}
	return out
}

func StyleOptions() []Option {
	out := make([]Option, 0, len(Styles))
	for _, s := range Styles {
		out = append(out, Option{Value: string(s), Label: s.Label()})
	}
	return out
}

func GoalOptions() []Option {
	out := make([]Option, 0, len(Goals))
	for _, g := range Goals {
		out = append(out, Option{Value: string(g), Label: g.Label()})
	}
	return out
}

func TimeOptionList() []TimeOption {
	out := make([]TimeOption, 0, len(TimeOptions))
	for _, minutes := range TimeOptions {
		out = append(out, TimeOption{Value: minutes, Label: TimeLabel(minutes)})
	}
	return out
}

func CategoryOptions() []Option {
	out := make([]Option, 0, len(CategoryValues))
	for _, value := range CategoryValues {
		out = append(out, Option{Value: value, Label: strings.ToUpper(value[:1]) + value[1:]})
	}
	return out
}
