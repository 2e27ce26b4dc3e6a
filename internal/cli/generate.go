package cli

import (
	"fmt"
	"io"
	"strings"

	"attentionops/backend/internal/mission"
	"attentionops/backend/internal/safety"
	"attentionops/backend/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const topicMaxLen = 100

// GenerateCmd composes missions offline and numbers them in a throwaway
// in-memory store.
func GenerateCmd() *cobra.Command {
	var (
		platform   string
		topic      string
		style      string
		goal       string
		minutes    int
		count      int
		phrasebank string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose one or more missions",
		Example: `  missionctl generate --platform linkedin --topic "veteran coaching" --style direct
  missionctl generate --platform instagram --topic sales --style motivational --goal make_sales --time 30 --count 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := loadBank(phrasebank)
			if err != nil {
				return err
			}

			req, err := buildRequest(bank, platform, topic, style, goal, minutes)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			composer := mission.NewComposer(bank, nil)
			missions := store.NewMemoryStore()
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				composition := composer.Compose(req)
				record, err := missions.Create(cmd.Context(), composition.Draft())
				if err != nil {
					return fmt.Errorf("failed to store mission: %w", err)
				}
				printMission(out, record, composition.Fallbacks)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", "", "target platform (see 'missionctl options')")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "mission topic, 1-100 characters")
	cmd.Flags().StringVarP(&style, "style", "s", string(mission.DefaultStyle), "writing style")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "optional goal framing")
	cmd.Flags().IntVar(&minutes, "time", 0, "optional time budget in minutes")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of missions to compose")
	cmd.Flags().StringVar(&phrasebank, "phrasebank", "", "YAML phrase bank overlay")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("topic")

	return cmd
}

func loadBank(path string) (*mission.Bank, error) {
	if strings.TrimSpace(path) == "" {
		return mission.DefaultBank(), nil
	}
	bank, err := mission.LoadBankFile(path, mission.DefaultBank())
	if err != nil {
		return nil, fmt.Errorf("failed to load phrase bank: %w", err)
	}
	return bank, nil
}

func buildRequest(bank *mission.Bank, platformRaw, topic, styleRaw, goalRaw string, minutes int) (mission.Request, error) {
	platform, _ := mission.ParsePlatform(platformRaw)
	if !bank.HasPlatform(platform) {
		return mission.Request{}, fmt.Errorf("invalid platform: %s\nValid platforms: %s", platformRaw, joinOptions(bank.PlatformOptions()))
	}
	style, _ := mission.ParseStyle(styleRaw)
	if !bank.HasStyle(style) {
		return mission.Request{}, fmt.Errorf("invalid style: %s\nValid styles: %s", styleRaw, joinOptions(bank.StyleOptions()))
	}
	if err := safety.ValidateTopic(topic, topicMaxLen); err != nil {
		return mission.Request{}, err
	}

	req := mission.Request{
		Platform: platform,
		Topic:    strings.TrimSpace(topic),
		Style:    style,
	}
	if strings.TrimSpace(goalRaw) != "" {
		goal, _ := mission.ParseGoal(goalRaw)
		if !bank.HasGoal(goal) {
			return mission.Request{}, fmt.Errorf("invalid goal: %s\nValid goals: %s", goalRaw, joinOptions(bank.GoalOptions()))
		}
		req.Goal = goal
	}
	if minutes != 0 {
		if !mission.ValidTimeMinutes(minutes) {
			return mission.Request{}, fmt.Errorf("invalid time: %d\nValid times: %v", minutes, mission.TimeOptions)
		}
		req.TimeMinutes = minutes
	}
	return req, nil
}

func printMission(out io.Writer, record mission.Mission, fallbacks []mission.Fallback) {
	header := color.New(color.FgGreen, color.Bold).Sprintf("MISSION #%d", record.MissionNumber)
	meta := color.New(color.FgCyan).Sprintf("%s · %s", record.Platform, record.Style)
	fmt.Fprintf(out, "%s  %s\n\n%s\n", header, meta, record.MissionText)
	for _, fallback := range fallbacks {
		fmt.Fprintf(out, "%s default %s entry used\n", color.New(color.FgYellow).Sprint("!"), fallback)
	}
	fmt.Fprintln(out)
}

func joinOptions(options []mission.Option) string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return strings.Join(values, ", ")
}
