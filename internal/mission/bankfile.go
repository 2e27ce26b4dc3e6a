package mission

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	minExecutionBullets = 4
	maxExecutionBullets = 7
)

type bankFile struct {
	Version    string                     `yaml:"version"`
	Styles     map[string]StyleProfile    `yaml:"styles"`
	Goals      map[string]GoalProfile     `yaml:"goals"`
	Platforms  map[string]PlatformProfile `yaml:"platforms"`
	Executions [][]string                 `yaml:"executions"`
}

// LoadBankFile overlays the YAML phrase library at path onto base. Entries in
// the file replace or extend the base entries; a non-empty executions list
// replaces the whole execution pool.
func LoadBankFile(path string, base *Bank) (*Bank, error) {
	raw, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("read phrase bank: %w", err)
	}
	bank, err := ParseBank(raw, base)
	if err != nil {
		return nil, fmt.Errorf("phrase bank %s: %w", path, err)
	}
	return bank, nil
}

func ParseBank(raw []byte, base *Bank) (*Bank, error) {
	if base == nil {
		base = DefaultBank()
	}

	var file bankFile
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := file.validate(); err != nil {
		return nil, err
	}

	out := base.clone()
	if strings.TrimSpace(file.Version) != "" {
		out.version = strings.TrimSpace(file.Version)
	}

	for _, style := range sortedKeys[Style](file.Styles) {
		profile := file.Styles[string(style)]
		style = Style(normalizeKey(string(style)))
		if strings.TrimSpace(profile.Label) == "" {
			profile.Label = style.Label()
		}
		if _, exists := out.styles[style]; !exists {
			out.styleOrder = append(out.styleOrder, style)
		}
		out.styles[style] = profile
	}

	for _, goal := range sortedKeys[Goal](file.Goals) {
		profile := file.Goals[string(goal)]
		goal = Goal(normalizeKey(string(goal)))
		if strings.TrimSpace(profile.Label) == "" {
			profile.Label = goal.Label()
		}
		if _, exists := out.goals[goal]; !exists {
			out.goalOrder = append(out.goalOrder, goal)
		}
		out.goals[goal] = profile
	}

	for _, platform := range sortedKeys[Platform](file.Platforms) {
		profile := file.Platforms[string(platform)]
		platform = Platform(normalizeKey(string(platform)))
		if strings.TrimSpace(profile.Label) == "" {
			profile.Label = platform.Label()
		}
		if _, exists := out.platforms[platform]; !exists {
			out.platformOrder = append(out.platformOrder, platform)
		}
		out.platforms[platform] = profile
	}

	if len(file.Executions) > 0 {
		out.executions = file.Executions
	}
	return out, nil
}

func (f bankFile) validate() error {
	var errs []error
	for key, profile := range f.Styles {
		if normalizeKey(key) == "" {
			errs = append(errs, errors.New("style key cannot be empty"))
		}
		if !nonEmptyList(profile.Hooks) {
			errs = append(errs, fmt.Errorf("style %q: hooks must be a non-empty list of non-empty strings", key))
		}
	}
	for key, profile := range f.Goals {
		if normalizeKey(key) == "" {
			errs = append(errs, errors.New("goal key cannot be empty"))
		}
		if !nonEmptyList(profile.Objectives) {
			errs = append(errs, fmt.Errorf("goal %q: objectives must be a non-empty list of non-empty strings", key))
		}
	}
	for key, profile := range f.Platforms {
		if normalizeKey(key) == "" {
			errs = append(errs, errors.New("platform key cannot be empty"))
		}
		if !nonEmptyList(profile.Rules) {
			errs = append(errs, fmt.Errorf("platform %q: rules must be a non-empty list of non-empty strings", key))
		}
		if !nonEmptyList(profile.CallsToAction) {
			errs = append(errs, fmt.Errorf("platform %q: calls_to_action must be a non-empty list of non-empty strings", key))
		}
	}
	for idx, set := range f.Executions {
		if len(set) < minExecutionBullets || len(set) > maxExecutionBullets {
			errs = append(errs, fmt.Errorf("executions[%d]: must have %d-%d bullets, got %d", idx, minExecutionBullets, maxExecutionBullets, len(set)))
			continue
		}
		if !nonEmptyList(set) {
			errs = append(errs, fmt.Errorf("executions[%d]: bullets cannot be empty", idx))
		}
	}
	return errors.Join(errs...)
}

func nonEmptyList(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return false
		}
	}
	return true
}
