package mission

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viralOverlay = `
version: "2025.1"
styles:
  viral:
    label: Viral
    prefix: "HOT TAKE:"
    hooks:
      - "Unpopular opinion: {topic} is easier than everyone says."
platforms:
  linkedin:
    rules:
      - "Only post on Tuesdays."
    calls_to_action:
      - "Comment MISSION below."
  tiktok:
    label: TikTok
    rules:
      - "Hook in the first second."
    calls_to_action:
      - "Follow for part two."
    suffix: "#fyp #veteran"
`

func TestParseBankOverlaysAndExtendsDefaults(t *testing.T) {
	bank, err := ParseBank([]byte(viralOverlay), nil)
	require.NoError(t, err)

	assert.Equal(t, "2025.1", bank.Version())
	assert.True(t, bank.HasStyle(Style("viral")))
	assert.True(t, bank.HasStyle(StyleDirect), "defaults must survive an overlay")
	assert.True(t, bank.HasPlatform(Platform("tiktok")))

	styleValues := make([]string, 0)
	for _, option := range bank.StyleOptions() {
		styleValues = append(styleValues, option.Value)
	}
	assert.Equal(t, []string{"direct", "motivational", "tactical", "storytelling", "viral"}, styleValues)

	linkedin, ok := bank.Platform(PlatformLinkedIn)
	require.True(t, ok)
	assert.Equal(t, "LinkedIn", linkedin.Label)
	assert.Equal(t, []string{"Only post on Tuesdays."}, linkedin.Rules)

	assert.False(t, DefaultBank().HasStyle(Style("viral")), "overlay must not mutate the default bank")

	got := NewComposer(bank, &sequenceSource{}).Compose(Request{Platform: "tiktok", Topic: "ugc", Style: "viral"})
	assert.Empty(t, got.Fallbacks)
	assert.True(t, strings.HasPrefix(got.Text, "HOT TAKE: Unpopular opinion: ugc is easier than everyone says."))
	assert.True(t, strings.HasSuffix(got.Text, "Follow for part two.\n\n#fyp #veteran"))
}

func TestParseBankRejectsEmptyLists(t *testing.T) {
	_, err := ParseBank([]byte(`
styles:
  blank:
    hooks: []
platforms:
  fax:
    rules: ["Use cover sheets."]
executions:
  - ["one", "two"]
`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `style "blank"`)
	assert.Contains(t, err.Error(), `platform "fax": calls_to_action`)
	assert.Contains(t, err.Error(), "executions[0]")
}

func TestParseBankRejectsUnknownFields(t *testing.T) {
	_, err := ParseBank([]byte("stylez: {}\n"), nil)
	require.Error(t, err)
}

func TestParseBankEmptyDocumentKeepsBase(t *testing.T) {
	bank, err := ParseBank(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBankVersion, bank.Version())
	assert.Len(t, bank.Executions(), len(defaultExecutionSets))
}

func TestLoadBankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasebank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(viralOverlay), 0o600))

	bank, err := LoadBankFile(path, DefaultBank())
	require.NoError(t, err)
	assert.True(t, bank.HasStyle(Style("viral")))

	_, err = LoadBankFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
