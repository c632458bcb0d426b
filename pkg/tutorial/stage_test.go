package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/factorytutor/pkg/config"
)

func alwaysFalse(*Context) bool { return false }

func TestBuildStages_SplitsSentences(t *testing.T) {
	bundle := StaticBundle{"tutorial.a": "first\n\n   \nsecond\n"}

	stages, err := BuildStages([]StageDef{{Name: "a", Done: alwaysFalse}}, bundle, false)
	require.NoError(t, err)
	require.Len(t, stages, 1)

	assert.Equal(t, 0, stages[0].Ordinal())
	assert.Equal(t, "a", stages[0].Name())
	assert.Equal(t, []string{"first", "second"}, stages[0].Sentences())
	assert.Equal(t, 2, stages[0].SentenceCount())
}

func TestBuildStages_MobileVariant(t *testing.T) {
	bundle := StaticBundle{
		"tutorial.a":        "desktop",
		"tutorial.a.mobile": "mobile",
		"tutorial.b":        "desktop only",
	}
	defs := []StageDef{{Name: "a", Done: alwaysFalse}, {Name: "b", Done: alwaysFalse}}

	desktop, err := BuildStages(defs, bundle, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"desktop"}, desktop[0].Sentences())

	mobile, err := BuildStages(defs, bundle, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"mobile"}, mobile[0].Sentences())
	assert.Equal(t, []string{"desktop only"}, mobile[1].Sentences(), "falls back to the base key")
}

func TestBuildStages_Errors(t *testing.T) {
	tests := []struct {
		name   string
		defs   []StageDef
		bundle StaticBundle
		want   error
	}{
		{"empty", nil, StaticBundle{}, ErrNoStages},
		{"missing text", []StageDef{{Name: "a", Done: alwaysFalse}}, StaticBundle{}, ErrMissingText},
		{"blank text", []StageDef{{Name: "a", Done: alwaysFalse}}, StaticBundle{"tutorial.a": "\n \n"}, ErrNoSentences},
		{"no predicate", []StageDef{{Name: "a"}}, StaticBundle{"tutorial.a": "x"}, ErrNoPredicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStages(tt.defs, tt.bundle, false)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildStages_DuplicateName(t *testing.T) {
	bundle := StaticBundle{"tutorial.a": "x"}
	_, err := BuildStages([]StageDef{{Name: "a", Done: alwaysFalse}, {Name: "a", Done: alwaysFalse}}, bundle, false)
	assert.ErrorContains(t, err, "duplicate")
}

func TestStageText_FormatsOnlyTemplates(t *testing.T) {
	calls := 0
	def := StageDef{
		Name: "a",
		Done: alwaysFalse,
		Format: func(line string, c *Context) string {
			calls++
			return FormatLine(line, 3, 9)
		},
	}
	stages, err := BuildStages([]StageDef{def}, StaticBundle{"tutorial.a": "plain\ncount {0}/{1}"}, false)
	require.NoError(t, err)

	assert.Equal(t, "plain", stages[0].Text(nil, 0))
	assert.Equal(t, 0, calls)
	assert.Equal(t, "count 3/9", stages[0].Text(nil, 1))
	assert.Equal(t, 1, calls)
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "5 of 18", FormatLine("{0} of {1}", 5, 18))
	assert.Equal(t, "{0} stays", FormatLine("{0} stays"))
	assert.Equal(t, "a {1}", FormatLine("{0} {1}", "a"))
}

func TestDefaultStages_Order(t *testing.T) {
	defs := DefaultStages(config.DefaultTutorialConfig().Stages)

	var names []string
	for _, d := range defs {
		names = append(names, d.Name)
		assert.NotNil(t, d.Done, d.Name)
	}
	assert.Equal(t, []string{
		StageIntro, StageDrill, StageBlockInfo, StageConveyor, StageTurret, StageDrillTurret,
		StagePause, StageUnpause, StageBreaking, StageWithdraw, StageDeposit, StageWaves, StageLaunch,
	}, names)
}
