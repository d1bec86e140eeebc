package questionnaire

import (
	"testing"

	"github.com/calvinmclean/survey/ask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	def, err := ParseBytes([]byte(validYAML))
	require.NoError(t, err)

	questions, err := Build(def)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, "first_name", questions[0].Key)
	first, ok := questions[0].Question.(ask.Input)
	require.True(t, ok)
	assert.Equal(t, "What is your first name?", first.Prompt)
	assert.Equal(t, "We use this in the welcome message", first.Help)
	assert.Nil(t, first.Default)

	team, ok := questions[1].Question.(ask.Input)
	require.True(t, ok)
	require.NotNil(t, team.Default)
	assert.Equal(t, "platform", *team.Default)
	require.NotNil(t, team.Transform, "case: lower should compile to a transform")
	assert.Equal(t, "devtools", team.Transform("DevTools"))

	subscribe, ok := questions[2].Question.(ask.Confirm)
	require.True(t, ok)
	require.NotNil(t, subscribe.Default)
	assert.True(t, *subscribe.Default)
}

func TestBuild_PatternValidator(t *testing.T) {
	def := validDefinition()
	def.Spec.Questions[0].Pattern = `^[a-z]+$`

	questions, err := Build(def)
	require.NoError(t, err)

	in, ok := questions[0].Question.(ask.Input)
	require.True(t, ok)
	require.NotNil(t, in.Validate)
	assert.True(t, in.Validate("calvin"))
	assert.False(t, in.Validate("Calvin1"))
}

func TestBuild_InvalidDefinition(t *testing.T) {
	def := validDefinition()
	def.Spec.Questions[0].Type = "select"

	_, err := Build(def)
	assert.Error(t, err)
}

func TestBuild_ResolvesWithScriptedSources(t *testing.T) {
	def, err := ParseBytes([]byte(validYAML))
	require.NoError(t, err)

	questions, err := Build(def)
	require.NoError(t, err)

	answers := ask.AskMany(questions, []ask.LineSource{
		ask.Static("Calvin"),
		ask.Static("DevTools"),
		ask.Static(""),
	})

	assert.Equal(t, []ask.KeyedAnswer{
		{Key: "first_name", Answer: ask.StringAnswer{Value: "Calvin"}},
		{Key: "team", Answer: ask.StringAnswer{Value: "devtools"}},
		{Key: "subscribe", Answer: ask.BoolAnswer{Value: true}},
	}, answers)
}
