package questionnaire

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinmclean/survey/ask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleAnswers() []ask.KeyedAnswer {
	return []ask.KeyedAnswer{
		{Key: "first_name", Answer: ask.StringAnswer{Value: "Calvin"}},
		{Key: "subscribe", Answer: ask.BoolAnswer{Value: false}},
		{Key: "email", Answer: ask.ErrorAnswer{Kind: ask.KindValidation}},
	}
}

func TestReport(t *testing.T) {
	entries := Report(sampleAnswers())

	assert.Equal(t, []Entry{
		{Key: "first_name", Value: "Calvin"},
		{Key: "subscribe", Value: false},
		{Key: "email", Error: "validation"},
	}, entries)
}

func TestMarshalReport(t *testing.T) {
	data, err := MarshalReport(sampleAnswers())
	require.NoError(t, err)

	var decoded struct {
		Answers []struct {
			Key   string `yaml:"key"`
			Value any    `yaml:"value"`
			Error string `yaml:"error"`
		} `yaml:"answers"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	require.Len(t, decoded.Answers, 3)
	assert.Equal(t, "first_name", decoded.Answers[0].Key)
	assert.Equal(t, "Calvin", decoded.Answers[0].Value)
	assert.Equal(t, false, decoded.Answers[1].Value)
	assert.Equal(t, "validation", decoded.Answers[2].Error)
	assert.Nil(t, decoded.Answers[2].Value)
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yml")
	require.NoError(t, WriteReport(path, sampleAnswers()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first_name")
	assert.Contains(t, string(data), "Calvin")
}
