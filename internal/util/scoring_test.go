package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCompletions(t *testing.T) {
	got := ScoreCompletions("pg", []string{"PostgreSQL", "Go", "Ping"}, 0)
	assert.Contains(t, got, "PostgreSQL")
	assert.NotContains(t, got, "Go")

	assert.Nil(t, ScoreCompletions("zzz", []string{"Go"}, 5))
	assert.Equal(t, []string{"a", "b"}, ScoreCompletions("", []string{"a", "b", "c"}, 2))
	assert.Equal(t, []string{"a", "b", "c"}, ScoreCompletions("", []string{"a", "b", "c"}, 0))
}

func TestSuggestSkills(t *testing.T) {
	got := SuggestSkills("kube", 3)
	if assert.NotEmpty(t, got) {
		assert.Equal(t, "Kubernetes", got[0])
	}
	assert.LessOrEqual(t, len(SuggestSkills("a", 3)), 3)
}

func TestSuggestSocials(t *testing.T) {
	got := SuggestSocials("linked", 1)
	assert.Equal(t, []string{"LinkedIn"}, got)
}

func TestScoreCompletionsExactMatchFirst(t *testing.T) {
	candidates := []string{"Google Cloud", "GoLand", "Go"}
	got := ScoreCompletions("go", candidates, 0)
	assert.Len(t, got, 3)
	assert.Equal(t, "Go", got[0])
	assert.Equal(t, []string{"Go"}, ScoreCompletions("GO", candidates, 1))
}
