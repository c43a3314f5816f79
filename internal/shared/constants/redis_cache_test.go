package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeys(t *testing.T) {
	assert.Equal(t, "cinepulse:movies:detail:id:42", BuildMovieDetailKey(42))
	assert.Equal(t, "cinepulse:halls:detail:id:7", BuildHallDetailKey(7))
}

func TestInvalidationPatterns(t *testing.T) {
	assert.Equal(t,
		[]string{PATTERN_INVALIDATE_MOVIES_ALL, PATTERN_INVALIDATE_HALLS_ALL},
		InvalidationPatterns(ENTITY_MOVIE))
	assert.Equal(t, []string{PATTERN_INVALIDATE_HALLS_ALL}, InvalidationPatterns(ENTITY_CINEMA_HALL))
	assert.Nil(t, InvalidationPatterns("screening"))
}
