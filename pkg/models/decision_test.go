package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecisionClamp(t *testing.T) {
	d := Decision{
		ThinkAloud:     "hmm",
		EmotionalState: "ecstatic",
		Confidence:     1.7,
		TaskProgress:   -20,
	}
	d.Clamp()

	assert.Equal(t, 1.0, d.Confidence)
	assert.Equal(t, 0, d.TaskProgress)
	assert.Equal(t, EmotionNeutral, d.EmotionalState, "unknown emotions normalize to neutral")

	d = Decision{EmotionalState: EmotionFrustrated, Confidence: -0.2, TaskProgress: 140}
	d.Clamp()
	assert.Equal(t, 0.0, d.Confidence)
	assert.Equal(t, 100, d.TaskProgress)
	assert.Equal(t, EmotionFrustrated, d.EmotionalState, "known emotions pass through")
}

func TestFrustrationFamily(t *testing.T) {
	assert.True(t, FrustrationFamily(EmotionFrustrated))
	assert.True(t, FrustrationFamily(EmotionAnxious))
	assert.True(t, FrustrationFamily(EmotionConfused))
	assert.False(t, FrustrationFamily(EmotionCurious))
	assert.False(t, FrustrationFamily(EmotionSatisfied))
	assert.False(t, FrustrationFamily("ecstatic"))
}
