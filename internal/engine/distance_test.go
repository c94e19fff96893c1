package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedDistanceClamps(t *testing.T) {
	p := FixedDistance{Miles: 100}
	assert.Equal(t, 100, p.NextDistance(500))
	assert.Equal(t, 40, p.NextDistance(40))
	assert.Equal(t, 1, FixedDistance{Miles: 0}.NextDistance(500))
}

func TestSeededDistanceStaysInRange(t *testing.T) {
	p := NewSeededDistance(7, 90, 180)
	for i := 0; i < 200; i++ {
		d := p.NextDistance(2000)
		assert.GreaterOrEqual(t, d, 90)
		assert.LessOrEqual(t, d, 180)
	}
}

func TestSeededDistanceRespectsBudget(t *testing.T) {
	p := NewSeededDistance(7, 90, 180)
	for i := 0; i < 50; i++ {
		d := p.NextDistance(60)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 60)
	}
}

func TestSeededDistanceIsDeterministic(t *testing.T) {
	a := NewSeededDistance(42, 90, 180)
	b := NewSeededDistance(42, 90, 180)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.NextDistance(2000), b.NextDistance(2000))
	}
}
