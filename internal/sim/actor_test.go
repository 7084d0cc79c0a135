package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
)

// fixedRand always returns the same sample
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
func (f fixedRand) Intn(int) int     { return 0 }

func TestActor_CheckSkill(t *testing.T) {
	a := NewActor("a", domain.RaceHuman, domain.Point3D{X: 1, Y: 1}, 80, fixedRand(0.5))

	tests := []struct {
		name     string
		min, max float64
		want     bool
	}{
		{"below min always fails", 90, 120, false},
		{"at max always succeeds", 0, 80, true},
		{"chance above roll", 0, 120, true},   // 80/120 > 0.5
		{"chance below roll", 60, 120, false}, // 20/60 < 0.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.CheckSkill(domain.SkillMining, tt.min, tt.max))
		})
	}

	assert.Equal(t, 80.0, a.SkillValue(domain.SkillFishing))
	assert.Equal(t, domain.MapFelucca, a.Map())
}

func TestActor_Messages(t *testing.T) {
	a := NewActor("a", domain.RaceElf, domain.Point3D{}, 0, fixedRand(0))
	a.SendMessage("one")
	a.SendMessage("two")

	msgs := a.Messages()
	msgs[0] = "changed"
	assert.Equal(t, []string{"one", "two"}, a.Messages())
}

func TestTool_Use(t *testing.T) {
	tool := NewTool(domain.ToolAxe, 2)

	assert.Equal(t, 1, tool.Use())
	assert.False(t, tool.Deleted())
	assert.Equal(t, 0, tool.Use())
	assert.True(t, tool.Deleted())
	assert.Equal(t, 0, tool.UsesRemaining())
}

func TestActor_StoneMining(t *testing.T) {
	a := NewActor("a", domain.RaceHuman, domain.Point3D{X: 1, Y: 1}, 100, fixedRand(0))
	assert.False(t, a.StoneMining())

	a.stone = true
	assert.True(t, a.StoneMining())
}
