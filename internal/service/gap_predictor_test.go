package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"adaptive_learning_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdRule(t *testing.T) {
	rule := ThresholdRule{Cutoff: 60}

	tests := []struct {
		name     string
		features []float64
		want     int
	}{
		{"below cutoff struggles", []float64{50, 120, 2}, 1},
		{"above cutoff does well", []float64{80, 120, 2}, 0},
		{"at cutoff does well", []float64{60, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Predict(tt.features)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThresholdRuleRejectsWrongShape(t *testing.T) {
	rule := ThresholdRule{Cutoff: 60}

	_, err := rule.Predict([]float64{50})
	assert.Error(t, err)
}

func TestLogisticModel(t *testing.T) {
	// 权重只看第一个特征，等价于 60 分阈值
	m := &LogisticModel{
		Weights:   []float64{-1, 0, 0},
		Bias:      59.5,
		Threshold: 0.5,
	}

	got, err := m.Predict([]float64{50, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = m.Predict([]float64{80, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestLoadGapPredictorFromArtifact(t *testing.T) {
	dir := t.TempDir()
	artifact := `{"weights":[-1,0,0],"bias":59.5,"threshold":0.5}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gap.json"), []byte(artifact), 0644))

	p := LoadGapPredictor(context.Background(), &LocalArtifactStore{Dir: dir}, config.ModelsConfig{
		GapArtifact: "gap.json",
		Threshold:   60,
	})

	_, ok := p.(*LogisticModel)
	assert.True(t, ok, "expected artifact-backed model, got %T", p)

	got, err := p.Predict([]float64{50, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestLoadGapPredictorFallsBackWhenMissing(t *testing.T) {
	p := LoadGapPredictor(context.Background(), &LocalArtifactStore{Dir: t.TempDir()}, config.ModelsConfig{
		GapArtifact: "gap.json",
		Threshold:   60,
	})

	rule, ok := p.(ThresholdRule)
	require.True(t, ok, "expected threshold fallback, got %T", p)
	assert.Equal(t, float64(60), rule.Cutoff)
}

func TestLoadGapPredictorFallsBackOnCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gap.json"), []byte("not json"), 0644))

	p := LoadGapPredictor(context.Background(), &LocalArtifactStore{Dir: dir}, config.ModelsConfig{
		GapArtifact: "gap.json",
		Threshold:   60,
	})

	_, ok := p.(ThresholdRule)
	assert.True(t, ok, "expected threshold fallback, got %T", p)
}

func TestLoadGapPredictorWithoutStore(t *testing.T) {
	p := LoadGapPredictor(context.Background(), nil, config.ModelsConfig{Threshold: 60})

	_, ok := p.(ThresholdRule)
	assert.True(t, ok)
}
