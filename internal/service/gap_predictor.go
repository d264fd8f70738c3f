package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/pkg/logger"

	"go.uber.org/zap"
)

// GapFeatureCount 预测输入固定三个特征：最近得分、用时、已完成主题数
const GapFeatureCount = 3

// GapPredictor 学习差距预测器。返回 1 表示可能吃力，0 表示状态良好。
// 实现要么是启动时载入的训练工件，要么是硬编码的阈值规则，二选一，
// 进程运行期间不再变化。
type GapPredictor interface {
	Predict(features []float64) (int, error)
}

// ThresholdRule 回退规则：最近得分低于 Cutoff 判为吃力
type ThresholdRule struct {
	Cutoff float64
}

func (p ThresholdRule) Predict(features []float64) (int, error) {
	if len(features) != GapFeatureCount {
		return 0, fmt.Errorf("expected %d features, got %d", GapFeatureCount, len(features))
	}
	if features[0] < p.Cutoff {
		return 1, nil
	}
	return 0, nil
}

// LogisticModel 从 JSON 工件反序列化的逻辑回归模型
type LogisticModel struct {
	Weights   []float64 `json:"weights"`
	Bias      float64   `json:"bias"`
	Threshold float64   `json:"threshold"`
}

func (m *LogisticModel) Predict(features []float64) (int, error) {
	if len(features) != GapFeatureCount {
		return 0, fmt.Errorf("expected %d features, got %d", GapFeatureCount, len(features))
	}
	z := m.Bias
	for i, w := range m.Weights {
		z += w * features[i]
	}
	p := 1 / (1 + math.Exp(-z))
	if p >= m.Threshold {
		return 1, nil
	}
	return 0, nil
}

// LoadGapPredictor 启动时解析一次预测器：配置了工件且能读到就用工件，
// 否则退回阈值规则。工件损坏只降级，不阻断启动。
func LoadGapPredictor(ctx context.Context, store ArtifactStore, cfg config.ModelsConfig) GapPredictor {
	fallback := ThresholdRule{Cutoff: cfg.Threshold}

	if cfg.GapArtifact == "" || store == nil {
		logger.Log.Info("no gap model artifact configured, using threshold rule",
			zap.Float64("cutoff", cfg.Threshold))
		return fallback
	}

	rc, err := store.Fetch(ctx, cfg.GapArtifact)
	if err != nil {
		logger.Log.Warn("gap model artifact unavailable, using threshold rule",
			zap.String("artifact", cfg.GapArtifact), zap.Error(err))
		return fallback
	}
	defer rc.Close()

	var m LogisticModel
	if err := json.NewDecoder(rc).Decode(&m); err != nil {
		logger.Log.Warn("gap model artifact corrupt, using threshold rule",
			zap.String("artifact", cfg.GapArtifact), zap.Error(err))
		return fallback
	}
	if len(m.Weights) != GapFeatureCount {
		logger.Log.Warn("gap model artifact has wrong shape, using threshold rule",
			zap.Int("weights", len(m.Weights)))
		return fallback
	}
	if m.Threshold == 0 {
		m.Threshold = 0.5
	}

	logger.Log.Info("gap model artifact loaded", zap.String("artifact", cfg.GapArtifact))
	return &m
}
