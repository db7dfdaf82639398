package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/feature"
)

// LRModel 实现了逻辑回归 (Logistic Regression) 打分模型。
//
// 预测原理：
//  1. 冻结标准化: x' = (x - mean) / scale
//  2. 线性加权求和: z = Bias + sum(Weight_i * x'_i)
//  3. Sigmoid 变换: P = 1 / (1 + exp(-z))
//
// 相比 MLP 更轻量、可快速迭代，是上线初期或降级场景的常用选择。
type LRModel struct {
	Bias    float64
	Weights []float64 // 长度为 feature.Dim，槽位与特征向量一一对应
	Scaler  *feature.StandardScaler
}

type lrArtifact struct {
	Bias       float64   `json:"bias"`
	Weights    []float64 `json:"weights"`
	ScalerMean []float64 `json:"scaler_mean"`
	ScalerStd  []float64 `json:"scaler_std"`
}

// LoadLRModel 从 JSON 工件加载逻辑回归权重与冻结的 scaler。
func LoadLRModel(path string) (*LRModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read model artifact: %v", core.ErrScorerUnavailable, err)
	}
	var raw lrArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse model artifact: %v", core.ErrScorerUnavailable, err)
	}
	if len(raw.Weights) != feature.Dim {
		return nil, fmt.Errorf("%w: artifact has %d weights, engine expects %d", core.ErrScorerUnavailable, len(raw.Weights), feature.Dim)
	}
	scaler, err := feature.NewStandardScaler(raw.ScalerMean, raw.ScalerStd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrScorerUnavailable, err)
	}
	return &LRModel{Bias: raw.Bias, Weights: raw.Weights, Scaler: scaler}, nil
}

func (m *LRModel) Name() string { return "lr" }

func (m *LRModel) Predict(vector []float64) (float64, error) {
	if len(vector) != len(m.Weights) {
		return 0, fmt.Errorf("%w: vector dimension %d, want %d", core.ErrScorerUnavailable, len(vector), len(m.Weights))
	}

	x := vector
	if m.Scaler != nil {
		scaled, err := m.Scaler.Transform(vector)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", core.ErrScorerUnavailable, err)
		}
		x = scaled
	}

	z := m.Bias
	for i, w := range m.Weights {
		z += w * x[i]
	}
	return sigmoid(z), nil
}

var _ Scorer = (*LRModel)(nil)
