package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/feature"
)

// MLPModel 是前馈神经网络打分模型（多层感知机）。
//
// 工程特征：
//   - 实时性：好（本地推理，无网络往返）
//   - 计算复杂度：中等（多层全连接）
//   - 可解释性：弱（解释由 rerank 阶段基于目录事实生成，不解释内部权重）
//
// 工件格式（JSON）：层结构、逐层权重/偏置，以及冻结的归一化参数
// （scaler_mean / scaler_std）。归一化是工件的一部分，推理时必须原样应用。
type MLPModel struct {
	// Sizes 是每层的神经元数量（不含输入层），例如 [32, 16, 1]
	Sizes []int

	// Weights[layer][neuron][input] 是逐层权重矩阵
	Weights [][][]float64

	// Biases[layer][neuron] 是逐层偏置
	Biases [][]float64

	// Scaler 是训练时拟合并冻结的标准化参数
	Scaler *feature.StandardScaler
}

type mlpArtifact struct {
	InputSize  int           `json:"input_size"`
	Layers     []int         `json:"layers"`
	Weights    [][][]float64 `json:"weights"`
	Biases     [][]float64   `json:"biases"`
	ScalerMean []float64     `json:"scaler_mean"`
	ScalerStd  []float64     `json:"scaler_std"`
}

// LoadMLPModel 从 JSON 工件加载训练好的 MLP 与冻结的 scaler。
// 工件缺失或结构不符返回 scorer-unavailable 错误。
func LoadMLPModel(path string) (*MLPModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read model artifact: %v", core.ErrScorerUnavailable, err)
	}
	var raw mlpArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse model artifact: %v", core.ErrScorerUnavailable, err)
	}

	if raw.InputSize != feature.Dim {
		return nil, fmt.Errorf("%w: artifact input_size %d, engine expects %d", core.ErrScorerUnavailable, raw.InputSize, feature.Dim)
	}
	if len(raw.Layers) == 0 || len(raw.Weights) != len(raw.Layers) || len(raw.Biases) != len(raw.Layers) {
		return nil, fmt.Errorf("%w: artifact layer structure mismatch", core.ErrScorerUnavailable)
	}

	scaler, err := feature.NewStandardScaler(raw.ScalerMean, raw.ScalerStd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrScorerUnavailable, err)
	}

	return &MLPModel{
		Sizes:   raw.Layers,
		Weights: raw.Weights,
		Biases:  raw.Biases,
		Scaler:  scaler,
	}, nil
}

func (m *MLPModel) Name() string { return "mlp" }

// Predict 对单个特征向量推理：冻结标准化 → 前向传播（隐藏层 ReLU）→ Sigmoid。
// 维度不匹配或 scaler 缺失返回 scorer-unavailable 错误，绝不静默返回默认概率。
func (m *MLPModel) Predict(vector []float64) (float64, error) {
	if len(vector) != feature.Dim {
		return 0, fmt.Errorf("%w: vector dimension %d, want %d", core.ErrScorerUnavailable, len(vector), feature.Dim)
	}
	if m.Scaler == nil {
		return 0, fmt.Errorf("%w: normalization parameters not loaded", core.ErrScorerUnavailable)
	}

	scaled, err := m.Scaler.Transform(vector)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", core.ErrScorerUnavailable, err)
	}

	return sigmoid(m.forward(scaled)), nil
}

// forward 前向传播，隐藏层使用 ReLU，最后一层不激活。
func (m *MLPModel) forward(input []float64) float64 {
	current := input
	for layer := 0; layer < len(m.Sizes); layer++ {
		next := make([]float64, m.Sizes[layer])
		for j := 0; j < m.Sizes[layer]; j++ {
			sum := m.Biases[layer][j]
			for k := 0; k < len(current) && k < len(m.Weights[layer][j]); k++ {
				sum += m.Weights[layer][j][k] * current[k]
			}
			if layer < len(m.Sizes)-1 {
				next[j] = relu(sum)
			} else {
				next[j] = sum
			}
		}
		current = next
	}
	if len(current) > 0 {
		return current[0]
	}
	return 0
}

// relu ReLU 激活函数。
func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// sigmoid Sigmoid 激活函数。
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

var _ Scorer = (*MLPModel)(nil)
