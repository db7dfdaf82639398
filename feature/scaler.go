package feature

import (
	"encoding/json"
	"fmt"
	"os"
)

// StandardScaler 是按槽位的 Z-score 标准化：z = (x - mean) / scale。
// 参数在训练时对训练集拟合一次、随后冻结，并作为模型工件的一部分持久化；
// 推理时必须原样应用同一组参数。
type StandardScaler struct {
	Mean  []float64 `json:"scaler_mean"`
	Scale []float64 `json:"scaler_std"`
}

// NewStandardScaler 用给定的均值/尺度向量构建 scaler，长度必须等于 Dim。
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) != Dim || len(scale) != Dim {
		return nil, fmt.Errorf("scaler: expected %d mean/scale entries, got %d/%d", Dim, len(mean), len(scale))
	}
	return &StandardScaler{Mean: mean, Scale: scale}, nil
}

// LoadScaler 从 JSON 工件加载冻结的归一化参数
// （字段 scaler_mean / scaler_std，各为长度 Dim 的向量）。
func LoadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact: %w", err)
	}
	var s StandardScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler artifact: %w", err)
	}
	return NewStandardScaler(s.Mean, s.Scale)
}

// Transform 对向量应用冻结的标准化，返回新向量（不修改输入）。
// 维度不匹配返回错误；scale 为 0 的槽位原样透传。
func (s *StandardScaler) Transform(vec []float64) ([]float64, error) {
	if len(vec) != len(s.Mean) {
		return nil, fmt.Errorf("scaler: dimension mismatch: got %d, want %d", len(vec), len(s.Mean))
	}
	out := make([]float64, len(vec))
	for i, x := range vec {
		if s.Scale[i] > 0 {
			out[i] = (x - s.Mean[i]) / s.Scale[i]
		} else {
			out[i] = x
		}
	}
	return out, nil
}
