package model

import (
	"strconv"
	"strings"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/eligibility"
	"github.com/rushteam/lendkit/feature"
	"github.com/rushteam/lendkit/quality"
)

// QualityStub 是测试用的确定性 Scorer：对合格配对返回质量启发式分，
// 其余返回 0。接口保持只吃特征向量，Fit 阶段用共享的 Vectorize 预先
// 建立“向量指纹 -> 质量分”映射，保证桩与真实模型走完全相同的调用路径。
type QualityStub struct {
	scores map[string]float64
}

func NewQualityStub() *QualityStub {
	return &QualityStub{scores: make(map[string]float64)}
}

// Fit 针对给定申请人与放款方列表预计算质量分。
// 可对多个申请人反复调用，映射按向量指纹累积。
func (s *QualityStub) Fit(a *core.ApplicantProfile, lenders []*core.Lender) {
	for _, l := range lenders {
		if l == nil {
			continue
		}
		v := feature.Vectorize(a, l)
		if eligibility.Check(a, l).Eligible() {
			s.scores[fingerprint(v)] = quality.Score(a, l)
		} else {
			s.scores[fingerprint(v)] = 0
		}
	}
}

func (s *QualityStub) Name() string { return "quality_stub" }

// Predict 按向量指纹查表。未 Fit 过的向量返回 0（确定性兜底，便于测试）。
func (s *QualityStub) Predict(vector []float64) (float64, error) {
	return s.scores[fingerprint(vector)], nil
}

// fingerprint 生成向量的精确指纹（逐位比特级，无舍入）。
func fingerprint(vec []float64) string {
	var b strings.Builder
	for i, x := range vec {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.FormatFloat(x, 'b', -1, 64))
	}
	return b.String()
}

var _ Scorer = (*QualityStub)(nil)
