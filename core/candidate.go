package core

import "github.com/rushteam/lendkit/pkg/utils"

// Candidate 是匹配链路中的统一承载结构：一个放款方在一次匹配中的全部状态。
// Pipeline 各阶段在其上累积资格、特征、概率、排名与解释；Labels 用于解释与观测。
type Candidate struct {
	Lender      *Lender
	Eligibility EligibilityResult
	Features    []float64 // 固定 10 维特征向量，由 rank 阶段写入
	Probability float64
	Rank        int // 1 起，仅合格候选分配；0 表示未排名
	Explanation string
	Labels      map[string]utils.Label
}

func NewCandidate(l *Lender) *Candidate {
	return &Candidate{
		Lender: l,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// Result 将候选折算为对外的 MatchResult。
// 展示分 = 概率 * 100；good-match 要求合格且概率 > 0.5。
func (c *Candidate) Result() MatchResult {
	eligible := c.Eligibility.Eligible()
	return MatchResult{
		LenderID:     c.Lender.ID,
		LenderName:   c.Lender.Name,
		Probability:  c.Probability,
		GoodMatch:    eligible && c.Probability > 0.5,
		Score:        c.Probability * 100,
		InterestRate: c.Lender.InterestRate,
		Eligible:     eligible,
		Eligibility:  c.Eligibility,
		Rank:         c.Rank,
		Explanation:  c.Explanation,
	}
}
