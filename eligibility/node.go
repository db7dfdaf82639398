package eligibility

import (
	"context"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/pipeline"
	"github.com/rushteam/lendkit/pkg/utils"
)

// Node 是资格阶段的 Pipeline Node。
// 与通用过滤器不同，不合格候选不会被剔除，排序引擎需要带资格明细返回它们，
// 因此这里只标注资格结果并将概率清零。
type Node struct{}

func (n *Node) Name() string {
	return "filter.eligibility"
}

func (n *Node) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *Node) Process(
	_ context.Context,
	mctx *core.MatchContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if mctx == nil || mctx.Applicant == nil || len(candidates) == 0 {
		return candidates, nil
	}

	for _, c := range candidates {
		if c == nil || c.Lender == nil {
			continue
		}
		c.Eligibility = Check(mctx.Applicant, c.Lender)
		if !c.Eligibility.Eligible() {
			c.Probability = 0
			c.PutLabel("ineligible", utils.Label{
				Value:  c.Eligibility.FailureReason(),
				Source: "eligibility",
			})
		}
	}

	return candidates, nil
}
