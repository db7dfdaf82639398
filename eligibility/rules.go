package eligibility

import (
	"context"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/pipeline"
	"github.com/rushteam/lendkit/pkg/dsl"
	"github.com/rushteam/lendkit/pkg/utils"
)

// RuleSet 将放款方的特殊资格标签映射到准入规则（CEL 表达式）。
// 例如标签 "women" 可配置为 `params.gender == "female"`。
// 没有标签或没有对应规则的放款方视为准入。
type RuleSet struct {
	// Rules key 为 specialEligibility 标签，value 为 CEL 表达式
	Rules map[string]string
}

// Allows 判断申请请求是否满足放款方的特殊资格规则。
func (rs *RuleSet) Allows(mctx *core.MatchContext, lender *core.Lender) (bool, error) {
	if rs == nil || lender == nil || lender.SpecialEligibility == "" {
		return true, nil
	}
	expr, ok := rs.Rules[lender.SpecialEligibility]
	if !ok {
		return true, nil
	}
	return dsl.NewEval(mctx, lender).Evaluate(expr)
}

// RuleNode 是可选的特殊资格过滤 Node：剔除不满足准入规则的候选。
// 不在默认链路中，基础排序只把 specialEligibility 当作放款方侧标志，
// 只有配置了规则集的部署才启用此 Node。
type RuleNode struct {
	Rules *RuleSet
}

func (n *RuleNode) Name() string {
	return "filter.rule"
}

func (n *RuleNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *RuleNode) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Rules == nil || len(n.Rules.Rules) == 0 || len(candidates) == 0 {
		return candidates, nil
	}

	out := make([]*core.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Lender == nil {
			continue
		}
		ok, err := n.Rules.Allows(mctx, c.Lender)
		if err != nil {
			// 规则错误时保留候选，不中断流程
			out = append(out, c)
			continue
		}
		if !ok {
			c.PutLabel("filtered", utils.Label{
				Value:  c.Lender.SpecialEligibility,
				Source: "rule",
			})
			continue
		}
		out = append(out, c)
	}

	return out, nil
}
