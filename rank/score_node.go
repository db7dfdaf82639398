package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/feature"
	"github.com/rushteam/lendkit/model"
	"github.com/rushteam/lendkit/pipeline"
	"github.com/rushteam/lendkit/pkg/utils"
)

// ScoreNode 是打分排序 Node（不限定模型类型，MLP/LR/桩均可）。
//   - 对合格候选：共享 Vectorize 编码 -> Scorer.Predict -> 写入概率
//   - 不合格候选：概率保持 0，不进模型
//   - 写入 labels：scored_by
//   - 排序：合格在前，概率降序，同分按放款方 id 升序，与输入顺序无关
//
// Scorer 失败对整个排序调用是致命的，错误原样向上传播（scorer-unavailable），
// 由调用方决定是否降级为仅资格结果。
type ScoreNode struct {
	Scorer model.Scorer
}

func (n *ScoreNode) Name() string        { return "rank.score" }
func (n *ScoreNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ScoreNode) Process(
	_ context.Context,
	mctx *core.MatchContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}
	if n.Scorer == nil {
		return nil, fmt.Errorf("%w: no scorer wired", core.ErrScorerUnavailable)
	}
	if mctx == nil || mctx.Applicant == nil {
		return candidates, nil
	}

	for _, c := range candidates {
		if c == nil || c.Lender == nil {
			continue
		}
		if !c.Eligibility.Eligible() {
			c.Probability = 0
			continue
		}

		c.Features = feature.Vectorize(mctx.Applicant, c.Lender)
		p, err := n.Scorer.Predict(c.Features)
		if err != nil {
			return nil, fmt.Errorf("score lender %d: %w", c.Lender.ID, err)
		}
		c.Probability = p
		c.PutLabel("scored_by", utils.Label{Value: n.Scorer.Name(), Source: "rank"})
	}

	sortCandidates(candidates)
	return candidates, nil
}

// sortCandidates 做确定性全排序：合格在前；合格内概率降序、同分按 id 升序；
// 不合格之间保持输入（目录）顺序。
func sortCandidates(candidates []*core.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci == nil {
			return false
		}
		if cj == nil {
			return true
		}
		ei, ej := ci.Eligibility.Eligible(), cj.Eligibility.Eligible()
		if ei != ej {
			return ei
		}
		if !ei {
			return false
		}
		if ci.Probability != cj.Probability {
			return ci.Probability > cj.Probability
		}
		return ci.Lender.ID < cj.Lender.ID
	})
}
