package lendkit

import (
	"context"

	"github.com/rushteam/lendkit/catalog"
	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/eligibility"
	"github.com/rushteam/lendkit/model"
	"github.com/rushteam/lendkit/rank"
	"github.com/rushteam/lendkit/rerank"
)

// Ranker 是开箱即用的排序入口：目录 + 打分器装配出默认链路
// （资格标注 → 可选规则过滤 → 模型打分排序 → 排名与解释）。
// 需要自定义链路时直接组装 Pipeline 即可，Ranker 只是常用形态的封装。
type Ranker struct {
	Catalog *catalog.Catalog
	Scorer  model.Scorer

	// Rules 可选的特殊资格规则集；为 nil 时 specialEligibility 仅作放款方侧标志
	Rules *eligibility.RuleSet
}

func NewRanker(c *catalog.Catalog, s model.Scorer) *Ranker {
	return &Ranker{Catalog: c, Scorer: s}
}

func (r *Ranker) pipeline() *Pipeline {
	nodes := []Node{&eligibility.Node{}}
	if r.Rules != nil && len(r.Rules.Rules) > 0 {
		nodes = append(nodes, &eligibility.RuleNode{Rules: r.Rules})
	}
	nodes = append(nodes,
		&rank.ScoreNode{Scorer: r.Scorer},
		&rerank.ExplainNode{},
	)
	return &Pipeline{Nodes: nodes}
}

func (r *Ranker) run(ctx context.Context, a *core.ApplicantProfile, params map[string]any) ([]*core.Candidate, error) {
	if r.Catalog == nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "ranker: nil catalog")
	}
	if a == nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "ranker: nil applicant")
	}
	if err := a.Validate(); err != nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, err.Error())
	}

	lenders := r.Catalog.Lenders()
	candidates := make([]*core.Candidate, 0, len(lenders))
	for _, l := range lenders {
		candidates = append(candidates, core.NewCandidate(l))
	}

	mctx := &core.MatchContext{Applicant: a, Params: params}
	return r.pipeline().Run(ctx, mctx, candidates)
}

// Rank 返回排好序的合格放款方，topK > 0 时截断到前 topK 个。
// 结果按概率降序，同分按放款方 id 升序；Rank 字段从 1 连续编号。
// Scorer 失败时错误原样上抛，不返回半成品结果。
func (r *Ranker) Rank(ctx context.Context, a *core.ApplicantProfile, topK int) ([]core.MatchResult, error) {
	return r.RankWithParams(ctx, a, topK, nil)
}

// RankWithParams 同 Rank，附带请求级参数（特殊资格规则取值来源）。
func (r *Ranker) RankWithParams(ctx context.Context, a *core.ApplicantProfile, topK int, params map[string]any) ([]core.MatchResult, error) {
	candidates, err := r.run(ctx, a, params)
	if err != nil {
		return nil, err
	}

	eligible := make([]*core.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c != nil && c.Eligibility.Eligible() {
			eligible = append(eligible, c)
		}
	}

	trunc := &rerank.TopNNode{N: topK}
	eligible, err = trunc.Process(ctx, nil, eligible)
	if err != nil {
		return nil, err
	}

	results := make([]core.MatchResult, 0, len(eligible))
	for _, c := range eligible {
		results = append(results, c.Result())
	}
	return results, nil
}

// RankWithEligibility 返回全量结果：排好序的合格放款方在前，
// 不合格的按目录顺序跟在后面并带资格明细，不截断。
func (r *Ranker) RankWithEligibility(ctx context.Context, a *core.ApplicantProfile) ([]core.MatchResult, error) {
	candidates, err := r.run(ctx, a, nil)
	if err != nil {
		return nil, err
	}

	results := make([]core.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		if c == nil {
			continue
		}
		results = append(results, c.Result())
	}
	return results, nil
}
