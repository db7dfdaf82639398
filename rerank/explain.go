package rerank

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/pipeline"
	"github.com/rushteam/lendkit/pkg/utils"
	"github.com/rushteam/lendkit/quality"
)

// ExplainNode 是后处理 Node：给已排序的合格候选分配 1 起的排名，
// 并基于目录事实生成可读解释。不解释模型内部权重，只陈述哪些
// 目录事实对该放款方有利。
//
// 不合格候选不分配排名、不生成解释（Rank 保持 0）。
type ExplainNode struct{}

func (n *ExplainNode) Name() string {
	return "postprocess.explain"
}

func (n *ExplainNode) Kind() pipeline.Kind {
	return pipeline.KindPostProcess
}

func (n *ExplainNode) Process(
	_ context.Context,
	mctx *core.MatchContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if mctx == nil || mctx.Applicant == nil {
		return candidates, nil
	}

	rank := 0
	for _, c := range candidates {
		if c == nil || c.Lender == nil || !c.Eligibility.Eligible() {
			continue
		}
		rank++
		c.Rank = rank
		c.Explanation = Explain(mctx.Applicant, c.Lender)
		c.PutLabel("rank", utils.Label{Value: strconv.Itoa(rank), Source: "postprocess"})
	}

	return candidates, nil
}

// Explain 生成单个合格配对的解释文案：按固定顺序评估各条款，
// 以 "; " 连接；一条都不适用时返回固定兜底文案。
//
// 条款顺序：
//  1. 利率竞争力（利率低于市场均值 10.5）
//  2. 用途专精 / 用途灵活
//  3. 信用缓冲（>=100 strong，>=50 good，否则省略）
//  4. 收入充裕度（>=2.0x well exceeds，>=1.5x comfortably meets，否则省略）
func Explain(a *core.ApplicantProfile, l *core.Lender) string {
	var clauses []string

	if l.InterestRate < quality.MarketAvgRate {
		clauses = append(clauses, fmt.Sprintf("Competitive interest rate of %.1f%%", l.InterestRate))
	}

	switch {
	case !l.Purpose.Any && l.Purpose.Purpose == a.LoanPurpose:
		clauses = append(clauses, fmt.Sprintf("Specializes in %s loans", a.LoanPurpose))
	case l.Purpose.Any:
		clauses = append(clauses, "Offers flexible loan purposes")
	}

	creditBuffer := a.CreditScore - l.MinCreditScore
	switch {
	case creditBuffer >= 100:
		clauses = append(clauses, "Strong credit profile for this lender")
	case creditBuffer >= 50:
		clauses = append(clauses, "Good credit fit")
	}

	if l.MinIncome > 0 {
		incomeRatio := float64(a.AnnualIncome) / float64(l.MinIncome)
		switch {
		case incomeRatio >= 2.0:
			clauses = append(clauses, "Income well exceeds minimum requirement")
		case incomeRatio >= 1.5:
			clauses = append(clauses, "Income comfortably meets requirement")
		}
	}

	if len(clauses) == 0 {
		return "Standard eligibility match"
	}
	return strings.Join(clauses, "; ")
}
