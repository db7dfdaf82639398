// Package quality 实现确定性的 0..1 匹配质量启发式。
//
// 仅用于合成训练标签，在线推理不使用：推理侧的概率来自训练好的 Scorer。
package quality

import (
	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/eligibility"
)

const (
	// MarketAvgRate 是固定的市场参考利率（百分比）。
	// 利率竞争力分量与解释文案共用此常量。
	MarketAvgRate = 10.5

	// GoodMatchThreshold 是二分类标签阈值：质量分 >= 0.6 记为 good-match。
	GoodMatchThreshold = 0.6
)

// Score 计算合格配对的匹配质量分，范围 [0,1]。
//
// 四个独立封顶 25 分的分量，除以固定的 100 分总上限并钳位 <= 1：
//  1. 利率竞争力：25 * max(0, avg - rate) / avg，利率不低于市场均值时为 0
//  2. 用途专精：完全匹配 25 分，通配放款方 10 分，否则 0
//  3. 信用缓冲：按 creditScore - minCreditScore 分档 25/20/15/10
//  4. 收入缓冲：按 annualIncome / minIncome 分档 25/20/15/10；
//     minIncome == 0 时固定给 15 分部分得分（无判别信号，不给满分）
//
// 不合格配对防御性返回 0.0（约定上调用方总是先检查资格，此返回值只是兜底）。
func Score(a *core.ApplicantProfile, l *core.Lender) float64 {
	if !eligibility.Check(a, l).Eligible() {
		return 0
	}

	score := 0.0
	maxScore := 0.0

	// 利率竞争力 (25%)
	if l.InterestRate < MarketAvgRate {
		score += 25 * (MarketAvgRate - l.InterestRate) / MarketAvgRate
	}
	maxScore += 25

	// 用途专精 (25%)
	switch {
	case !l.Purpose.Any && l.Purpose.Purpose == a.LoanPurpose:
		score += 25
	case l.Purpose.Any:
		score += 10 // 通配放款方拿部分得分
	}
	maxScore += 25

	// 信用缓冲 (25%)
	creditBuffer := a.CreditScore - l.MinCreditScore
	switch {
	case creditBuffer >= 100:
		score += 25
	case creditBuffer >= 50:
		score += 20
	case creditBuffer >= 20:
		score += 15
	case creditBuffer >= 0:
		score += 10
	}
	maxScore += 25

	// 收入缓冲 (25%)
	if l.MinIncome > 0 {
		incomeRatio := float64(a.AnnualIncome) / float64(l.MinIncome)
		switch {
		case incomeRatio >= 3.0:
			score += 25
		case incomeRatio >= 2.0:
			score += 20
		case incomeRatio >= 1.5:
			score += 15
		case incomeRatio >= 1.0:
			score += 10
		}
	} else {
		score += 15 // 无收入门槛时的固定部分得分
	}
	maxScore += 25

	s := score / maxScore
	if s > 1.0 {
		s = 1.0
	}
	return s
}

// MatchLabel 派生二分类标签与 0..100 展示分。
// 不合格配对返回 (false, 0)。
func MatchLabel(a *core.ApplicantProfile, l *core.Lender) (bool, float64) {
	if !eligibility.Check(a, l).Eligible() {
		return false, 0
	}
	s := Score(a, l)
	return s >= GoodMatchThreshold, s * 100
}
