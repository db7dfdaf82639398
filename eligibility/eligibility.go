// Package eligibility 实现硬性资格门：申请人对放款方的五项布尔检查。
//
// Check 是唯一实现，数据合成与在线排序共用同一代码路径，绝不重复实现。
package eligibility

import "github.com/rushteam/lendkit/core"

// Check 计算申请人对放款方的资格结果。纯函数，无副作用。
//
// 五项检查（边界均为闭区间）：
//   - 金额在区间内：minLoanAmount <= loanAmount <= maxLoanAmount
//   - 收入达标：annualIncome >= minIncome
//   - 信用达标：creditScore >= minCreditScore
//   - 就业匹配：放款方接受任意类别或包含申请人类别
//   - 用途匹配：放款方接受任意用途或等于申请人用途
func Check(a *core.ApplicantProfile, l *core.Lender) core.EligibilityResult {
	return core.EligibilityResult{
		AmountInRange:    l.MinLoanAmount <= a.LoanAmount && a.LoanAmount <= l.MaxLoanAmount,
		IncomeSufficient: a.AnnualIncome >= l.MinIncome,
		CreditSufficient: a.CreditScore >= l.MinCreditScore,
		EmploymentMatch:  l.Employment.Matches(a.EmploymentStatus),
		PurposeMatch:     l.Purpose.Matches(a.LoanPurpose),
	}
}
