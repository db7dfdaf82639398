// Package feature 实现 (申请人, 放款方) 配对的定长数值编码与冻结归一化。
//
// Vectorize 是训练与推理之间唯一的共享契约：数据合成与在线排序调用同一个
// 函数，保证两侧编码逐位一致（train/serve skew 是静默退化，不会报错）。
package feature

import "github.com/rushteam/lendkit/core"

// Dim 是特征向量的固定维度。
const Dim = 10

// Names 是十个特征列名，顺序即向量槽位顺序，数据集输出与模型工件共用。
var Names = []string{
	"loan_amount_norm",
	"annual_income_norm",
	"credit_score_norm",
	"interest_rate_norm",
	"employment_match",
	"purpose_match",
	"special_eligibility",
	"loan_to_max_ratio",
	"income_multiple",
	"credit_buffer",
}

// Vectorize 将配对编码为 Dim 维特征向量。纯函数：无随机、无外部状态，
// 相同输入严格产生相同输出。
//
// 槽位语义：
//  0. min(loanAmount / 1_000_000, 1.0)
//  1. min(annualIncome / 500_000, 1.0)
//  2. creditScore / 850
//  3. interestRate / 20
//  4. 就业匹配 1.0/0.0（与资格检查同一规则）
//  5. 用途匹配 1.0/0.0（与资格检查同一规则）
//  6. 放款方带特殊资格标签则 1.0（放款方侧标志，不校验申请人是否满足）
//  7. loanAmount / maxLoanAmount，不钳位，对不合格配对可以 > 1.0，
//     保留跨过资格边界的梯度信号
//  8. annualIncome / minIncome；minIncome == 0 时取 1.0
//  9. max(0, (creditScore - minCreditScore) / 550)
//
// 除零已完全防护：槽位 8 对 minIncome==0 取 1.0，maxLoanAmount > 0 由目录校验保证。
func Vectorize(a *core.ApplicantProfile, l *core.Lender) []float64 {
	v := make([]float64, Dim)

	v[0] = min(float64(a.LoanAmount)/1_000_000, 1.0)
	v[1] = min(float64(a.AnnualIncome)/500_000, 1.0)
	v[2] = float64(a.CreditScore) / 850
	v[3] = l.InterestRate / 20

	if l.Employment.Matches(a.EmploymentStatus) {
		v[4] = 1.0
	}
	if l.Purpose.Matches(a.LoanPurpose) {
		v[5] = 1.0
	}
	if l.SpecialEligibility != "" {
		v[6] = 1.0
	}

	v[7] = float64(a.LoanAmount) / float64(l.MaxLoanAmount)
	if l.MinIncome > 0 {
		v[8] = float64(a.AnnualIncome) / float64(l.MinIncome)
	} else {
		v[8] = 1.0
	}
	v[9] = max(0, float64(a.CreditScore-l.MinCreditScore)/550)

	return v
}
