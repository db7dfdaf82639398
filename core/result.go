package core

// EligibilityResult 是硬性资格门的五项事实。
// 不变量：五项全部为 true 时（且仅当此时）申请人对该放款方合格，本阶段没有部分得分。
type EligibilityResult struct {
	AmountInRange    bool `json:"loanAmountInRange"`
	IncomeSufficient bool `json:"incomeRequirement"`
	CreditSufficient bool `json:"creditScoreRequirement"`
	EmploymentMatch  bool `json:"employmentTypeMatch"`
	PurposeMatch     bool `json:"purposeMatch"`
}

// Eligible 返回五项检查是否全部通过。
func (r EligibilityResult) Eligible() bool {
	return r.AmountInRange && r.IncomeSufficient && r.CreditSufficient &&
		r.EmploymentMatch && r.PurposeMatch
}

// FailureReason 返回首个未通过的检查名（固定顺序），全部通过时返回空串。
// 用于 labels / explain / 观测。
func (r EligibilityResult) FailureReason() string {
	switch {
	case !r.AmountInRange:
		return "loan_amount_out_of_range"
	case !r.IncomeSufficient:
		return "income_below_minimum"
	case !r.CreditSufficient:
		return "credit_score_below_minimum"
	case !r.EmploymentMatch:
		return "employment_type_mismatch"
	case !r.PurposeMatch:
		return "purpose_mismatch"
	default:
		return ""
	}
}

// MatchResult 是排序引擎对单个放款方的输出。
// Rank 仅在合格子集内分配（1 起），0 表示未参与排名（不合格）。
type MatchResult struct {
	LenderID     int               `json:"lender_id"`
	LenderName   string            `json:"lender_name"`
	Probability  float64           `json:"match_probability"`
	GoodMatch    bool              `json:"is_good_match"`
	Score        float64           `json:"match_score"` // 0..100 展示分
	InterestRate float64           `json:"interest_rate"`
	Eligible     bool              `json:"is_eligible"`
	Eligibility  EligibilityResult `json:"eligibility_details"`
	Rank         int               `json:"rank,omitempty"`
	Explanation  string            `json:"explanation,omitempty"`
}
