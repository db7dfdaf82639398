package core

import "fmt"

// EmploymentCriterion 是放款方对就业类别的约束。
// 通配（接受任意类别）用显式的 Any 标记建模，而不是魔法字符串 "any"，
// 避免与恰好叫 "any" 的业务取值混淆。
type EmploymentCriterion struct {
	Any   bool
	Types []EmploymentStatus
}

// AnyEmployment 返回接受任意就业类别的约束。
func AnyEmployment() EmploymentCriterion {
	return EmploymentCriterion{Any: true}
}

// EmploymentIn 返回只接受给定就业类别的约束。
func EmploymentIn(types ...EmploymentStatus) EmploymentCriterion {
	return EmploymentCriterion{Types: types}
}

// Matches 判断就业类别是否满足约束。
func (c EmploymentCriterion) Matches(s EmploymentStatus) bool {
	if c.Any {
		return true
	}
	for _, t := range c.Types {
		if t == s {
			return true
		}
	}
	return false
}

// PurposeCriterion 是放款方对贷款用途的约束，通配同样用 Any 标记建模。
type PurposeCriterion struct {
	Any     bool
	Purpose LoanPurpose
}

// AnyPurpose 返回接受任意贷款用途的约束。
func AnyPurpose() PurposeCriterion {
	return PurposeCriterion{Any: true}
}

// SpecificPurpose 返回只接受给定贷款用途的约束。
func SpecificPurpose(p LoanPurpose) PurposeCriterion {
	return PurposeCriterion{Purpose: p}
}

// Matches 判断贷款用途是否满足约束。
func (c PurposeCriterion) Matches(p LoanPurpose) bool {
	return c.Any || c.Purpose == p
}

// Lender 是目录持有的放款方记录。
// 进程启动时一次性加载，之后只读；跨组件边界按值复制。
type Lender struct {
	ID                 int
	Name               string
	MinLoanAmount      int
	MaxLoanAmount      int
	MinIncome          int
	Employment         EmploymentCriterion
	MinCreditScore     int
	InterestRate       float64 // 年利率（百分比）
	Purpose            PurposeCriterion
	SpecialEligibility string // 可选的特殊资格标签（如 "women"），空串表示无
}

// Validate 校验放款方记录，目录加载阶段 fail fast，绝不静默钳位。
func (l *Lender) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("lender %q: id must be > 0, got %d", l.Name, l.ID)
	}
	if l.Name == "" {
		return fmt.Errorf("lender %d: name is required", l.ID)
	}
	if l.MinLoanAmount <= 0 {
		return fmt.Errorf("lender %q: minLoanAmount must be > 0, got %d", l.Name, l.MinLoanAmount)
	}
	if l.MaxLoanAmount < l.MinLoanAmount {
		return fmt.Errorf("lender %q: maxLoanAmount %d < minLoanAmount %d", l.Name, l.MaxLoanAmount, l.MinLoanAmount)
	}
	if l.MinIncome < 0 {
		return fmt.Errorf("lender %q: minIncome must be >= 0, got %d", l.Name, l.MinIncome)
	}
	if l.MinCreditScore < 0 || l.MinCreditScore > 850 {
		return fmt.Errorf("lender %q: minCreditScore must be in [0,850], got %d", l.Name, l.MinCreditScore)
	}
	if l.InterestRate <= 0 {
		return fmt.Errorf("lender %q: interestRate must be > 0, got %v", l.Name, l.InterestRate)
	}
	if !l.Employment.Any {
		if len(l.Employment.Types) == 0 {
			return fmt.Errorf("lender %q: employment criterion must list types or be Any", l.Name)
		}
		for _, t := range l.Employment.Types {
			if !t.Valid() {
				return fmt.Errorf("lender %q: unknown employment type %q", l.Name, t)
			}
		}
	}
	if !l.Purpose.Any && !l.Purpose.Purpose.Valid() {
		return fmt.Errorf("lender %q: unknown loan purpose %q", l.Name, l.Purpose.Purpose)
	}
	return nil
}
