package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/lendkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("applicant", cel.DynType),
		cel.Variable("lender", cel.DynType),
		cel.Variable("params", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是资格规则 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 申请人字段：applicant.credit_score >= 700 / applicant.loan_purpose == "home"
//   - 放款方字段：lender.special_eligibility == "women"
//   - 请求参数：params.gender == "female" / params.region in ["north", "south"]
//   - 逻辑组合：params.gender == "female" && applicant.annual_income > 10000
//
// 示例：
//   - `params.gender == "female"` → 特殊资格标签 "women" 的准入规则
//   - `applicant.credit_score >= 650 || params.has_collateral == true`
type Eval struct {
	mctx   *core.MatchContext
	lender *core.Lender
	env    *cel.Env
}

// NewEval 创建一个新的规则解释器。
func NewEval(mctx *core.MatchContext, lender *core.Lender) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		mctx:   mctx,
		lender: lender,
		env:    env,
	}
}

// Evaluate 解析并执行规则表达式，返回布尔结果。
// 空表达式视为恒真。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 应使用 params.key != null 检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	applicant := map[string]interface{}{}
	if e.mctx != nil && e.mctx.Applicant != nil {
		a := e.mctx.Applicant
		applicant = map[string]interface{}{
			"loan_amount":       a.LoanAmount,
			"annual_income":     a.AnnualIncome,
			"credit_score":      a.CreditScore,
			"employment_status": string(a.EmploymentStatus),
			"loan_purpose":      string(a.LoanPurpose),
		}
	}

	lender := map[string]interface{}{}
	if e.lender != nil {
		lender = map[string]interface{}{
			"id":                  e.lender.ID,
			"name":                e.lender.Name,
			"min_income":          e.lender.MinIncome,
			"min_credit_score":    e.lender.MinCreditScore,
			"interest_rate":       e.lender.InterestRate,
			"special_eligibility": e.lender.SpecialEligibility,
		}
	}

	params := map[string]interface{}{}
	if e.mctx != nil && e.mctx.Params != nil {
		params = e.mctx.Params
	}

	return map[string]interface{}{
		"applicant": applicant,
		"lender":    lender,
		"params":    params,
	}
}
