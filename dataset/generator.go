// Package dataset 合成训练数据：带相关性的申请人画像采样，
// 对目录中每家放款方产出一行带标签的特征记录。
//
// 标签、特征与资格判定全部复用在线推理的同一份代码
// （eligibility.Check / quality.MatchLabel / feature.Vectorize），
// 训练侧与服务侧不存在第二份实现。
package dataset

import (
	"math/rand"

	"github.com/rushteam/lendkit/core"
)

// ProfileGenerator 按固定种子生成申请人画像。
// 各字段并非独立均匀采样，而是带相关性：
// 收入依赖就业形态，信用分依赖就业形态与收入，贷款金额依赖用途与收入。
// 同一种子产出同一序列。
type ProfileGenerator struct {
	r *rand.Rand
}

func NewProfileGenerator(seed int64) *ProfileGenerator {
	return &ProfileGenerator{r: rand.New(rand.NewSource(seed))}
}

// randInt 返回 [lo, hi] 闭区间内的均匀随机整数。
func (g *ProfileGenerator) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Generate 采样一个画像。采样顺序固定：就业形态、收入、信用分、用途、金额。
func (g *ProfileGenerator) Generate() *core.ApplicantProfile {
	employment := core.EmploymentStatuses[g.r.Intn(len(core.EmploymentStatuses))]

	var income int
	switch employment {
	case core.EmploymentStudent:
		income = g.randInt(0, 30000)
	case core.EmploymentUnemployed:
		income = g.randInt(0, 15000)
	case core.EmploymentFreelancer:
		income = g.randInt(15000, 150000)
	case core.EmploymentSelfEmployed:
		income = g.randInt(25000, 300000)
	default: // salaried
		income = g.randInt(20000, 200000)
	}

	var credit int
	switch {
	case employment == core.EmploymentStudent || employment == core.EmploymentUnemployed:
		credit = g.randInt(300, 650)
	case income < 30000:
		credit = g.randInt(550, 700)
	case income < 75000:
		credit = g.randInt(600, 750)
	default:
		credit = g.randInt(650, 850)
	}

	purpose := core.LoanPurposes[g.r.Intn(len(core.LoanPurposes))]

	var amount int
	switch purpose {
	case core.PurposeHome:
		amount = g.randInt(50000, max(100000, min(income*5, 1000000)))
	case core.PurposeVehicle:
		amount = g.randInt(15000, max(30000, min(income*3, 200000)))
	case core.PurposeEducation:
		amount = g.randInt(5000, max(25000, min(max(income, 50000), 200000)))
	case core.PurposeBusiness, core.PurposeStartup:
		amount = g.randInt(25000, max(50000, min(income*4, 1000000)))
	default: // personal, eco, emergency, gold-backed
		amount = g.randInt(1000, max(10000, min(income*2, 100000)))
	}

	return &core.ApplicantProfile{
		LoanAmount:       amount,
		AnnualIncome:     income,
		EmploymentStatus: employment,
		CreditScore:      credit,
		LoanPurpose:      purpose,
	}
}
