package quality

import (
	"math"
	"testing"

	"github.com/rushteam/lendkit/core"
)

const eps = 1e-9

func homeApplicant() *core.ApplicantProfile {
	return &core.ApplicantProfile{
		LoanAmount:       60000,
		AnnualIncome:     120000,
		EmploymentStatus: core.EmploymentSalaried,
		CreditScore:      780,
		LoanPurpose:      core.PurposeHome,
	}
}

func homeFund() *core.Lender {
	return &core.Lender{
		ID: 2, Name: "HomeFund Bank",
		MinLoanAmount: 50000, MaxLoanAmount: 500000,
		MinIncome:      50000,
		Employment:     core.EmploymentIn(core.EmploymentSalaried),
		MinCreditScore: 700,
		InterestRate:   8.9,
		Purpose:        core.SpecificPurpose(core.PurposeHome),
	}
}

func TestScore_HomeFundScenario(t *testing.T) {
	a := homeApplicant()
	l := homeFund()

	// 利率 25*(10.5-8.9)/10.5，用途专精 25，信用缓冲 80 -> 20，收入倍数 2.4 -> 20
	want := (25*(10.5-8.9)/10.5 + 25 + 20 + 20) / 100
	got := Score(a, l)
	if math.Abs(got-want) > eps {
		t.Fatalf("Score() = %v, want %v", got, want)
	}
	if got < GoodMatchThreshold {
		t.Errorf("strong home scenario should clear good-match threshold, got %v", got)
	}
}

func TestScore_NoIncomeRequirementPartialCredit(t *testing.T) {
	a := &core.ApplicantProfile{
		LoanAmount:       20000,
		AnnualIncome:     10000,
		EmploymentStatus: core.EmploymentStudent,
		CreditScore:      640,
		LoanPurpose:      core.PurposeEducation,
	}
	l := &core.Lender{
		ID: 3, Name: "EduFinance",
		MinLoanAmount: 10000, MaxLoanAmount: 200000,
		MinIncome:      0,
		Employment:     core.EmploymentIn(core.EmploymentStudent),
		MinCreditScore: 0,
		InterestRate:   6.5,
		Purpose:        core.SpecificPurpose(core.PurposeEducation),
	}

	// minIncome == 0 固定给 15 分；分母仍是 100
	want := (25*(10.5-6.5)/10.5 + 25 + 25 + 15) / 100
	got := Score(a, l)
	if math.Abs(got-want) > eps {
		t.Fatalf("Score() = %v, want %v", got, want)
	}
}

func TestScore_IneligibleReturnsZero(t *testing.T) {
	a := homeApplicant()
	a.CreditScore = 650 // 低于 HomeFund 的 700
	if got := Score(a, homeFund()); got != 0 {
		t.Errorf("ineligible pair should score 0, got %v", got)
	}
}

func TestScore_RateAtOrAboveMarketScoresNothing(t *testing.T) {
	a := homeApplicant()
	l := homeFund()
	l.InterestRate = MarketAvgRate

	want := (0 + 25 + 20 + 20) / 100.0
	if got := Score(a, l); math.Abs(got-want) > eps {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScore_WildcardPurposePartialCredit(t *testing.T) {
	a := homeApplicant()
	l := homeFund()
	l.Purpose = core.AnyPurpose()

	want := (25*(10.5-8.9)/10.5 + 10 + 20 + 20) / 100
	if got := Score(a, l); math.Abs(got-want) > eps {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScore_CreditBufferTiers(t *testing.T) {
	tests := []struct {
		credit int
		points float64
	}{
		{800, 25}, // buffer 100
		{799, 20}, // buffer 99
		{750, 20}, // buffer 50
		{749, 15}, // buffer 49
		{720, 15}, // buffer 20
		{719, 10}, // buffer 19
		{700, 10}, // buffer 0
	}
	l := homeFund()
	for _, tt := range tests {
		a := homeApplicant()
		a.CreditScore = tt.credit
		want := (25*(10.5-8.9)/10.5 + 25 + tt.points + 20) / 100
		if got := Score(a, l); math.Abs(got-want) > eps {
			t.Errorf("credit %d: Score() = %v, want %v", tt.credit, got, want)
		}
	}
}

func TestScore_IncomeRatioTiers(t *testing.T) {
	tests := []struct {
		income int
		points float64
	}{
		{150000, 25}, // 3.0x
		{149999, 20},
		{100000, 20}, // 2.0x
		{99999, 15},
		{75000, 15}, // 1.5x
		{74999, 10},
		{50000, 10}, // 1.0x
	}
	l := homeFund()
	for _, tt := range tests {
		a := homeApplicant()
		a.AnnualIncome = tt.income
		want := (25*(10.5-8.9)/10.5 + 25 + 20 + tt.points) / 100
		if got := Score(a, l); math.Abs(got-want) > eps {
			t.Errorf("income %d: Score() = %v, want %v", tt.income, got, want)
		}
	}
}

func TestScore_AlwaysInUnitRange(t *testing.T) {
	for _, credit := range []int{700, 750, 800, 850} {
		for _, income := range []int{50000, 100000, 200000, 500000} {
			a := homeApplicant()
			a.CreditScore = credit
			a.AnnualIncome = income
			got := Score(a, homeFund())
			if got < 0 || got > 1 {
				t.Fatalf("Score() = %v out of [0,1] (credit=%d income=%d)", got, credit, income)
			}
		}
	}
}

func TestMatchLabel(t *testing.T) {
	a := homeApplicant()
	l := homeFund()

	good, score := MatchLabel(a, l)
	if !good {
		t.Errorf("expected good match")
	}
	if math.Abs(score-Score(a, l)*100) > eps {
		t.Errorf("display score = %v, want %v", score, Score(a, l)*100)
	}

	a.CreditScore = 650
	good, score = MatchLabel(a, l)
	if good || score != 0 {
		t.Errorf("ineligible pair: got (%v, %v), want (false, 0)", good, score)
	}
}
