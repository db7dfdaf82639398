package dataset

import (
	"context"
	"testing"

	"github.com/rushteam/lendkit/catalog"
	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/eligibility"
	"github.com/rushteam/lendkit/feature"
	"github.com/rushteam/lendkit/quality"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	return cat
}

func TestProfileGenerator_SeedIdempotence(t *testing.T) {
	g1 := NewProfileGenerator(42)
	g2 := NewProfileGenerator(42)
	for i := 0; i < 100; i++ {
		a, b := g1.Generate(), g2.Generate()
		if *a != *b {
			t.Fatalf("profile %d differs for same seed: %+v vs %+v", i, a, b)
		}
	}
}

func TestProfileGenerator_CorrelatedRanges(t *testing.T) {
	g := NewProfileGenerator(7)
	for i := 0; i < 2000; i++ {
		a := g.Generate()
		if err := a.Validate(); err != nil {
			t.Fatalf("profile %d invalid: %v", i, err)
		}

		switch a.EmploymentStatus {
		case core.EmploymentStudent:
			if a.AnnualIncome > 30000 {
				t.Fatalf("student income %d exceeds 30000", a.AnnualIncome)
			}
		case core.EmploymentUnemployed:
			if a.AnnualIncome > 15000 {
				t.Fatalf("unemployed income %d exceeds 15000", a.AnnualIncome)
			}
		case core.EmploymentFreelancer:
			if a.AnnualIncome < 15000 || a.AnnualIncome > 150000 {
				t.Fatalf("freelancer income %d out of [15000,150000]", a.AnnualIncome)
			}
		case core.EmploymentSelfEmployed:
			if a.AnnualIncome < 25000 || a.AnnualIncome > 300000 {
				t.Fatalf("self-employed income %d out of [25000,300000]", a.AnnualIncome)
			}
		case core.EmploymentSalaried:
			if a.AnnualIncome < 20000 || a.AnnualIncome > 200000 {
				t.Fatalf("salaried income %d out of [20000,200000]", a.AnnualIncome)
			}
		}

		switch {
		case a.EmploymentStatus == core.EmploymentStudent || a.EmploymentStatus == core.EmploymentUnemployed:
			if a.CreditScore < 300 || a.CreditScore > 650 {
				t.Fatalf("student/unemployed credit %d out of [300,650]", a.CreditScore)
			}
		case a.AnnualIncome < 30000:
			if a.CreditScore < 550 || a.CreditScore > 700 {
				t.Fatalf("low income credit %d out of [550,700]", a.CreditScore)
			}
		case a.AnnualIncome < 75000:
			if a.CreditScore < 600 || a.CreditScore > 750 {
				t.Fatalf("mid income credit %d out of [600,750]", a.CreditScore)
			}
		default:
			if a.CreditScore < 650 || a.CreditScore > 850 {
				t.Fatalf("high income credit %d out of [650,850]", a.CreditScore)
			}
		}
	}
}

func TestSynthesizer_RowCountAndOrder(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	syn := NewSynthesizer(cat, 1)

	const n = 50
	rows, err := syn.Generate(ctx, n)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(rows) != n*cat.Len() {
		t.Fatalf("row count = %d, want %d", len(rows), n*cat.Len())
	}

	lenders := cat.Lenders()
	for i, row := range rows {
		wantProfile := i / cat.Len()
		wantLender := lenders[i%cat.Len()]
		if row.ProfileID != wantProfile {
			t.Fatalf("row %d profile id = %d, want %d", i, row.ProfileID, wantProfile)
		}
		if row.LenderID != wantLender.ID {
			t.Fatalf("row %d lender id = %d, want %d", i, row.LenderID, wantLender.ID)
		}
		if len(row.Features) != feature.Dim {
			t.Fatalf("row %d feature dim = %d, want %d", i, len(row.Features), feature.Dim)
		}
	}
}

// 同一种子下输出与 worker 数无关。
func TestSynthesizer_SeedIdempotentAcrossWorkers(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)

	serial := &Synthesizer{Catalog: cat, Seed: 42, Workers: 1}
	parallel := &Synthesizer{Catalog: cat, Seed: 42, Workers: 8}

	r1, err := serial.Generate(ctx, 40)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	r2, err := parallel.Generate(ctx, 40)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(r1) != len(r2) {
		t.Fatalf("lengths differ: %d vs %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i].ProfileID != r2[i].ProfileID ||
			r1[i].LenderID != r2[i].LenderID ||
			r1[i].IsGoodMatch != r2[i].IsGoodMatch ||
			r1[i].MatchScore != r2[i].MatchScore {
			t.Fatalf("row %d differs across worker counts:\n%+v\n%+v", i, r1[i], r2[i])
		}
		for j := range r1[i].Features {
			if r1[i].Features[j] != r2[i].Features[j] {
				t.Fatalf("row %d feature %d differs: %v vs %v", i, j, r1[i].Features[j], r2[i].Features[j])
			}
		}
	}
}

// 标签与特征必须和在线同一份代码完全一致。
func TestSynthesizer_RowsMatchSharedCodePath(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	syn := NewSynthesizer(cat, 7)

	rows, err := syn.Generate(ctx, 20)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, row := range rows {
		a := &core.ApplicantProfile{
			LoanAmount:       row.ApplicantLoanAmount,
			AnnualIncome:     row.ApplicantIncome,
			EmploymentStatus: core.EmploymentStatus(row.ApplicantEmployment),
			CreditScore:      row.ApplicantCreditScore,
			LoanPurpose:      core.LoanPurpose(row.ApplicantPurpose),
		}
		l, ok := cat.ByID(row.LenderID)
		if !ok {
			t.Fatalf("unknown lender id %d", row.LenderID)
		}

		wantGood, wantScore := quality.MatchLabel(a, l)
		wantLabel := 0
		if wantGood {
			wantLabel = 1
		}
		if row.IsGoodMatch != wantLabel || row.MatchScore != wantScore {
			t.Fatalf("label mismatch for profile %d lender %d: got (%d, %v), want (%d, %v)",
				row.ProfileID, row.LenderID, row.IsGoodMatch, row.MatchScore, wantLabel, wantScore)
		}

		wantVec := feature.Vectorize(a, l)
		for j := range wantVec {
			if row.Features[j] != wantVec[j] {
				t.Fatalf("feature %d mismatch: %v vs %v", j, row.Features[j], wantVec[j])
			}
		}

		if row.IsGoodMatch == 1 && !eligibility.Check(a, l).Eligible() {
			t.Fatalf("positive label on ineligible pair (profile %d lender %d)", row.ProfileID, row.LenderID)
		}
		if row.MatchScore < 0 || row.MatchScore > 100 {
			t.Fatalf("match score %v out of [0,100]", row.MatchScore)
		}
	}
}

func TestSynthesizer_InvalidInput(t *testing.T) {
	ctx := context.Background()
	syn := NewSynthesizer(testCatalog(t), 1)
	if _, err := syn.Generate(ctx, 0); !core.IsInvalidInput(err) {
		t.Errorf("n=0 should be invalid-input, got %v", err)
	}
	nilSyn := &Synthesizer{}
	if _, err := nilSyn.Generate(ctx, 10); !core.IsInvalidInput(err) {
		t.Errorf("nil catalog should be invalid-input, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	syn := NewSynthesizer(testCatalog(t), 3)
	rows, err := syn.Generate(ctx, 30)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	s := Summarize(rows)
	if s.TotalRecords != len(rows) {
		t.Errorf("TotalRecords = %d, want %d", s.TotalRecords, len(rows))
	}
	if s.PositiveRate < 0 || s.PositiveRate > 1 {
		t.Errorf("PositiveRate = %v out of [0,1]", s.PositiveRate)
	}
	for _, col := range []string{"loan_amount_norm", "annual_income_norm", "credit_score_norm"} {
		st, ok := s.FeatureStats[col]
		if !ok {
			t.Fatalf("missing stats for %s", col)
		}
		if st.Min > st.Mean || st.Mean > st.Max {
			t.Errorf("%s: inconsistent stats %+v", col, st)
		}
	}
}
