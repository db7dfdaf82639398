package dataset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/lendkit/catalog"
	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/feature"
	"github.com/rushteam/lendkit/quality"
)

// Synthesizer 批量合成训练样本：n 个画像 × 目录全量放款方，
// 共 n*|catalog| 行，顺序为画像序、画像内目录序。
//
// 并发按画像切分，每个画像用 Seed+profileID 派生出独立的随机序列，
// 因此固定 Seed 下输出与 worker 数无关，完全可复现。
type Synthesizer struct {
	Catalog *catalog.Catalog
	Seed    int64
	Workers int // <=0 时取 GOMAXPROCS
}

func NewSynthesizer(c *catalog.Catalog, seed int64) *Synthesizer {
	return &Synthesizer{Catalog: c, Seed: seed}
}

// Generate 合成 n 个画像的全量样本。
func (s *Synthesizer) Generate(ctx context.Context, n int) ([]Row, error) {
	if s.Catalog == nil {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput, "dataset: nil catalog")
	}
	if n <= 0 {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput, "dataset: profile count must be positive")
	}

	lenders := s.Catalog.Lenders()
	perProfile := len(lenders)
	rows := make([]Row, n*perProfile)

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for profileID := 0; profileID < n; profileID++ {
		id := profileID
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			applicant := NewProfileGenerator(s.Seed + int64(id)).Generate()
			base := id * perProfile
			for j, l := range lenders {
				rows[base+j] = buildRow(id, applicant, l)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// buildRow 对单个配对产出一行样本，标签与特征走在线同一份代码。
func buildRow(profileID int, a *core.ApplicantProfile, l *core.Lender) Row {
	good, score := quality.MatchLabel(a, l)
	label := 0
	if good {
		label = 1
	}

	lenderPurpose := "any"
	if !l.Purpose.Any {
		lenderPurpose = string(l.Purpose.Purpose)
	}

	return Row{
		ProfileID:            profileID,
		LenderID:             l.ID,
		LenderName:           l.Name,
		IsGoodMatch:          label,
		MatchScore:           score,
		Features:             feature.Vectorize(a, l),
		ApplicantLoanAmount:  a.LoanAmount,
		ApplicantIncome:      a.AnnualIncome,
		ApplicantCreditScore: a.CreditScore,
		ApplicantEmployment:  string(a.EmploymentStatus),
		ApplicantPurpose:     string(a.LoanPurpose),
		LenderInterestRate:   l.InterestRate,
		LenderPurpose:        lenderPurpose,
	}
}
