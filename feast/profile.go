package feast

import (
	"context"
	"fmt"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/pkg/conv"
)

// 申请人画像在 Feature Store 中的默认特征名。
const (
	FeatureLoanAmount   = "applicant_profile:loan_amount"
	FeatureAnnualIncome = "applicant_profile:annual_income"
	FeatureEmployment   = "applicant_profile:employment_status"
	FeatureCreditScore  = "applicant_profile:credit_score"
	FeatureLoanPurpose  = "applicant_profile:loan_purpose"
)

// ProfileLoader 从 Feature Store 在线读取申请人画像。
// 申请请求只携带 applicant_id 时，用它补全画像再进排序链路。
type ProfileLoader struct {
	Client Client

	// EntityKey 实体主键名，缺省 "applicant_id"
	EntityKey string
}

func NewProfileLoader(client Client) *ProfileLoader {
	return &ProfileLoader{Client: client, EntityKey: "applicant_id"}
}

// Load 按申请人 id 读取画像。任一字段缺失或非法都返回错误，不做猜测补全。
func (p *ProfileLoader) Load(ctx context.Context, applicantID int64) (*core.ApplicantProfile, error) {
	if p.Client == nil {
		return nil, fmt.Errorf("feast client not configured")
	}
	key := p.EntityKey
	if key == "" {
		key = "applicant_id"
	}

	resp, err := p.Client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features: []string{
			FeatureLoanAmount,
			FeatureAnnualIncome,
			FeatureEmployment,
			FeatureCreditScore,
			FeatureLoanPurpose,
		},
		EntityRows: []map[string]interface{}{
			{key: applicantID},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.FeatureVectors) != 1 {
		return nil, fmt.Errorf("expected 1 feature vector, got %d", len(resp.FeatureVectors))
	}
	values := resp.FeatureVectors[0].Values

	loanAmount, ok := conv.ToInt(values[FeatureLoanAmount])
	if !ok {
		return nil, fmt.Errorf("applicant %d: missing feature %s", applicantID, FeatureLoanAmount)
	}
	income, ok := conv.ToInt(values[FeatureAnnualIncome])
	if !ok {
		return nil, fmt.Errorf("applicant %d: missing feature %s", applicantID, FeatureAnnualIncome)
	}
	credit, ok := conv.ToInt(values[FeatureCreditScore])
	if !ok {
		return nil, fmt.Errorf("applicant %d: missing feature %s", applicantID, FeatureCreditScore)
	}
	employment, ok := conv.ToString(values[FeatureEmployment])
	if !ok {
		return nil, fmt.Errorf("applicant %d: missing feature %s", applicantID, FeatureEmployment)
	}
	purpose, ok := conv.ToString(values[FeatureLoanPurpose])
	if !ok {
		return nil, fmt.Errorf("applicant %d: missing feature %s", applicantID, FeatureLoanPurpose)
	}

	a := &core.ApplicantProfile{
		LoanAmount:       loanAmount,
		AnnualIncome:     income,
		EmploymentStatus: core.EmploymentStatus(employment),
		CreditScore:      credit,
		LoanPurpose:      core.LoanPurpose(purpose),
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("applicant %d: %w", applicantID, err)
	}
	return a, nil
}
