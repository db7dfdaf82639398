package core

import "fmt"

// EmploymentStatus 是申请人的就业类别（封闭枚举）。
type EmploymentStatus string

const (
	EmploymentSalaried     EmploymentStatus = "salaried"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentFreelancer   EmploymentStatus = "freelancer"
	EmploymentStudent      EmploymentStatus = "student"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
)

// EmploymentStatuses 是全部合法就业类别（顺序稳定，供数据合成采样使用）。
var EmploymentStatuses = []EmploymentStatus{
	EmploymentSalaried,
	EmploymentSelfEmployed,
	EmploymentFreelancer,
	EmploymentStudent,
	EmploymentUnemployed,
}

func (s EmploymentStatus) Valid() bool {
	for _, e := range EmploymentStatuses {
		if s == e {
			return true
		}
	}
	return false
}

// LoanPurpose 是贷款用途（封闭枚举）。
type LoanPurpose string

const (
	PurposeHome       LoanPurpose = "home"
	PurposeVehicle    LoanPurpose = "vehicle"
	PurposeEducation  LoanPurpose = "education"
	PurposeBusiness   LoanPurpose = "business"
	PurposeStartup    LoanPurpose = "startup"
	PurposeEco        LoanPurpose = "eco"
	PurposeEmergency  LoanPurpose = "emergency"
	PurposeGoldBacked LoanPurpose = "gold-backed"
	PurposePersonal   LoanPurpose = "personal"
)

// LoanPurposes 是全部合法贷款用途（顺序稳定，供数据合成采样使用）。
var LoanPurposes = []LoanPurpose{
	PurposeHome,
	PurposeVehicle,
	PurposeEducation,
	PurposeBusiness,
	PurposeStartup,
	PurposeEco,
	PurposeEmergency,
	PurposeGoldBacked,
	PurposePersonal,
}

func (p LoanPurpose) Valid() bool {
	for _, lp := range LoanPurposes {
		if p == lp {
			return true
		}
	}
	return false
}

// ApplicantProfile 是单次请求（或单个合成样本）的申请人画像。
// 值对象：跨组件边界按值复制，引擎本身不持久化。
type ApplicantProfile struct {
	LoanAmount       int              `json:"loanAmount"`
	AnnualIncome     int              `json:"annualIncome"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	CreditScore      int              `json:"creditScore"`
	LoanPurpose      LoanPurpose      `json:"loanPurpose"`
}

// Validate 校验申请人画像的取值范围。
func (a *ApplicantProfile) Validate() error {
	if a.LoanAmount <= 0 {
		return fmt.Errorf("applicant: loanAmount must be > 0, got %d", a.LoanAmount)
	}
	if a.AnnualIncome < 0 {
		return fmt.Errorf("applicant: annualIncome must be >= 0, got %d", a.AnnualIncome)
	}
	if a.CreditScore < 0 || a.CreditScore > 850 {
		return fmt.Errorf("applicant: creditScore must be in [0,850], got %d", a.CreditScore)
	}
	if !a.EmploymentStatus.Valid() {
		return fmt.Errorf("applicant: unknown employmentStatus %q", a.EmploymentStatus)
	}
	if !a.LoanPurpose.Valid() {
		return fmt.Errorf("applicant: unknown loanPurpose %q", a.LoanPurpose)
	}
	return nil
}
