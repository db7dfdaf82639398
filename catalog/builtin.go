package catalog

import "github.com/rushteam/lendkit/core"

// Default 返回内置的 15 家放款方目录。
// 数据与训练数据合成使用的目录一致，两侧必须看到同一份目录。
func Default() (*Catalog, error) {
	return New([]*core.Lender{
		{
			ID: 1, Name: "FastCash Inc.", MinLoanAmount: 1000, MaxLoanAmount: 5000,
			MinIncome:  20000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentSelfEmployed),
			MinCreditScore: 600, InterestRate: 12.5, Purpose: core.AnyPurpose(),
		},
		{
			ID: 2, Name: "HomeFund Bank", MinLoanAmount: 50000, MaxLoanAmount: 500000,
			MinIncome:  50000,
			Employment: core.EmploymentIn(core.EmploymentSalaried),
			MinCreditScore: 700, InterestRate: 8.9, Purpose: core.SpecificPurpose(core.PurposeHome),
		},
		{
			ID: 3, Name: "EduFinance", MinLoanAmount: 10000, MaxLoanAmount: 200000,
			MinIncome:  0,
			Employment: core.EmploymentIn(core.EmploymentStudent),
			MinCreditScore: 0, InterestRate: 6.5, Purpose: core.SpecificPurpose(core.PurposeEducation),
		},
		{
			ID: 4, Name: "BizGrow Capital", MinLoanAmount: 25000, MaxLoanAmount: 1000000,
			MinIncome:  100000,
			Employment: core.EmploymentIn(core.EmploymentSelfEmployed),
			MinCreditScore: 650, InterestRate: 10.5, Purpose: core.SpecificPurpose(core.PurposeBusiness),
		},
		{
			ID: 5, Name: "QuickPay Loans", MinLoanAmount: 500, MaxLoanAmount: 10000,
			MinIncome:  15000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentFreelancer, core.EmploymentSelfEmployed),
			MinCreditScore: 580, InterestRate: 13.0, Purpose: core.AnyPurpose(),
		},
		{
			ID: 6, Name: "CarCredit Bank", MinLoanAmount: 30000, MaxLoanAmount: 200000,
			MinIncome:  25000,
			Employment: core.EmploymentIn(core.EmploymentSalaried),
			MinCreditScore: 660, InterestRate: 9.5, Purpose: core.SpecificPurpose(core.PurposeVehicle),
		},
		{
			ID: 7, Name: "PersonalTrust", MinLoanAmount: 10000, MaxLoanAmount: 50000,
			MinIncome:  20000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentSelfEmployed),
			MinCreditScore: 620, InterestRate: 11.2, Purpose: core.AnyPurpose(),
		},
		{
			ID: 8, Name: "StartupFund", MinLoanAmount: 50000, MaxLoanAmount: 1000000,
			MinIncome:  0,
			Employment: core.EmploymentIn(core.EmploymentSelfEmployed),
			MinCreditScore: 0, InterestRate: 12.0, Purpose: core.SpecificPurpose(core.PurposeStartup),
		},
		{
			ID: 9, Name: "StudentLend", MinLoanAmount: 5000, MaxLoanAmount: 50000,
			MinIncome:  0,
			Employment: core.EmploymentIn(core.EmploymentStudent),
			MinCreditScore: 550, InterestRate: 7.0, Purpose: core.SpecificPurpose(core.PurposeEducation),
		},
		{
			ID: 10, Name: "HouseEasy", MinLoanAmount: 100000, MaxLoanAmount: 1000000,
			MinIncome:  75000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentSelfEmployed),
			MinCreditScore: 720, InterestRate: 8.5, Purpose: core.SpecificPurpose(core.PurposeHome),
		},
		{
			ID: 11, Name: "FreelanceFlex", MinLoanAmount: 5000, MaxLoanAmount: 30000,
			MinIncome:  20000,
			Employment: core.EmploymentIn(core.EmploymentFreelancer),
			MinCreditScore: 600, InterestRate: 12.7, Purpose: core.AnyPurpose(),
		},
		{
			ID: 12, Name: "WomenEmpower Finance", MinLoanAmount: 10000, MaxLoanAmount: 100000,
			MinIncome:  10000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentSelfEmployed),
			MinCreditScore: 600, InterestRate: 9.8, Purpose: core.AnyPurpose(),
			SpecialEligibility: "women",
		},
		{
			ID: 13, Name: "GreenLoan Co.", MinLoanAmount: 5000, MaxLoanAmount: 100000,
			MinIncome:  15000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentSelfEmployed),
			MinCreditScore: 640, InterestRate: 10.1, Purpose: core.SpecificPurpose(core.PurposeEco),
		},
		{
			ID: 14, Name: "EmergencyFund", MinLoanAmount: 1000, MaxLoanAmount: 20000,
			MinIncome:  10000,
			Employment: core.AnyEmployment(),
			MinCreditScore: 550, InterestRate: 14.5, Purpose: core.SpecificPurpose(core.PurposeEmergency),
		},
		{
			ID: 15, Name: "GoldSecure Loans", MinLoanAmount: 25000, MaxLoanAmount: 150000,
			MinIncome:  30000,
			Employment: core.EmploymentIn(core.EmploymentSalaried, core.EmploymentSelfEmployed),
			MinCreditScore: 610, InterestRate: 9.2, Purpose: core.SpecificPurpose(core.PurposeGoldBacked),
		},
	})
}
