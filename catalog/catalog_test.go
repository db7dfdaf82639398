package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/store"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if cat.Len() != 15 {
		t.Fatalf("built-in catalog has %d lenders, want 15", cat.Len())
	}

	l, ok := cat.ByID(2)
	if !ok {
		t.Fatal("lender 2 not found")
	}
	if l.Name != "HomeFund Bank" || l.InterestRate != 8.9 {
		t.Errorf("lender 2 = %+v", l)
	}

	if l, _ := cat.ByID(12); l.SpecialEligibility != "women" {
		t.Errorf("lender 12 special eligibility = %q, want women", l.SpecialEligibility)
	}
	if l, _ := cat.ByID(14); !l.Employment.Any {
		t.Errorf("lender 14 should accept any employment")
	}
	if l, _ := cat.ByID(3); l.MinIncome != 0 || l.MinCreditScore != 0 {
		t.Errorf("lender 3 should have zero income/credit floors, got %+v", l)
	}
}

func TestNew_Validation(t *testing.T) {
	valid := func() *core.Lender {
		return &core.Lender{
			ID: 1, Name: "Test",
			MinLoanAmount: 1000, MaxLoanAmount: 5000,
			MinIncome: 0, Employment: core.AnyEmployment(),
			MinCreditScore: 600, InterestRate: 10.0,
			Purpose: core.AnyPurpose(),
		}
	}

	tests := []struct {
		name   string
		mutate func(*core.Lender)
	}{
		{"max below min", func(l *core.Lender) { l.MaxLoanAmount = 500 }},
		{"zero min loan amount", func(l *core.Lender) { l.MinLoanAmount = 0 }},
		{"negative min income", func(l *core.Lender) { l.MinIncome = -1 }},
		{"credit score above 850", func(l *core.Lender) { l.MinCreditScore = 900 }},
		{"zero interest rate", func(l *core.Lender) { l.InterestRate = 0 }},
		{"empty name", func(l *core.Lender) { l.Name = "" }},
		{"zero id", func(l *core.Lender) { l.ID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(l)
			if _, err := New([]*core.Lender{l}); !core.IsInvalidInput(err) {
				t.Errorf("expected invalid-input error, got %v", err)
			}
		})
	}
}

func TestNew_DuplicateID(t *testing.T) {
	cat, _ := Default()
	lenders := cat.Lenders()
	dup := *lenders[0]
	dup.Name = "Duplicate"
	if _, err := New(append(lenders, &dup)); !core.IsInvalidInput(err) {
		t.Errorf("duplicate id should be invalid-input, got %v", err)
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New(nil); !core.IsInvalidInput(err) {
		t.Errorf("empty catalog should be invalid-input, got %v", err)
	}
}

func TestLenderConfig_WildcardConversion(t *testing.T) {
	c := LenderConfig{
		ID: 1, Name: "Test",
		MinLoanAmount: 1000, MaxLoanAmount: 5000,
		EmploymentTypes: []string{"any"},
		MinCreditScore:  600, InterestRate: 10.0,
		// LoanPurpose 缺省
	}
	l := c.ToLender()
	if !l.Employment.Any {
		t.Errorf("employmentTypes [any] should convert to wildcard variant")
	}
	if !l.Purpose.Any {
		t.Errorf("missing loanPurpose should convert to wildcard variant")
	}

	c.EmploymentTypes = []string{"salaried", "student"}
	c.LoanPurpose = "home"
	l = c.ToLender()
	if l.Employment.Any || len(l.Employment.Types) != 2 {
		t.Errorf("explicit employment types should convert to list, got %+v", l.Employment)
	}
	if l.Purpose.Any || l.Purpose.Purpose != core.PurposeHome {
		t.Errorf("explicit purpose should convert to tagged variant, got %+v", l.Purpose)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lenders.yaml")
	data := `lenders:
  - id: 1
    name: Alpha Loans
    minLoanAmount: 1000
    maxLoanAmount: 10000
    minIncome: 20000
    employmentTypes: [salaried]
    minCreditScore: 600
    interestRate: 11.5
    loanPurpose: any
  - id: 2
    name: Beta Housing
    minLoanAmount: 50000
    maxLoanAmount: 500000
    minIncome: 50000
    employmentTypes: [salaried, self-employed]
    minCreditScore: 700
    interestRate: 8.5
    loanPurpose: home
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("loaded %d lenders, want 2", cat.Len())
	}
	l, _ := cat.ByID(2)
	if l.Purpose.Any || l.Purpose.Purpose != core.PurposeHome {
		t.Errorf("lender 2 purpose = %+v, want home", l.Purpose)
	}
}

func TestLoadFromYAML_InvalidLenderFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lenders.yaml")
	data := `lenders:
  - id: 1
    name: Broken
    minLoanAmount: 10000
    maxLoanAmount: 500
    minCreditScore: 600
    interestRate: 11.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromYAML(path); !core.IsInvalidInput(err) {
		t.Errorf("invalid lender should fail load, got %v", err)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	defer ms.Close()

	cat, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	const key = "catalog:snapshot"
	if err := SaveSnapshot(ctx, ms, key, cat); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	loaded, err := LoadSnapshot(ctx, ms, key)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if loaded.Len() != cat.Len() {
		t.Fatalf("loaded %d lenders, want %d", loaded.Len(), cat.Len())
	}
	for _, want := range cat.Lenders() {
		got, ok := loaded.ByID(want.ID)
		if !ok {
			t.Fatalf("lender %d missing after round trip", want.ID)
		}
		if got.Name != want.Name || got.InterestRate != want.InterestRate ||
			got.Employment.Any != want.Employment.Any ||
			got.Purpose.Any != want.Purpose.Any ||
			got.SpecialEligibility != want.SpecialEligibility {
			t.Errorf("lender %d differs after round trip:\ngot  %+v\nwant %+v", want.ID, got, want)
		}
	}
}

func TestLoadSnapshot_MissingKey(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	defer ms.Close()

	if _, err := LoadSnapshot(ctx, ms, "absent"); !core.IsNotFound(err) {
		t.Errorf("missing key should be not-found, got %v", err)
	}
}
