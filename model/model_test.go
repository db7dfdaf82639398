package model

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/lendkit/core"
	"github.com/rushteam/lendkit/feature"
)

func identityScaler() *feature.StandardScaler {
	mean := make([]float64, feature.Dim)
	scale := make([]float64, feature.Dim)
	for i := range scale {
		scale[i] = 1.0
	}
	s, _ := feature.NewStandardScaler(mean, scale)
	return s
}

func TestLRModel_Predict(t *testing.T) {
	weights := make([]float64, feature.Dim)
	weights[0] = 2.0
	weights[1] = -1.0
	m := &LRModel{Bias: 0.5, Weights: weights, Scaler: identityScaler()}

	vec := make([]float64, feature.Dim)
	vec[0] = 1.0
	vec[1] = 0.5

	// z = 0.5 + 2*1 - 1*0.5 = 2.0
	want := 1.0 / (1.0 + math.Exp(-2.0))
	got, err := m.Predict(vec)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestLRModel_DimensionMismatch(t *testing.T) {
	m := &LRModel{Weights: make([]float64, feature.Dim)}
	_, err := m.Predict(make([]float64, 3))
	if err == nil {
		t.Fatal("expected error for wrong vector length")
	}
	if !core.IsUnavailable(err) {
		t.Errorf("error should be scorer-unavailable, got %v", err)
	}
	if !errors.Is(err, core.ErrScorerUnavailable) {
		t.Errorf("error should wrap ErrScorerUnavailable, got %v", err)
	}
}

func TestMLPModel_Forward(t *testing.T) {
	// 单隐藏层 2 神经元 + 输出层 1 神经元，手工可验的小网络
	m := &MLPModel{
		Sizes: []int{2, 1},
		Weights: [][][]float64{
			{
				append([]float64{1.0, 1.0}, make([]float64, feature.Dim-2)...),
				append([]float64{-1.0, 0.0}, make([]float64, feature.Dim-2)...),
			},
			{{1.0, 2.0}},
		},
		Biases: [][]float64{
			{0.0, 0.5},
			{-0.25},
		},
		Scaler: identityScaler(),
	}

	vec := make([]float64, feature.Dim)
	vec[0] = 0.5
	vec[1] = 0.25

	// 隐藏层: h0 = relu(0.5+0.25) = 0.75; h1 = relu(-0.5+0.5) = 0
	// 输出: z = -0.25 + 1*0.75 + 2*0 = 0.5
	want := 1.0 / (1.0 + math.Exp(-0.5))
	got, err := m.Predict(vec)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestMLPModel_MissingScaler(t *testing.T) {
	m := &MLPModel{Sizes: []int{1}, Weights: [][][]float64{{make([]float64, feature.Dim)}}, Biases: [][]float64{{0}}}
	_, err := m.Predict(make([]float64, feature.Dim))
	if !errors.Is(err, core.ErrScorerUnavailable) {
		t.Errorf("missing scaler should be scorer-unavailable, got %v", err)
	}
}

func TestLoadMLPModel_Artifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	artifact := `{
		"input_size": 10,
		"layers": [1],
		"weights": [[[0,0,0,0,0,0,0,0,0,0]]],
		"biases": [[0.0]],
		"scaler_mean": [0,0,0,0,0,0,0,0,0,0],
		"scaler_std": [1,1,1,1,1,1,1,1,1,1]
	}`
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadMLPModel(path)
	if err != nil {
		t.Fatalf("LoadMLPModel() error = %v", err)
	}

	// 全零权重 + 零偏置 -> sigmoid(0) = 0.5
	got, err := m.Predict(make([]float64, feature.Dim))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got != 0.5 {
		t.Errorf("Predict() = %v, want 0.5", got)
	}
}

func TestLoadMLPModel_WrongInputSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	artifact := `{"input_size": 7, "layers": [1], "weights": [[[0]]], "biases": [[0]], "scaler_mean": [0], "scaler_std": [1]}`
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMLPModel(path); !errors.Is(err, core.ErrScorerUnavailable) {
		t.Errorf("wrong input_size should be scorer-unavailable, got %v", err)
	}
}

func TestLoadMLPModel_MissingFile(t *testing.T) {
	if _, err := LoadMLPModel(filepath.Join(t.TempDir(), "absent.json")); !errors.Is(err, core.ErrScorerUnavailable) {
		t.Errorf("missing artifact should be scorer-unavailable, got %v", err)
	}
}

func TestLoadLRModel_Artifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lr.json")
	artifact := `{
		"bias": 1.0,
		"weights": [0,0,0,0,0,0,0,0,0,0],
		"scaler_mean": [0,0,0,0,0,0,0,0,0,0],
		"scaler_std": [1,1,1,1,1,1,1,1,1,1]
	}`
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadLRModel(path)
	if err != nil {
		t.Fatalf("LoadLRModel() error = %v", err)
	}
	got, err := m.Predict(make([]float64, feature.Dim))
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	want := 1.0 / (1.0 + math.Exp(-1.0))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Predict() = %v, want %v", got, want)
	}
}

func TestQualityStub(t *testing.T) {
	a := &core.ApplicantProfile{
		LoanAmount:       60000,
		AnnualIncome:     120000,
		EmploymentStatus: core.EmploymentSalaried,
		CreditScore:      780,
		LoanPurpose:      core.PurposeHome,
	}
	l := &core.Lender{
		ID: 2, Name: "HomeFund Bank",
		MinLoanAmount: 50000, MaxLoanAmount: 500000,
		MinIncome:      50000,
		Employment:     core.EmploymentIn(core.EmploymentSalaried),
		MinCreditScore: 700,
		InterestRate:   8.9,
		Purpose:        core.SpecificPurpose(core.PurposeHome),
	}

	stub := NewQualityStub()
	stub.Fit(a, []*core.Lender{l})

	v := feature.Vectorize(a, l)
	got, err := stub.Predict(v)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got <= 0 || got > 1 {
		t.Errorf("fitted prediction out of range: %v", got)
	}

	// 未 Fit 过的向量兜底为 0
	unknown := make([]float64, feature.Dim)
	if p, _ := stub.Predict(unknown); p != 0 {
		t.Errorf("unknown vector should predict 0, got %v", p)
	}
}
