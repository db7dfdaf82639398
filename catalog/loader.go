package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/lendkit/core"
)

// LenderConfig 是放款方的外部配置形态（YAML/JSON）。
// 通配用字符串 "any" 表达（外部格式约定）；加载时转换为显式的标记变体，
// 引擎内部不出现魔法字符串。
type LenderConfig struct {
	ID                 int      `yaml:"id" json:"id"`
	Name               string   `yaml:"name" json:"name"`
	MinLoanAmount      int      `yaml:"minLoanAmount" json:"minLoanAmount"`
	MaxLoanAmount      int      `yaml:"maxLoanAmount" json:"maxLoanAmount"`
	MinIncome          int      `yaml:"minIncome" json:"minIncome"`
	EmploymentTypes    []string `yaml:"employmentTypes" json:"employmentTypes"`
	MinCreditScore     int      `yaml:"minCreditScore" json:"minCreditScore"`
	InterestRate       float64  `yaml:"interestRate" json:"interestRate"`
	LoanPurpose        string   `yaml:"loanPurpose" json:"loanPurpose"` // 缺省视为 "any"
	SpecialEligibility string   `yaml:"specialEligibility" json:"specialEligibility"`
}

// ToLender 将配置转换为领域记录（不做校验，校验统一在 New 中进行）。
func (c LenderConfig) ToLender() *core.Lender {
	l := &core.Lender{
		ID:                 c.ID,
		Name:               c.Name,
		MinLoanAmount:      c.MinLoanAmount,
		MaxLoanAmount:      c.MaxLoanAmount,
		MinIncome:          c.MinIncome,
		MinCreditScore:     c.MinCreditScore,
		InterestRate:       c.InterestRate,
		SpecialEligibility: c.SpecialEligibility,
	}

	l.Employment = core.EmploymentCriterion{}
	for _, t := range c.EmploymentTypes {
		if t == "any" {
			l.Employment = core.AnyEmployment()
			break
		}
		l.Employment.Types = append(l.Employment.Types, core.EmploymentStatus(t))
	}

	if c.LoanPurpose == "" || c.LoanPurpose == "any" {
		l.Purpose = core.AnyPurpose()
	} else {
		l.Purpose = core.SpecificPurpose(core.LoanPurpose(c.LoanPurpose))
	}

	return l
}

// FromConfigs 由配置列表构建目录。
func FromConfigs(configs []LenderConfig) (*Catalog, error) {
	lenders := make([]*core.Lender, 0, len(configs))
	for _, c := range configs {
		lenders = append(lenders, c.ToLender())
	}
	return New(lenders)
}

// LoadFromYAML 从 YAML 文件加载目录（顶层为 lenders 列表）。
func LoadFromYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg struct {
		Lenders []LenderConfig `yaml:"lenders"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return FromConfigs(cfg.Lenders)
}

// LoadFromJSON 从 JSON 文件加载目录（顶层为 lenders 列表）。
func LoadFromJSON(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg struct {
		Lenders []LenderConfig `json:"lenders"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return FromConfigs(cfg.Lenders)
}
