package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rushteam/lendkit/core"
)

// 目录快照：将整个目录以 JSON 序列化到 core.Store（内存/Redis），
// 供多进程部署共享同一份只读目录。快照格式复用 LenderConfig 外部形态。

// configOf 将领域记录折算回外部配置形态（快照序列化用）。
func configOf(l *core.Lender) LenderConfig {
	c := LenderConfig{
		ID:                 l.ID,
		Name:               l.Name,
		MinLoanAmount:      l.MinLoanAmount,
		MaxLoanAmount:      l.MaxLoanAmount,
		MinIncome:          l.MinIncome,
		MinCreditScore:     l.MinCreditScore,
		InterestRate:       l.InterestRate,
		SpecialEligibility: l.SpecialEligibility,
	}
	if l.Employment.Any {
		c.EmploymentTypes = []string{"any"}
	} else {
		for _, t := range l.Employment.Types {
			c.EmploymentTypes = append(c.EmploymentTypes, string(t))
		}
	}
	if l.Purpose.Any {
		c.LoanPurpose = "any"
	} else {
		c.LoanPurpose = string(l.Purpose.Purpose)
	}
	return c
}

// SaveSnapshot 将目录快照写入 Store。
func SaveSnapshot(ctx context.Context, store core.Store, key string, c *Catalog) error {
	configs := make([]LenderConfig, 0, c.Len())
	for _, l := range c.lenders {
		configs = append(configs, configOf(l))
	}
	data, err := json.Marshal(configs)
	if err != nil {
		return fmt.Errorf("marshal catalog snapshot: %w", err)
	}
	return store.Set(ctx, key, data)
}

// LoadSnapshot 从 Store 读取目录快照并重建目录（重建时同样走完整校验）。
func LoadSnapshot(ctx context.Context, store core.Store, key string) (*Catalog, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}
	var configs []LenderConfig
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("parse catalog snapshot: %w", err)
	}
	return FromConfigs(configs)
}
