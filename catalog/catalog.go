// Package catalog 实现放款方目录：进程启动时一次性加载、校验，之后只读。
package catalog

import (
	"fmt"

	"github.com/rushteam/lendkit/core"
)

// Catalog 是不可变的有序放款方注册表。
// 加载即校验（fail fast），之后不再变更；排序引擎与数据合成共享同一目录。
type Catalog struct {
	lenders []*core.Lender
	byID    map[int]*core.Lender
}

// New 用给定的放款方列表构建目录。
// 任何一条记录非法（maxLoanAmount < minLoanAmount、负金额、信用分出界等）
// 或 id 重复都会立即失败，绝不静默钳位。
func New(lenders []*core.Lender) (*Catalog, error) {
	c := &Catalog{
		lenders: make([]*core.Lender, 0, len(lenders)),
		byID:    make(map[int]*core.Lender, len(lenders)),
	}
	for _, l := range lenders {
		if l == nil {
			continue
		}
		if err := l.Validate(); err != nil {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, err.Error())
		}
		if _, exists := c.byID[l.ID]; exists {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: duplicate lender id %d", l.ID))
		}
		c.lenders = append(c.lenders, l)
		c.byID[l.ID] = l
	}
	if len(c.lenders) == 0 {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: no lenders")
	}
	return c, nil
}

// Lenders 返回目录顺序的放款方列表（浅拷贝，调用方不得修改记录）。
func (c *Catalog) Lenders() []*core.Lender {
	out := make([]*core.Lender, len(c.lenders))
	copy(out, c.lenders)
	return out
}

// ByID 按 id 查找放款方。
func (c *Catalog) ByID(id int) (*core.Lender, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Len 返回目录中的放款方数量。
func (c *Catalog) Len() int {
	return len(c.lenders)
}
