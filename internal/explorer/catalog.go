package explorer

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// 区域列表加载失败时替换卡片区域的文案
const LoadErrorMessage = "Error loading data."

// Catalog：完整、未过滤的区域序列
// 约束：加载时写入一次，此后只读；过滤只派生视图，不修改序列
type Catalog struct {
	regions []Region
}

func NewCatalog(regions []Region) *Catalog {
	return &Catalog{regions: slices.Clone(regions)}
}

// LoadCatalog：启动时唯一一次区域列表请求；失败不重试
func LoadCatalog(ctx context.Context, src Source) (*Catalog, error) {
	regions, err := src.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}
	return NewCatalog(regions), nil
}

func (c *Catalog) Len() int { return len(c.regions) }

// All：按原始顺序返回序列副本
func (c *Catalog) All() []Region { return slices.Clone(c.regions) }

// Filter：名称包含查询词（忽略大小写）的区域，保持原始顺序；空查询返回全部
func (c *Catalog) Filter(query string) []Region {
	q := strings.ToLower(query)
	out := make([]Region, 0, len(c.regions))
	for _, r := range c.regions {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}
