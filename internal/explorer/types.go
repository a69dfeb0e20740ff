// 包 explorer：与终端无关的浏览核心（区域目录与过滤、卡片投影、详情联合加载、城市手风琴状态）
// 约束：除 LoadCatalog/LoadDetail 外均为同步操作，只在界面事件循环中调用
package explorer

import (
	"context"
	"encoding/json"
)

// Capital：区域内嵌的首府引用，仅读取名称
type Capital struct {
	Name string `json:"name"`
}

// Region：顶级行政区（上游 Department）；ID 由上游分配
type Region struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	CityCapital *Capital `json:"cityCapital"`
	Population  *int64   `json:"population"`
	Description string   `json:"description"`
}

func (r Region) CapitalName() string {
	if r.CityCapital == nil {
		return ""
	}
	return r.CityCapital.Name
}

// SubRegion：区域下属城市的列表形态（仅 ID 与名称）
type SubRegion struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SubRegionDetail：首次展开时获取的城市扩展字段
type SubRegionDetail struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Population *int64     `json:"population"`
	Surface    *float64   `json:"surface"`
	PostalCode PostalCode `json:"postalCode"`
}

// PostalCode：上游可能以字符串或数字返回
type PostalCode string

func (p *PostalCode) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PostalCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = PostalCode(n.String())
	return nil
}

// Source：上游数据源契约；生产实现为 apicolombia.Client，测试中以计数替身注入
type Source interface {
	Departments(ctx context.Context) ([]Region, error)
	Department(ctx context.Context, id int) (Region, error)
	DepartmentCities(ctx context.Context, id int) ([]SubRegion, error)
	City(ctx context.Context, id int) (SubRegionDetail, error)
}
