package explorer

import (
	"context"
	"fmt"

	"region-explorer/internal/join"
)

const (
	// 选中后、两个请求返回前展示的占位文案
	LoadingMessage = "Loading information..."

	// 任一请求失败时整个详情面板替换为该文案
	DetailErrorMessage = "Error loading details."

	// 详情头部使用的固定旗帜图片
	FlagURL = "https://upload.wikimedia.org/wikipedia/commons/thumb/2/21/Flag_of_Colombia.svg/120px-Flag_of_Colombia.svg.png"
)

// Detail：一次选中所需的完整数据（区域详情 + 下属城市列表）
type Detail struct {
	Region     Region
	SubRegions []SubRegion
}

// 文档注释：并发加载区域详情与下属城市
// 约束：两个请求并发发出、全部返回后才产出结果；任一失败返回错误且不返回部分数据。
func LoadDetail(ctx context.Context, src Source, id int) (Detail, error) {
	var region Region
	var subs []SubRegion
	err := join.All(ctx,
		func(ctx context.Context) error {
			r, err := src.Department(ctx, id)
			if err != nil {
				return fmt.Errorf("region %d: %w", id, err)
			}
			region = r
			return nil
		},
		func(ctx context.Context) error {
			s, err := src.DepartmentCities(ctx, id)
			if err != nil {
				return fmt.Errorf("region %d sub-regions: %w", id, err)
			}
			subs = s
			return nil
		},
	)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Region: region, SubRegions: subs}, nil
}
