package explorer

import "strconv"

const (
	NoResultsMessage = "No results found."
	DefaultImageBase = "images/departments"
)

// Card：单个区域的摘要卡片
type Card struct {
	RegionID int
	Name     string
	Capital  string
	Image    string
}

// CardGrid：卡片容器投影；Empty 时 Cards 为空，必须展示 Message
type CardGrid struct {
	Cards   []Card
	Empty   bool
	Message string
}

// 文档注释：将区域序列投影为卡片
// 约束：保持输入顺序；图片路径按 {imageBase}/{id}.jpg 约定生成，不检查文件是否存在。
func RenderCards(regions []Region, imageBase string) CardGrid {
	if len(regions) == 0 {
		return CardGrid{Empty: true, Message: NoResultsMessage}
	}
	if imageBase == "" {
		imageBase = DefaultImageBase
	}
	cards := make([]Card, 0, len(regions))
	for _, r := range regions {
		capital := r.CapitalName()
		if capital == "" {
			capital = NotAvailable
		}
		cards = append(cards, Card{
			RegionID: r.ID,
			Name:     r.Name,
			Capital:  capital,
			Image:    imageBase + "/" + strconv.Itoa(r.ID) + ".jpg",
		})
	}
	return CardGrid{Cards: cards}
}
