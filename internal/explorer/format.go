package explorer

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// 可选字段缺失时的统一占位
	NotAvailable  = "N/A"
	NoDescription = "No description available."
)

// Formatter：按区域设置进行数字分组
type Formatter struct {
	printer *message.Printer
}

// NewFormatter：locale 为 BCP 47 标签，解析失败回退英文
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Population：按区域设置分组（en 下 50000 -> "50,000"）；缺失返回 N/A
func (f *Formatter) Population(p *int64) string {
	if p == nil {
		return NotAvailable
	}
	return f.printer.Sprintf("%d", *p)
}

// Surface：带单位输出面积；缺失或为 0 时返回 N/A
func Surface(s *float64) string {
	if s == nil || *s == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(*s, 'f', -1, 64) + " km²"
}

func PostalCodeText(p PostalCode) string {
	if p == "" {
		return NotAvailable
	}
	return string(p)
}

func DescriptionText(d string) string {
	if d == "" {
		return NoDescription
	}
	return d
}
