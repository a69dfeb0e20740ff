package explorer

// Selector：为每次选中分配递增令牌，用于丢弃过期响应（最后一次选中生效）
// 约束：仅在界面事件循环中使用，不做加锁
type Selector struct {
	token    uint64
	selected int
}

// Next：记录一次新的选中并返回其令牌；此前发出的令牌全部过期
func (s *Selector) Next(id int) uint64 {
	s.token++
	s.selected = id
	return s.token
}

// Current：判断响应令牌是否属于最新一次选中
func (s *Selector) Current(token uint64) bool { return token != 0 && token == s.token }

// Selected：最新一次选中的区域 ID
func (s *Selector) Selected() int { return s.selected }

// Invalidate：离开详情面板时作废在途请求
func (s *Selector) Invalidate() {
	s.token++
	s.selected = 0
}
