package explorer

import (
	"context"
	"errors"
	"sync"
)

var errUpstream = errors.New("upstream unavailable")

// fakeSource：可计数的上游替身；各字段为 nil 时返回 errUpstream
type fakeSource struct {
	mu          sync.Mutex
	regions     []Region
	regionsErr  error
	detail      map[int]Region
	detailErr   error
	cities      map[int][]SubRegion
	citiesErr   error
	cityDetail  map[int]SubRegionDetail
	cityErr     error
	cityCalls   map[int]int
	detailCalls int
	citiesCalls int
}

func (f *fakeSource) Departments(ctx context.Context) ([]Region, error) {
	if f.regionsErr != nil {
		return nil, f.regionsErr
	}
	return f.regions, nil
}

func (f *fakeSource) Department(ctx context.Context, id int) (Region, error) {
	f.mu.Lock()
	f.detailCalls++
	f.mu.Unlock()
	if f.detailErr != nil {
		return Region{}, f.detailErr
	}
	r, ok := f.detail[id]
	if !ok {
		return Region{}, errUpstream
	}
	return r, nil
}

func (f *fakeSource) DepartmentCities(ctx context.Context, id int) ([]SubRegion, error) {
	f.mu.Lock()
	f.citiesCalls++
	f.mu.Unlock()
	if f.citiesErr != nil {
		return nil, f.citiesErr
	}
	c, ok := f.cities[id]
	if !ok {
		return nil, errUpstream
	}
	return c, nil
}

func (f *fakeSource) City(ctx context.Context, id int) (SubRegionDetail, error) {
	f.mu.Lock()
	if f.cityCalls == nil {
		f.cityCalls = map[int]int{}
	}
	f.cityCalls[id]++
	f.mu.Unlock()
	if f.cityErr != nil {
		return SubRegionDetail{}, f.cityErr
	}
	d, ok := f.cityDetail[id]
	if !ok {
		return SubRegionDetail{}, errUpstream
	}
	return d, nil
}

func int64p(v int64) *int64 { return &v }
func float64p(v float64) *float64 { return &v }
