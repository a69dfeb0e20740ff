package explorer

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func sampleRegions() []Region {
	return []Region{
		{ID: 1, Name: "Amazonas", CityCapital: &Capital{Name: "Leticia"}},
		{ID: 2, Name: "Antioquia", CityCapital: &Capital{Name: "Medellín"}},
		{ID: 3, Name: "Arauca"},
		{ID: 4, Name: "San Andrés y Providencia", CityCapital: &Capital{Name: "San Andrés"}},
	}
}

func names(rs []Region) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func TestCatalogFilterEmptyReturnsAllInOrder(t *testing.T) {
	c := NewCatalog(sampleRegions())
	got := c.Filter("")
	if !reflect.DeepEqual(got, sampleRegions()) {
		t.Errorf("Filter(\"\") = %v, want full sequence", names(got))
	}
}

func TestCatalogFilterSubstring(t *testing.T) {
	c := NewCatalog(sampleRegions())
	tests := []struct {
		query string
		want  []string
	}{
		{"ama", []string{"Amazonas"}},
		{"AN", []string{"Antioquia", "San Andrés y Providencia"}},
		{"a", []string{"Amazonas", "Antioquia", "Arauca", "San Andrés y Providencia"}},
		{"andrés", []string{"San Andrés y Providencia"}},
		{"xyz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := names(c.Filter(tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestCatalogIsNotMutatedByFilterOrCallers(t *testing.T) {
	src := sampleRegions()
	c := NewCatalog(src)
	src[0].Name = "changed"
	_ = c.Filter("ama")
	all := c.All()
	all[1].Name = "changed too"

	if got := names(c.All()); !reflect.DeepEqual(got, names(sampleRegions())) {
		t.Errorf("canonical sequence changed: %v", got)
	}
	if c.Len() != 4 {
		t.Errorf("Len = %d", c.Len())
	}
}

func TestLoadCatalog(t *testing.T) {
	src := &fakeSource{regions: sampleRegions()}
	c, err := LoadCatalog(context.Background(), src)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len = %d, want 4", c.Len())
	}

	src = &fakeSource{regionsErr: errUpstream}
	if _, err := LoadCatalog(context.Background(), src); !errors.Is(err, errUpstream) {
		t.Errorf("err = %v, want wrapped errUpstream", err)
	}
}
