package apicolombia

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestServer(t *testing.T, routes map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestDepartments(t *testing.T) {
	srv, hits := newTestServer(t, map[string]string{
		"/api/v1/Department": `[
			{"id":1,"name":"Amazonas","cityCapital":{"id":9,"name":"Leticia"},"population":76589,"regionId":5},
			{"id":3,"name":"Arauca","cityCapital":null,"description":null}
		]`,
	})
	c := New(srv.URL+"/api/v1/", srv.Client())

	got, err := c.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d regions", len(got))
	}
	if got[0].Name != "Amazonas" || got[0].CapitalName() != "Leticia" || got[0].Population == nil || *got[0].Population != 76589 {
		t.Errorf("region 0 = %+v", got[0])
	}
	if got[1].CityCapital != nil || got[1].Description != "" {
		t.Errorf("region 1 = %+v", got[1])
	}
	if hits.Load() != 1 {
		t.Errorf("hits = %d, want exactly one request", hits.Load())
	}
}

func TestDepartmentAndCities(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{
		"/Department/1":        `{"id":1,"name":"Amazonas","description":"South."}`,
		"/Department/1/cities": `[{"id":99,"name":"Leticia"},{"id":100,"name":"Puerto Nariño"}]`,
	})
	c := New(srv.URL, srv.Client())

	r, err := c.Department(context.Background(), 1)
	if err != nil || r.Name != "Amazonas" || r.Description != "South." {
		t.Fatalf("Department = %+v, %v", r, err)
	}
	cities, err := c.DepartmentCities(context.Background(), 1)
	if err != nil {
		t.Fatalf("DepartmentCities: %v", err)
	}
	if len(cities) != 2 || cities[1].ID != 100 || cities[1].Name != "Puerto Nariño" {
		t.Errorf("cities = %+v", cities)
	}
}

func TestCity(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{
		"/City/99":  `{"id":99,"name":"Leticia","population":50000,"surface":null,"postalCode":"110111"}`,
		"/City/100": `{"id":100,"name":"Puerto Nariño","surface":1704.5,"postalCode":911030}`,
	})
	c := New(srv.URL, srv.Client())

	d, err := c.City(context.Background(), 99)
	if err != nil {
		t.Fatalf("City: %v", err)
	}
	if d.Population == nil || *d.Population != 50000 || d.Surface != nil || d.PostalCode != "110111" {
		t.Errorf("city 99 = %+v", d)
	}
	d, err = c.City(context.Background(), 100)
	if err != nil {
		t.Fatalf("City: %v", err)
	}
	if d.Surface == nil || *d.Surface != 1704.5 || d.PostalCode != "911030" {
		t.Errorf("city 100 = %+v", d)
	}
}

func TestErrors(t *testing.T) {
	srv, _ := newTestServer(t, map[string]string{
		"/Department": `not json`,
	})
	c := New(srv.URL, srv.Client())

	if _, err := c.Departments(context.Background()); err == nil {
		t.Error("expected decode error")
	}

	_, err := c.City(context.Background(), 404)
	var se *StatusError
	if !errors.As(err, &se) || se.Status != http.StatusNotFound || se.Op != "city" {
		t.Errorf("err = %v, want StatusError 404", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Department(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	c := New(srv.URL, &http.Client{Timeout: 50 * time.Millisecond})
	if _, err := c.Departments(context.Background()); err == nil {
		t.Error("expected timeout error")
	}
}

func TestNewDefaults(t *testing.T) {
	c := New("", nil)
	if c.base != DefaultBaseURL {
		t.Errorf("base = %q", c.base)
	}
	if c.http == nil || c.http.Timeout != 8*time.Second {
		t.Errorf("http client = %+v", c.http)
	}
}
