package particlelife

import (
	"reflect"
	"testing"
)

func TestPerlinLayout(t *testing.T) {
	s := smallSettings()
	s.Layout = LayoutPerlin
	e := NewEngine(s)
	e.Reset(21)
	first := e.Population().Snapshot()
	for i, p := range first {
		if !e.Space().Contains(p.Position) {
			t.Fatalf("particle %d spawned outside the domain at %v", i, p.Position)
		}
	}

	e.Reset(21)
	if !reflect.DeepEqual(first, e.Population().Snapshot()) {
		t.Error("perlin layout is not reproducible")
	}

	u := NewEngine(smallSettings())
	u.Reset(21)
	if reflect.DeepEqual(first, u.Population().Snapshot()) {
		t.Error("perlin layout produced the uniform positions")
	}
}

func TestPerlinDensity(t *testing.T) {
	space := Space{Width: 400, Height: 300}
	sp, ok := newSpawner(LayoutPerlin, space, NewRandomSource(4)).(*perlinSpawner)
	if !ok {
		t.Fatal("perlin layout did not return a perlin spawner")
	}
	r := NewRandomSource(8)
	for range 500 {
		p := sp.uniform.position(r)
		if d := sp.density(p); d < 0 || d > 1 {
			t.Fatalf("density(%v) = %v, outside [0, 1]", p, d)
		}
	}
}

func TestUniformLayoutDefault(t *testing.T) {
	if _, ok := newSpawner("", Space{Width: 1, Height: 1}, NewRandomSource(0)).(uniformSpawner); !ok {
		t.Error("empty layout did not fall back to uniform")
	}
}
