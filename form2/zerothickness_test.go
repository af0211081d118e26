package form2_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/soypat/flasher"
	"github.com/soypat/flasher/form2"
	"github.com/soypat/flasher/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestZeroThicknessRotationalSymmetry(t *testing.T) {
	const tol = 1e-10
	p, err := form2.GenerateZeroThicknessFlasher(6, 3, 0.5, []float64{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Vertices) != 24 {
		t.Errorf("got %d vertices, want 24", len(p.Vertices))
	}
	if len(p.Edges) != 6+18+18 {
		t.Errorf("got %d edges, want 42", len(p.Edges))
	}
	if math.Abs(p.Beta-math.Pi/3) > 1e-15 {
		t.Errorf("got beta %g, want pi/3", p.Beta)
	}
	base := d2.Set(p.RadialCoords(0))
	for k := 0; k < 6; k++ {
		rotated := d2.Rotate(float64(k) * p.Beta).ApplySet(base)
		got := d2.Set(p.RadialCoords(k))
		if !rotated.EqualWithin(got, tol) {
			t.Errorf("gore %d radial line %v does not match rotated gore 0 %v", k, got, rotated)
		}
	}
}

func TestZeroThicknessHubRegularity(t *testing.T) {
	p, err := form2.GenerateZeroThicknessFlasher(8, 2, 1.0, []float64{0, 1, 1.5})
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * math.Sin(math.Pi/8)
	hub := p.EdgesOf(flasher.FoldHub)
	if len(hub) != 8 {
		t.Fatalf("got %d hub edges, want 8", len(hub))
	}
	for i, e := range hub {
		got := p.EdgeLength(e)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("hub edge %d length %g, want %g", i, got, want)
		}
	}
}

func TestZeroThicknessRadialLinearity(t *testing.T) {
	p, err := form2.GenerateZeroThicknessFlasher(5, 4, 0.3, []float64{0, 0.5, 1, 1.5, 2})
	if err != nil {
		t.Fatal(err)
	}
	for k := range p.RadialLines {
		line := p.RadialCoords(k)
		dir := r2.Sub(line[1], line[0])
		for i, v := range line[1:] {
			cross := d2.Cross(dir, r2.Sub(v, line[0]))
			if math.Abs(cross) > 1e-12 {
				t.Errorf("gore %d vertex %d off radial line, cross=%g", k, i+1, cross)
			}
		}
	}
}

func TestZeroThicknessLayout(t *testing.T) {
	const N, n = 7, 3
	L := []float64{0, 0.25, 1, 4}
	p, err := form2.GenerateZeroThicknessFlasher(N, n, 2, L)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if p.Gores() != N || p.Rings() != n {
		t.Fatalf("got %d gores %d rings, want %d %d", p.Gores(), p.Rings(), N, n)
	}
	for k, line := range p.RadialLines {
		if line[0] != k {
			t.Errorf("gore %d hub index %d, want %d", k, line[0], k)
		}
		for i := 1; i <= n; i++ {
			if want := N + k*n + i - 1; line[i] != want {
				t.Errorf("gore %d ring %d index %d, want %d", k, i, line[i], want)
			}
		}
		hub := p.Vertices[line[0]].Pos.XY()
		for i := 1; i <= n; i++ {
			got := r2.Norm(r2.Sub(p.Vertices[line[i]].Pos.XY(), hub))
			if math.Abs(got-L[i]) > 1e-12 {
				t.Errorf("gore %d ring %d is %g from hub, want %g", k, i, got, L[i])
			}
		}
	}
	for i, v := range p.Vertices {
		if v.Pos.Dims() != 2 {
			t.Errorf("vertex %d is %dD, want 2D", i, v.Pos.Dims())
		}
	}
	if got := p.Vertices[3].Label; got != "p3" {
		t.Errorf("got hub label %q, want p3", got)
	}
	if got := p.Vertices[p.RadialLines[2][3]].Label; got != "r2_3" {
		t.Errorf("got ring label %q, want r2_3", got)
	}
}

func TestZeroThicknessEdgeOrder(t *testing.T) {
	const N, n = 4, 2
	p, err := form2.GenerateZeroThicknessFlasher(N, n, 1, []float64{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	lines := p.RadialLines
	var want []flasher.Edge
	for k := 0; k < N; k++ {
		want = append(want, flasher.Edge{Start: k, End: (k + 1) % N, Fold: flasher.FoldHub})
	}
	for k := 0; k < N; k++ {
		for i := 1; i <= n; i++ {
			want = append(want, flasher.Edge{Start: lines[k][i-1], End: lines[k][i], Fold: flasher.FoldMajor})
		}
	}
	for k := 0; k < N; k++ {
		for i := 1; i <= n; i++ {
			want = append(want, flasher.Edge{Start: lines[k][i], End: lines[(k+1)%N][i], Fold: flasher.FoldMinor})
		}
	}
	if !reflect.DeepEqual(p.Edges, want) {
		t.Fatalf("edge order mismatch\ngot  %v\nwant %v", p.Edges, want)
	}
	for i, e := range p.Edges {
		if e.Angle.IsSet() {
			t.Errorf("edge %d has fold angle set", i)
		}
	}
}

func TestZeroThicknessDeterministic(t *testing.T) {
	L := []float64{0, 0.3, 0.7, 1.9}
	p1, err := form2.GenerateZeroThicknessFlasher(11, 3, 1.3, L)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := form2.GenerateZeroThicknessFlasher(11, 3, 1.3, L)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Fatal("identical inputs produced different patterns")
	}
}

func TestZeroThicknessInvalidConfig(t *testing.T) {
	for _, test := range []struct {
		name  string
		N, n  int
		L     []float64
		param string
	}{
		{name: "two gores", N: 2, n: 1, L: []float64{0, 1}, param: "N"},
		{name: "no rings", N: 6, n: 0, L: []float64{0}, param: "n"},
		{name: "short L", N: 6, n: 3, L: []float64{0, 1, 2}, param: "L"},
		{name: "long L", N: 6, n: 1, L: []float64{0, 1, 2}, param: "L"},
		{name: "nil L", N: 6, n: 1, L: nil, param: "L"},
		{name: "decreasing L", N: 6, n: 2, L: []float64{0.0, 1.0, 0.5}, param: "L"},
		{name: "repeated L", N: 6, n: 2, L: []float64{0.0, 1.0, 1.0}, param: "L"},
		{name: "NaN L", N: 3, n: 1, L: []float64{0, math.NaN()}, param: "L"},
		{name: "NaN first L", N: 3, n: 1, L: []float64{math.NaN(), 1}, param: "L"},
		{name: "N checked first", N: 2, n: 0, L: []float64{3, 2, 1}, param: "N"},
	} {
		p, err := form2.GenerateZeroThicknessFlasher(test.N, test.n, 1, test.L)
		if !errors.Is(err, flasher.ErrInvalidConfig) {
			t.Errorf("%s: got error %v, want ErrInvalidConfig", test.name, err)
			continue
		}
		var cerr *flasher.ConfigError
		if !errors.As(err, &cerr) || cerr.Param != test.param {
			t.Errorf("%s: got error %v, want parameter %s", test.name, err, test.param)
		}
		if p.Vertices != nil || p.Edges != nil || p.RadialLines != nil {
			t.Errorf("%s: partial pattern returned with error", test.name)
		}
	}
}

func TestZeroThicknessDefaultRings(t *testing.T) {
	const N, n = 12, 8
	p, err := form2.ZeroThickness(form2.ZeroThicknessParms{Gores: N, Rings: n, HubRadius: 1})
	if err != nil {
		t.Fatal(err)
	}
	line := p.RadialCoords(0)
	for i, v := range line {
		want := r2.Vec{X: 1 + float64(i)}
		if !d2.EqualWithin(v, want, 1e-12) {
			t.Errorf("ring %d at %v, want %v", i, v, want)
		}
	}
	_, err = form2.ZeroThickness(form2.ZeroThicknessParms{Gores: N, Rings: 0, HubRadius: 1})
	if !errors.Is(err, flasher.ErrInvalidConfig) {
		t.Errorf("got %v for zero rings with default distances, want ErrInvalidConfig", err)
	}
	// Default distances too large to allocate are an error, not a panic.
	p, err = form2.ZeroThickness(form2.ZeroThicknessParms{Gores: 3, Rings: math.MaxInt, HubRadius: 1})
	if err == nil {
		t.Error("expected error for unallocatable ring count")
	}
	if p.Vertices != nil {
		t.Error("partial pattern returned with error")
	}
}

func TestUniformRingDistances(t *testing.T) {
	L, err := form2.UniformRingDistances(3, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.5, 1, 1.5}
	if !reflect.DeepEqual(L, want) {
		t.Errorf("got %v, want %v", L, want)
	}
	if _, err = form2.UniformRingDistances(3, 0); err == nil {
		t.Error("expected error for zero step")
	}
}

func TestNagonError(t *testing.T) {
	_, err := form2.Nagon(2, 1)
	if !errors.Is(err, flasher.ErrInvalidConfig) {
		t.Fatalf("got %v, want ErrInvalidConfig", err)
	}
	v, err := form2.Nagon(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !d2.EqualWithin(v[1], r2.Vec{Y: 1}, 1e-15) {
		t.Errorf("got second vertex %v, want (0,1)", v[1])
	}
}
