package chart

import (
	"strings"
	"testing"
)

func TestLinearPath(t *testing.T) {
	t.Parallel()

	gen := newPathGenerator(
		NewLinearScale(0, 2, 0, 100),
		NewLinearScale(0, 10, 100, 0),
		InterpolationLinear,
	)
	got := gen.Path([]Point{{0, 0}, {1, 5}, {2, 10}})
	want := "M0.00,100.00L50.00,50.00L100.00,0.00"
	if got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestPath_EmptySeries(t *testing.T) {
	t.Parallel()

	gen := newPathGenerator(NewLinearScale(0, 1, 0, 1), NewLinearScale(0, 1, 1, 0), InterpolationLinear)
	if got := gen.Path(nil); got != "" {
		t.Fatalf("Path(nil) = %q, want empty", got)
	}
}

func TestMonotonePath_UsesCubicSegments(t *testing.T) {
	t.Parallel()

	gen := newPathGenerator(
		NewLinearScale(0, 3, 0, 300),
		NewLinearScale(0, 10, 100, 0),
		InterpolationMonotone,
	)
	got := gen.Path([]Point{{0, 0}, {1, 8}, {2, 9}, {3, 10}})

	if !strings.HasPrefix(got, "M0.00,100.00") {
		t.Fatalf("path does not start at the first point: %q", got)
	}
	if want := 3; strings.Count(got, "C") != want {
		t.Fatalf("expected %d cubic segments, got %q", want, got)
	}
	if strings.Contains(got, "L") {
		t.Fatalf("monotone path should not contain line segments: %q", got)
	}
}

func TestMonotonePath_FallsBackBelowThreePoints(t *testing.T) {
	t.Parallel()

	gen := newPathGenerator(
		NewLinearScale(0, 1, 0, 100),
		NewLinearScale(0, 1, 100, 0),
		InterpolationMonotone,
	)
	got := gen.Path([]Point{{0, 0}, {1, 1}})
	if strings.Contains(got, "C") {
		t.Fatalf("two points must use a line segment, got %q", got)
	}
}

func TestMonotonePath_ZeroTangentAtExtremum(t *testing.T) {
	t.Parallel()

	// Identity scales keep the control points in data units.
	gen := newPathGenerator(
		NewLinearScale(0, 3, 0, 3),
		NewLinearScale(0, 3, 0, 3),
		InterpolationMonotone,
	)
	// The middle point is a local maximum: its tangent must be zero, so
	// the control points around it sit at its own y.
	got := gen.Path([]Point{{0, 0}, {1, 2}, {2, 0}, {3, 2}})
	if !strings.Contains(got, "0.67,2.00 1.00,2.00") {
		t.Fatalf("expected flat tangent at the local maximum, got %q", got)
	}
}

func TestFormatTick(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{1.5, "1.5"},
		{0.25, "0.25"},
		{0.001, "1.0e-03"},
		{12500, "12.5k"},
		{3_000_000, "3M"},
		{-7.25, "-7.25"},
	}
	for _, tc := range cases {
		if got := formatTick(tc.in); got != tc.want {
			t.Errorf("formatTick(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatFloat_TrimsTrailingZeros(t *testing.T) {
	t.Parallel()

	if got := formatFloat(1.500, 2); got != "1.5" {
		t.Fatalf("formatFloat(1.5, 2) = %q", got)
	}
	if got := formatFloat(2.0, 2); got != "2" {
		t.Fatalf("formatFloat(2.0, 2) = %q", got)
	}
	if got := formatFloat(0.125, 3); got != "0.125" {
		t.Fatalf("formatFloat(0.125, 3) = %q", got)
	}
}

func TestSeriesColor_Cycling(t *testing.T) {
	t.Parallel()

	c := &Chart{cfg: Config{Colors: []string{"red", "green"}}}
	for i, want := range []string{"red", "green", "red", "green"} {
		if got := c.seriesColor(i); got != want {
			t.Fatalf("seriesColor(%d) = %q, want %q", i, got, want)
		}
	}

	// No configured colors: the auto palette cycles the same way.
	c = &Chart{}
	if got := c.seriesColor(0); got != autoPalette[0] {
		t.Fatalf("seriesColor(0) = %q, want %q", got, autoPalette[0])
	}
	if got := c.seriesColor(len(autoPalette)); got != autoPalette[0] {
		t.Fatalf("palette should wrap, got %q", got)
	}
}
