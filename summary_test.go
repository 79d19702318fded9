package streamstats

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 0.001

func equal(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestSummary1(t *testing.T) {
	s := NewSummary()

	check := func() {
		res := s.Result()
		if !res.HasAvg || !res.HasStdDev {
			t.Fatal("summary should be defined")
		}
		if !equal(res.Avg, 2.5, epsilon) {
			t.Fatal("wrong average")
		}
		if !equal(res.Min, 1.0, epsilon) {
			t.Fatal("wrong min")
		}
		if !equal(res.Max, 4.0, epsilon) {
			t.Fatal("wrong max")
		}
		if !equal(res.StdDev, 1.29, 0.01) {
			t.Fatal("wrong stddev")
		}
		if s.Len() != 4 || res.N != 4 {
			t.Fatal("wrong n")
		}
	}

	s.Add(1.0, 2.0, 3.0, 4.0)
	check()

	s.Reset()
	s.Add(1.0, 2.0, 3.0, 4.0)
	check()
}

func TestSummary2(t *testing.T) {
	s := NewSummary()

	xs := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		num := rand.Float64() * 1000
		s.Add(num)
		xs = append(xs, num)
	}

	mean, m2 := twoPass(xs)
	min, max := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		min = math.Min(min, x)
		max = math.Max(max, x)
	}

	res := s.Result()
	if !equal(res.Avg, mean, epsilon) {
		t.Fatalf("wrong average given=%v expected=%v", res.Avg, mean)
	}
	if res.Min != min {
		t.Fatalf("wrong min given=%v expected=%v", res.Min, min)
	}
	if res.Max != max {
		t.Fatalf("wrong max given=%v expected=%v", res.Max, max)
	}
	stddev := math.Sqrt(m2 / 99)
	if !equal(res.StdDev, stddev, epsilon) {
		t.Fatalf("wrong stddev given=%v expected=%v", res.StdDev, stddev)
	}
}

func TestSummaryUndefined(t *testing.T) {
	s := NewSummary()
	res := s.Result()
	if res.HasAvg || res.HasStdDev {
		t.Fatal("empty summary should be undefined")
	}
	if res.String() != "min/avg/max/stddev = undefined/undefined/undefined/undefined n=0" {
		t.Fatalf("wrong rendering %q", res.String())
	}

	s.Add(2)
	res = s.Result()
	if !res.HasAvg || res.HasStdDev {
		t.Fatal("one point defines min/avg/max but not stddev")
	}
	if res.String() != "min/avg/max/stddev = 2/2/2/undefined n=1" {
		t.Fatalf("wrong rendering %q", res.String())
	}
}

func TestSummaryZeroValue(t *testing.T) {
	var s Summary
	s.Add(3, 1, 2)

	res := s.Result()
	if !res.HasAvg || !res.HasStdDev {
		t.Fatal("three points define every field")
	}
	if res.Min != 1 || res.Max != 3 || !equal(res.Avg, 2, epsilon) || !equal(res.StdDev, 1, epsilon) {
		t.Fatalf("wrong result %s", res)
	}
	want := NewSummary()
	want.Add(3, 1, 2)
	if want.Result() != res {
		t.Fatalf("zero summary %s differs from NewSummary %s", res, want.Result())
	}
}
