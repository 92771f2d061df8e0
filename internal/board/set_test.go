package board

import "testing"

func TestSingleMembership(t *testing.T) {
	for d := 1; d <= 9; d++ {
		s := Single(d)
		if !s.Has(d) {
			t.Errorf("Single(%d) does not contain %d", d, d)
		}
		for other := 0; other <= 9; other++ {
			if other != d && s.Has(other) {
				t.Errorf("Single(%d) contains %d", d, other)
			}
		}
		if !s.Fixed() {
			t.Errorf("Single(%d) is not fixed", d)
		}
		if s.Possibilities() != 0 {
			t.Errorf("Single(%d) has %d possibilities, want 0", d, s.Possibilities())
		}
	}
}

func TestWithout(t *testing.T) {
	for d := 0; d <= 9; d++ {
		s := Without(d)
		if s.Has(d) {
			t.Errorf("Without(%d) contains %d", d, d)
		}
		if s.Size() != 9 {
			t.Errorf("Without(%d).Size() = %d, want 9", d, s.Size())
		}
		if s != Single(d).Not() {
			t.Errorf("Without(%d) != Single(%d).Not()", d, d)
		}
	}
}

func TestSetAlgebra(t *testing.T) {
	sets := []Set{0, Universe, Single(3), Without(7), Single(1).Union(Single(9)), Initial()}
	for _, a := range sets {
		for _, b := range sets {
			if a.Union(b) != b.Union(a) {
				t.Errorf("union not commutative for %010b, %010b", a, b)
			}
			if a.Intersect(b) != b.Intersect(a) {
				t.Errorf("intersect not commutative for %010b, %010b", a, b)
			}
			for _, c := range sets {
				if a.Union(b).Union(c) != a.Union(b.Union(c)) {
					t.Errorf("union not associative for %010b, %010b, %010b", a, b, c)
				}
				if a.Intersect(b.Union(c)) != a.Intersect(b).Union(a.Intersect(c)) {
					t.Errorf("intersect does not distribute for %010b, %010b, %010b", a, b, c)
				}
			}
		}
		if a.Not().Not() != a {
			t.Errorf("double complement of %010b = %010b", a, a.Not().Not())
		}
	}
}

func TestFrontBack(t *testing.T) {
	for d := 1; d <= 9; d++ {
		s := Single(d)
		if s.Front() != d || s.Back() != d {
			t.Errorf("Single(%d): Front=%d Back=%d", d, s.Front(), s.Back())
		}
	}
	both := Single(2).Union(Single(8))
	if both.Front() != 2 || both.Back() != 8 {
		t.Errorf("Front=%d Back=%d, want 2 and 8", both.Front(), both.Back())
	}
}

func TestSingletonAndPossibilities(t *testing.T) {
	fresh := Initial()
	if fresh.Fixed() {
		t.Error("fresh cell reports fixed")
	}
	if fresh.Possibilities() != 9 {
		t.Errorf("fresh cell has %d possibilities, want 9", fresh.Possibilities())
	}
	if fresh.IsSingleton() {
		t.Error("fresh cell reports singleton")
	}

	// An open cell reduced to one candidate is a singleton; the committed
	// form of the same digit is not.
	for d := 1; d <= 9; d++ {
		open := Single(d) | openBit
		if !open.IsSingleton() {
			t.Errorf("open cell with only digit %d is not a singleton", d)
		}
		if open.Possibilities() != 1 {
			t.Errorf("open cell with only digit %d has %d possibilities", d, open.Possibilities())
		}
		if Single(d).IsSingleton() {
			t.Errorf("committed cell %d reports singleton", d)
		}
	}
}

func TestValid(t *testing.T) {
	if !Initial().Valid() {
		t.Error("fresh cell invalid")
	}
	if !Single(5).Valid() {
		t.Error("committed cell invalid")
	}
	if Set(0).Valid() {
		t.Error("empty set valid")
	}
	if openBit.Valid() {
		t.Error("open cell with no candidates valid")
	}
}
