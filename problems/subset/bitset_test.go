package subset

import "testing"

func TestBitset_SetClearHas(t *testing.T) {
	b := newBitset(130)
	if b.has(5) {
		t.Fatal("fresh bitset should not have bit 5 set")
	}
	b.set(5)
	b.set(129)
	if !b.has(5) || !b.has(129) {
		t.Fatal("expected bits 5 and 129 to be set")
	}
	b.clear(5)
	if b.has(5) {
		t.Fatal("expected bit 5 to be cleared")
	}
	if !b.has(129) {
		t.Fatal("clearing bit 5 should not affect bit 129")
	}
}

func TestBitset_Popcnt(t *testing.T) {
	b := newBitset(200)
	if b.popcnt() != 0 {
		t.Fatalf("popcnt() = %d, want 0", b.popcnt())
	}
	for _, id := range []int{0, 1, 63, 64, 127, 199} {
		b.set(id)
	}
	if b.popcnt() != 6 {
		t.Fatalf("popcnt() = %d, want 6", b.popcnt())
	}
}

func TestBitset_Each_AscendingOrder(t *testing.T) {
	b := newBitset(200)
	want := []int{2, 63, 64, 65, 130}
	for _, id := range want {
		b.set(id)
	}
	var got []int
	b.each(func(id int) { got = append(got, id) })
	if len(got) != len(want) {
		t.Fatalf("each() visited %d ids, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("each() order = %v, want %v", got, want)
		}
	}
}

func TestBitset_Clone_IsIndependent(t *testing.T) {
	b := newBitset(70)
	b.set(10)
	c := b.clone()
	c.set(69)
	if b.has(69) {
		t.Fatal("mutating the clone should not affect the original")
	}
	if !c.has(10) {
		t.Fatal("clone should retain bits set before cloning")
	}
}

func TestBitset_Equal(t *testing.T) {
	a := newBitset(70)
	b := newBitset(70)
	if !a.equal(b) {
		t.Fatal("two empty bitsets over the same universe should be equal")
	}
	a.set(10)
	if a.equal(b) {
		t.Fatal("bitsets with different members should not be equal")
	}
	b.set(10)
	if !a.equal(b) {
		t.Fatal("bitsets with the same members should be equal")
	}
}

func TestBitset_Hash_ConsistentWithEqual(t *testing.T) {
	a := newBitset(70)
	a.set(3)
	a.set(68)
	b := a.clone()
	if a.hash() != b.hash() {
		t.Fatal("equal bitsets must hash equal")
	}
	b.set(5)
	if a.hash() == b.hash() {
		t.Fatal("differing bitsets should (almost certainly) hash differently")
	}
}
