package safezone

import "testing"

func TestRegistryLookupRoundTrip(t *testing.T) {
	r := NewRegistry()
	c := NewSafeZoneCalculator()
	id := r.Register(c)

	if got := r.Lookup(id); got != c {
		t.Errorf("Lookup(%d) = %v, want %v", id, got, c)
	}
	if got := r.Lookup(id + 999); got != nil {
		t.Errorf("Lookup of unknown id = %v, want nil", got)
	}
}

func TestRegistryIsStaleTracksGeneration(t *testing.T) {
	r := NewRegistry()
	c := NewSafeZoneCalculator()
	id := r.Register(c)

	if r.IsStale(id) {
		t.Error("expected fresh registration to not be stale")
	}

	c.AddZone(ForbiddenZone{Shape: NewCircle(Vec2{}, 1)})
	if !r.IsStale(id) {
		t.Error("expected registry entry to be stale after AddZone")
	}

	r.Refresh(id)
	if r.IsStale(id) {
		t.Error("expected entry to be fresh again after Refresh")
	}
}

func TestRegistryIsStaleUnknownIDReportsTrue(t *testing.T) {
	r := NewRegistry()
	if !r.IsStale(12345) {
		t.Error("expected unknown id to report stale")
	}
}

func TestRegistryForgetRemovesEntry(t *testing.T) {
	r := NewRegistry()
	c := NewSafeZoneCalculator()
	id := r.Register(c)
	r.Forget(id)

	if got := r.Lookup(id); got != nil {
		t.Errorf("expected nil after Forget, got %v", got)
	}
	if !r.IsStale(id) {
		t.Error("expected forgotten id to report stale")
	}
}

func TestRegistryMultipleCalculatorsIndependentIDs(t *testing.T) {
	r := NewRegistry()
	a := NewSafeZoneCalculator()
	b := NewSafeZoneCalculator()
	idA := r.Register(a)
	idB := r.Register(b)

	if idA == idB {
		t.Fatal("expected distinct ids for distinct registrations")
	}

	a.AddZone(ForbiddenZone{Shape: NewCircle(Vec2{}, 1)})
	if !r.IsStale(idA) {
		t.Error("expected a's entry to be stale")
	}
	if r.IsStale(idB) {
		t.Error("expected b's entry to remain fresh")
	}
}
