package symbols

import (
	"testing"

	"wasmc/internal/types"
)

func TestSignatureKeyDeterministicAndOrderSensitive(t *testing.T) {
	reg, _ := types.NewRegistry(4)
	i32 := reg.Get(types.Int)
	dbl := reg.Get(types.Double)

	keyA := MakeSignatureKey([]*types.PrimitiveType{i32, dbl}, i32)
	keyB := MakeSignatureKey([]*types.PrimitiveType{i32, dbl}, i32)
	if keyA != keyB {
		t.Fatalf("identical signatures should produce identical keys")
	}

	keyC := MakeSignatureKey([]*types.PrimitiveType{dbl, i32}, i32)
	if keyA == keyC {
		t.Fatalf("reordered params should change the key")
	}
}

func TestFirstSightOnlyOnce(t *testing.T) {
	reg, _ := types.NewRegistry(4)
	i32 := reg.Get(types.Int)
	key := MakeSignatureKey([]*types.PrimitiveType{i32}, i32)

	table := NewTable()
	if !table.FirstSight(key) {
		t.Fatalf("expected first sight to be true")
	}
	if table.FirstSight(key) {
		t.Fatalf("expected second sight to be false")
	}
}

func TestLocalScopeAssignsPositionalSlots(t *testing.T) {
	reg, _ := types.NewRegistry(4)
	i32 := reg.Get(types.Int)

	scope := NewLocalScope()
	a := scope.Declare("a", i32)
	b := scope.Declare("b", i32)
	if a.Index != 0 || b.Index != 1 {
		t.Fatalf("expected sequential slots, got %d and %d", a.Index, b.Index)
	}
}
