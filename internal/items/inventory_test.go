package items

import "testing"

func TestAddItemStacksExisting(t *testing.T) {
	inv := NewInventory()

	if !inv.AddItem(NewStack(ItemCoal, 40)) {
		t.Fatal("first add failed")
	}
	if !inv.AddItem(NewStack(ItemCoal, 40)) {
		t.Fatal("second add failed")
	}

	if got := inv.CountItem(ItemCoal); got != 80 {
		t.Fatalf("count = %d, want 80", got)
	}
	// 64 in the first slot, 16 overflowed into the second.
	if got := inv.ItemAt(0).Count; got != 64 {
		t.Fatalf("slot 0 count = %d, want 64", got)
	}
	if got := inv.ItemAt(1).Count; got != 16 {
		t.Fatalf("slot 1 count = %d, want 16", got)
	}
}

func TestAddItemRejectsWhenFull(t *testing.T) {
	inv := NewInventory()

	// Fill all 27 slots with unstackable tools.
	for i := 0; i < DefaultInventorySize; i++ {
		if !inv.AddItem(NewStack(ItemIronPickaxe, 1)) {
			t.Fatalf("add %d failed before inventory was full", i)
		}
	}

	if inv.CanAdd(NewStack(ItemCoal, 1)) {
		t.Fatal("CanAdd reported room in a full inventory")
	}
	if inv.AddItem(NewStack(ItemCoal, 1)) {
		t.Fatal("AddItem succeeded on a full inventory")
	}
	if got := inv.CountItem(ItemCoal); got != 0 {
		t.Fatalf("failed add left %d coal behind", got)
	}
}

func TestAddItemAllOrNothing(t *testing.T) {
	inv := NewInventory()

	// Leave exactly 10 units of coal capacity.
	for i := 0; i < DefaultInventorySize-1; i++ {
		inv.AddItem(NewStack(ItemIronPickaxe, 1))
	}
	inv.AddItem(NewStack(ItemCoal, 54))

	if inv.AddItem(NewStack(ItemCoal, 11)) {
		t.Fatal("partial add should have been rejected")
	}
	if got := inv.CountItem(ItemCoal); got != 54 {
		t.Fatalf("count after rejected add = %d, want 54", got)
	}
	if !inv.AddItem(NewStack(ItemCoal, 10)) {
		t.Fatal("exact-fit add failed")
	}
}

func TestRemoveCount(t *testing.T) {
	inv := NewInventory()
	inv.AddItem(NewStack(ItemWheat, 64))
	inv.AddItem(NewStack(ItemWheat, 30))

	if !inv.RemoveCount(ItemWheat, 70) {
		t.Fatal("remove failed despite sufficient stock")
	}
	if got := inv.CountItem(ItemWheat); got != 24 {
		t.Fatalf("count = %d, want 24", got)
	}

	if inv.RemoveCount(ItemWheat, 25) {
		t.Fatal("remove succeeded despite insufficient stock")
	}
	if got := inv.CountItem(ItemWheat); got != 24 {
		t.Fatalf("failed remove changed count to %d", got)
	}
}

func TestRemoveItemFromSlot(t *testing.T) {
	inv := NewInventory()
	inv.AddItem(NewStack(ItemBread, 10))

	got := inv.RemoveItem(0, 4)
	if got.Item != ItemBread || got.Count != 4 {
		t.Fatalf("removed %v, want 4 bread", got)
	}
	if inv.ItemAt(0).Count != 6 {
		t.Fatalf("slot 0 count = %d, want 6", inv.ItemAt(0).Count)
	}
}

func TestStackSplit(t *testing.T) {
	s := NewStack(ItemCarrot, 10)
	half := s.Split(4)
	if half.Count != 4 || s.Count != 6 {
		t.Fatalf("split 4 of 10 gave %d/%d", half.Count, s.Count)
	}

	rest := s.Split(99)
	if rest.Count != 6 || !s.IsEmpty() {
		t.Fatalf("oversplit gave %d, source empty=%v", rest.Count, s.IsEmpty())
	}
}
