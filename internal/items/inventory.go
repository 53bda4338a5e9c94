package items

// DefaultInventorySize is the number of slots in a villager inventory,
// three rows of nine.
const DefaultInventorySize = 27

// Inventory is a fixed-size slot inventory with per-item stacking.
type Inventory struct {
	Slots []Stack `json:"slots"`
}

// NewInventory creates an empty inventory with the default slot count.
func NewInventory() *Inventory {
	return &Inventory{Slots: make([]Stack, DefaultInventorySize)}
}

// CanAdd reports whether the full stack would fit without mutating anything.
func (inv *Inventory) CanAdd(stack Stack) bool {
	if stack.IsEmpty() {
		return false
	}
	remaining := stack.Count
	maxStack := stack.Item.MaxStack()
	for _, s := range inv.Slots {
		if s.IsEmpty() {
			remaining -= maxStack
		} else if s.Item == stack.Item && s.Count < maxStack {
			remaining -= maxStack - s.Count
		}
		if remaining <= 0 {
			return true
		}
	}
	return remaining <= 0
}

// AddItem places a stack into the inventory, topping up existing stacks
// first. The add is atomic: if the whole stack does not fit, nothing is
// changed and false is returned.
func (inv *Inventory) AddItem(stack Stack) bool {
	if !inv.CanAdd(stack) {
		return false
	}
	remaining := stack.Count
	maxStack := stack.Item.MaxStack()

	// Top up existing stacks first.
	for i := range inv.Slots {
		s := &inv.Slots[i]
		if s.IsEmpty() || s.Item != stack.Item || s.Count >= maxStack {
			continue
		}
		add := maxStack - s.Count
		if add > remaining {
			add = remaining
		}
		s.Count += add
		remaining -= add
		if remaining == 0 {
			return true
		}
	}

	// Then fill empty slots.
	for i := range inv.Slots {
		if !inv.Slots[i].IsEmpty() {
			continue
		}
		add := remaining
		if add > maxStack {
			add = maxStack
		}
		inv.Slots[i] = Stack{Item: stack.Item, Count: add}
		remaining -= add
		if remaining == 0 {
			return true
		}
	}
	return remaining == 0
}

// ItemAt returns the stack at the given slot without removing it.
func (inv *Inventory) ItemAt(slot int) Stack {
	if slot < 0 || slot >= len(inv.Slots) {
		return Empty
	}
	return inv.Slots[slot]
}

// RemoveItem takes up to count items from a slot and returns them.
func (inv *Inventory) RemoveItem(slot, count int) Stack {
	if slot < 0 || slot >= len(inv.Slots) {
		return Empty
	}
	return inv.Slots[slot].Split(count)
}

// CountItem returns the total quantity of an item type across all slots.
func (inv *Inventory) CountItem(item ItemType) int {
	total := 0
	for _, s := range inv.Slots {
		if !s.IsEmpty() && s.Item == item {
			total += s.Count
		}
	}
	return total
}

// RemoveCount deducts count items of the given type, scanning slots
// first-match and splitting partial stacks. Returns false (untouched)
// when the inventory holds fewer than count.
func (inv *Inventory) RemoveCount(item ItemType, count int) bool {
	if count <= 0 {
		return true
	}
	if inv.CountItem(item) < count {
		return false
	}
	for i := range inv.Slots {
		s := &inv.Slots[i]
		if s.IsEmpty() || s.Item != item {
			continue
		}
		taken := s.Split(count)
		count -= taken.Count
		if count == 0 {
			return true
		}
	}
	return count == 0
}

// IsEmpty reports whether every slot is empty.
func (inv *Inventory) IsEmpty() bool {
	for _, s := range inv.Slots {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// Size returns the slot count.
func (inv *Inventory) Size() int {
	return len(inv.Slots)
}
