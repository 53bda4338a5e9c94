package items

// EquipSlot enumerates the body slots a villager can equip items in.
type EquipSlot uint8

const (
	SlotHead EquipSlot = iota
	SlotChest
	SlotLegs
	SlotFeet
	SlotMainHand
	SlotOffHand
)

// AllEquipSlots lists every slot in a stable order.
var AllEquipSlots = [6]EquipSlot{SlotHead, SlotChest, SlotLegs, SlotFeet, SlotMainHand, SlotOffHand}

// Equipment holds what a villager is currently wearing and wielding.
type Equipment struct {
	Slots map[EquipSlot]Stack `json:"slots"`
}

// NewEquipment creates an equipment set with all slots empty.
func NewEquipment() *Equipment {
	slots := make(map[EquipSlot]Stack, len(AllEquipSlots))
	for _, s := range AllEquipSlots {
		slots[s] = Empty
	}
	return &Equipment{Slots: slots}
}

// SlotFor returns the equip slot appropriate for an item type, and false
// for items that cannot be equipped.
func SlotFor(item ItemType) (EquipSlot, bool) {
	switch item.ItemCategory() {
	case CategoryArmor:
		return itemDefs[item].armorSlot, true
	case CategorySword, CategoryTool:
		return SlotMainHand, true
	case CategoryShield:
		return SlotOffHand, true
	default:
		return 0, false
	}
}

// betterThan reports whether a strictly beats b for the same slot.
// Armor compares defense, tiered tools compare tier, everything else
// falls back to durability.
func betterThan(a, b Stack) bool {
	if b.IsEmpty() {
		return true
	}
	if a.Item.ItemCategory() == CategoryArmor && b.Item.ItemCategory() == CategoryArmor {
		return a.Item.Defense() > b.Item.Defense()
	}
	aTiered := a.Item.ItemCategory() == CategoryTool || a.Item.ItemCategory() == CategorySword
	bTiered := b.Item.ItemCategory() == CategoryTool || b.Item.ItemCategory() == CategorySword
	if aTiered && bTiered {
		return a.Item.Tier() > b.Item.Tier()
	}
	return a.Item.Durability() > b.Item.Durability()
}

// Equip places the stack in its slot when the slot is empty or the item
// strictly beats the current occupant. The replaced stack is returned so
// the caller can put it back in an inventory. ok is false when the item
// is not equippable or not an upgrade.
func (e *Equipment) Equip(stack Stack) (replaced Stack, ok bool) {
	if stack.IsEmpty() {
		return Empty, false
	}
	slot, canEquip := SlotFor(stack.Item)
	if !canEquip {
		return Empty, false
	}
	current := e.Slots[slot]
	if !betterThan(stack, current) {
		return Empty, false
	}
	e.Slots[slot] = stack
	return current, true
}

// Unequip clears a slot and returns what was in it.
func (e *Equipment) Unequip(slot EquipSlot) Stack {
	current := e.Slots[slot]
	e.Slots[slot] = Empty
	return current
}

// Equipped returns the stack in a slot.
func (e *Equipment) Equipped(slot EquipSlot) Stack {
	return e.Slots[slot]
}

// BestTool returns the equipped mainhand item when it is a tool of the
// requested kind, otherwise the empty stack.
func (e *Equipment) BestTool(kind ToolKind) Stack {
	main := e.Slots[SlotMainHand]
	if !main.IsEmpty() && main.Item.Tool() == kind {
		return main
	}
	return Empty
}

// TotalArmor sums the defense values of all worn armor pieces.
func (e *Equipment) TotalArmor() int {
	total := 0
	for _, slot := range [4]EquipSlot{SlotHead, SlotChest, SlotLegs, SlotFeet} {
		s := e.Slots[slot]
		if !s.IsEmpty() {
			total += s.Item.Defense()
		}
	}
	return total
}

// UpgradeFrom scans an inventory for equippable upgrades. Upgrades are
// moved into the equipment set and any replaced item goes back to the
// inventory. An upgrade is skipped when the replaced item would not fit
// back, so nothing is ever destroyed.
func (e *Equipment) UpgradeFrom(inv *Inventory) int {
	upgrades := 0
	for i := 0; i < inv.Size(); i++ {
		s := inv.ItemAt(i)
		if s.IsEmpty() {
			continue
		}
		slot, canEquip := SlotFor(s.Item)
		if !canEquip {
			continue
		}
		candidate := Stack{Item: s.Item, Count: 1}
		if !betterThan(candidate, e.Slots[slot]) {
			continue
		}
		// Taking one out of the slot frees room, so the replaced item
		// (stack size 1) always fits back unless the slot still holds more.
		taken := inv.RemoveItem(i, 1)
		replaced, ok := e.Equip(taken)
		if !ok {
			inv.AddItem(taken)
			continue
		}
		if !replaced.IsEmpty() && !inv.AddItem(replaced) {
			// Roll back: restore the previous item and return the candidate.
			e.Slots[slot] = replaced
			inv.AddItem(taken)
			continue
		}
		upgrades++
	}
	return upgrades
}
