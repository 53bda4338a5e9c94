// Package items provides item types, stacks, the slot-based villager
// inventory, and the equipment system.
package items

// ItemType enumerates the items villagers gather, craft, and trade.
type ItemType uint8

const (
	ItemNone ItemType = iota

	// Resources
	ItemCoal
	ItemCopperIngot
	ItemIronIngot
	ItemGoldIngot
	ItemRedstone
	ItemLapis
	ItemDiamond
	ItemEmerald

	// Food
	ItemBread
	ItemApple
	ItemCookedBeef

	// Crops
	ItemWheat
	ItemCarrot
	ItemPotato
	ItemWheatSeeds

	// Tools
	ItemWoodenPickaxe
	ItemStonePickaxe
	ItemIronPickaxe
	ItemGoldenPickaxe
	ItemDiamondPickaxe
	ItemIronAxe
	ItemIronShovel
	ItemIronHoe

	// Weapons and shields
	ItemIronSword
	ItemShield

	// Armor
	ItemLeatherHelmet
	ItemLeatherChestplate
	ItemIronHelmet
	ItemIronChestplate
	ItemIronLeggings
	ItemIronBoots
)

// NumItems is the total number of item types (including ItemNone).
const NumItems = int(ItemIronBoots) + 1

// Category groups items for equipment slot assignment and comparison.
type Category uint8

const (
	CategoryMisc Category = iota
	CategoryArmor
	CategoryTool
	CategorySword
	CategoryShield
)

// ToolKind identifies what work a tool is for.
type ToolKind uint8

const (
	ToolNone ToolKind = iota
	ToolPickaxe
	ToolAxe
	ToolShovel
	ToolHoe
)

// itemDef describes the static properties of an item type.
type itemDef struct {
	name       string
	maxStack   int
	category   Category
	tool       ToolKind
	tier       int // tool tier: wood 0, stone 1, iron 2, gold 0, diamond 3
	armorSlot  EquipSlot
	defense    int
	durability int
}

var itemDefs = map[ItemType]itemDef{
	ItemCoal:        {name: "coal", maxStack: 64},
	ItemCopperIngot: {name: "copper_ingot", maxStack: 64},
	ItemIronIngot:   {name: "iron_ingot", maxStack: 64},
	ItemGoldIngot:   {name: "gold_ingot", maxStack: 64},
	ItemRedstone:    {name: "redstone", maxStack: 64},
	ItemLapis:       {name: "lapis", maxStack: 64},
	ItemDiamond:     {name: "diamond", maxStack: 64},
	ItemEmerald:     {name: "emerald", maxStack: 64},

	ItemBread:      {name: "bread", maxStack: 64},
	ItemApple:      {name: "apple", maxStack: 64},
	ItemCookedBeef: {name: "cooked_beef", maxStack: 64},

	ItemWheat:      {name: "wheat", maxStack: 64},
	ItemCarrot:     {name: "carrot", maxStack: 64},
	ItemPotato:     {name: "potato", maxStack: 64},
	ItemWheatSeeds: {name: "wheat_seeds", maxStack: 64},

	ItemWoodenPickaxe:  {name: "wooden_pickaxe", maxStack: 1, category: CategoryTool, tool: ToolPickaxe, tier: 0, durability: 59},
	ItemStonePickaxe:   {name: "stone_pickaxe", maxStack: 1, category: CategoryTool, tool: ToolPickaxe, tier: 1, durability: 131},
	ItemIronPickaxe:    {name: "iron_pickaxe", maxStack: 1, category: CategoryTool, tool: ToolPickaxe, tier: 2, durability: 250},
	ItemGoldenPickaxe:  {name: "golden_pickaxe", maxStack: 1, category: CategoryTool, tool: ToolPickaxe, tier: 0, durability: 32},
	ItemDiamondPickaxe: {name: "diamond_pickaxe", maxStack: 1, category: CategoryTool, tool: ToolPickaxe, tier: 3, durability: 1561},
	ItemIronAxe:        {name: "iron_axe", maxStack: 1, category: CategoryTool, tool: ToolAxe, tier: 2, durability: 250},
	ItemIronShovel:     {name: "iron_shovel", maxStack: 1, category: CategoryTool, tool: ToolShovel, tier: 2, durability: 250},
	ItemIronHoe:        {name: "iron_hoe", maxStack: 1, category: CategoryTool, tool: ToolHoe, tier: 2, durability: 250},

	ItemIronSword: {name: "iron_sword", maxStack: 1, category: CategorySword, tier: 2, durability: 250},
	ItemShield:    {name: "shield", maxStack: 1, category: CategoryShield, durability: 336},

	ItemLeatherHelmet:     {name: "leather_helmet", maxStack: 1, category: CategoryArmor, armorSlot: SlotHead, defense: 1, durability: 55},
	ItemLeatherChestplate: {name: "leather_chestplate", maxStack: 1, category: CategoryArmor, armorSlot: SlotChest, defense: 3, durability: 80},
	ItemIronHelmet:        {name: "iron_helmet", maxStack: 1, category: CategoryArmor, armorSlot: SlotHead, defense: 2, durability: 165},
	ItemIronChestplate:    {name: "iron_chestplate", maxStack: 1, category: CategoryArmor, armorSlot: SlotChest, defense: 6, durability: 240},
	ItemIronLeggings:      {name: "iron_leggings", maxStack: 1, category: CategoryArmor, armorSlot: SlotLegs, defense: 5, durability: 225},
	ItemIronBoots:         {name: "iron_boots", maxStack: 1, category: CategoryArmor, armorSlot: SlotFeet, defense: 2, durability: 195},
}

// Name returns the identifier string for an item type.
func (t ItemType) Name() string {
	if d, ok := itemDefs[t]; ok {
		return d.name
	}
	return "none"
}

// MaxStack returns how many of this item fit in one inventory slot.
func (t ItemType) MaxStack() int {
	if d, ok := itemDefs[t]; ok {
		return d.maxStack
	}
	return 0
}

// ItemCategory returns the equipment category of an item type.
func (t ItemType) ItemCategory() Category {
	return itemDefs[t].category
}

// Tool returns the tool kind, or ToolNone for non-tools.
func (t ItemType) Tool() ToolKind {
	return itemDefs[t].tool
}

// Tier returns the tool/weapon material tier.
func (t ItemType) Tier() int {
	return itemDefs[t].tier
}

// Defense returns the armor defense value, 0 for non-armor.
func (t ItemType) Defense() int {
	return itemDefs[t].defense
}

// Durability returns the maximum durability of an item, 0 for stackables.
func (t ItemType) Durability() int {
	return itemDefs[t].durability
}
