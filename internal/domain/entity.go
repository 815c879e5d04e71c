package domain

// ComponentMask - битовая маска наличия компонентов, используется
// запросами EntityStore.EachWith.
type ComponentMask uint32

const (
	MaskRender ComponentMask = 1 << iota
	MaskStats
	MaskBehavior
	MaskVision
	MaskInventory
	MaskItem
	MaskBlocker
)

// Entity - игровая сущность. Всегда имеет ID и позицию; остальное -
// опциональные компоненты (nil = компонента нет).
type Entity struct {
	ID       EntityID `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`

	Render    *RenderComponent    `json:"render,omitempty"`
	Stats     *StatsComponent     `json:"stats,omitempty"`
	Behavior  *BehaviorComponent  `json:"behavior,omitempty"`
	Vision    *VisionComponent    `json:"vision,omitempty"`
	Inventory *InventoryComponent `json:"inventory,omitempty"`
	Item      *ItemComponent      `json:"item,omitempty"`

	// Blocker - сущность занимает клетку и не пропускает других.
	Blocker bool `json:"blocker,omitempty"`
}

// Mask возвращает маску присутствующих компонентов.
func (e *Entity) Mask() ComponentMask {
	var m ComponentMask
	if e.Render != nil {
		m |= MaskRender
	}
	if e.Stats != nil {
		m |= MaskStats
	}
	if e.Behavior != nil {
		m |= MaskBehavior
	}
	if e.Vision != nil {
		m |= MaskVision
	}
	if e.Inventory != nil {
		m |= MaskInventory
	}
	if e.Item != nil {
		m |= MaskItem
	}
	if e.Blocker {
		m |= MaskBlocker
	}
	return m
}

// HasComponents - true, если у сущности есть ВСЕ компоненты из маски.
func (e *Entity) HasComponents(mask ComponentMask) bool {
	return e.Mask()&mask == mask
}

// IsPlayer - сущность управляется игроком.
func (e *Entity) IsPlayer() bool {
	return e.Behavior != nil && e.Behavior.Kind == BehaviorPlayer
}

// IsHostile - сущность атакует игрока при контакте.
func (e *Entity) IsHostile() bool {
	return e.Behavior != nil && e.Behavior.Kind == BehaviorHostile
}
