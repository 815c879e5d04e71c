package domain

// RenderComponent - как сущность отображается клиентом.
type RenderComponent struct {
	Glyph rune   `json:"glyph"`
	Color string `json:"color"`
	// Order - слой отрисовки: игрок поверх монстров, монстры поверх предметов.
	Order int `json:"order"`
}

// StatsComponent - боевые характеристики.
type StatsComponent struct {
	MaxHP    int `json:"maxHp"`
	HP       int `json:"hp"`
	Strength int `json:"strength"`
	Defense  int `json:"defense"`
}

// TakeDamage уменьшает HP, не опускаясь ниже нуля.
func (s *StatsComponent) TakeDamage(amount int) {
	s.HP -= amount
	if s.HP < 0 {
		s.HP = 0
	}
}

// Heal восстанавливает HP, не превышая максимум.
func (s *StatsComponent) Heal(amount int) {
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// IsDead - HP исчерпаны.
func (s *StatsComponent) IsDead() bool {
	return s.HP <= 0
}

// BehaviorKind - модель поведения сущности
type BehaviorKind uint8

const (
	BehaviorPlayer BehaviorKind = iota
	BehaviorHostile
	BehaviorPassive
)

// BehaviorComponent определяет, кто водит сущность: игрок или ИИ.
type BehaviorComponent struct {
	Kind BehaviorKind `json:"kind"`

	// LastHeading - последнее направление движения к игроку. Когда игрок
	// выходит из видимости, монстр продолжает дрейфовать по этому курсу.
	LastHeading *Position `json:"lastHeading,omitempty"`
}

// VisionComponent - поле зрения сущности.
type VisionComponent struct {
	Radius int `json:"radius"`

	// CachedVisibleTiles - результат последнего расчета FOV.
	// Пересчитывается только когда IsDirty == true.
	CachedVisibleTiles map[Position]bool `json:"-"`
	IsDirty            bool              `json:"-"`
}

// NewVisionComponent создает компонент зрения, требующий первичного расчета.
func NewVisionComponent(radius int) *VisionComponent {
	return &VisionComponent{
		Radius:             radius,
		CachedVisibleTiles: make(map[Position]bool),
		IsDirty:            true,
	}
}

// CanSee - видна ли точка по последнему расчету.
func (v *VisionComponent) CanSee(pos Position) bool {
	return v.CachedVisibleTiles[pos]
}

// InventoryComponent - рюкзак. Хранит ID предметов, сами предметы
// остаются сущностями в EntityStore (без позиции на карте).
type InventoryComponent struct {
	Items    []EntityID `json:"items"`
	Capacity int        `json:"capacity"`
}

// IsFull - достигнут ли предел вместимости.
func (inv *InventoryComponent) IsFull() bool {
	return inv.Capacity > 0 && len(inv.Items) >= inv.Capacity
}

// Remove удаляет предмет из списка, сохраняя порядок остальных.
func (inv *InventoryComponent) Remove(id EntityID) bool {
	for i, it := range inv.Items {
		if it == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ItemEffect - что предмет делает при использовании
type ItemEffect uint8

const (
	EffectNone ItemEffect = iota
	EffectHeal
)

// ItemComponent - сущность является предметом.
type ItemComponent struct {
	Effect ItemEffect `json:"effect"`
	Power  int        `json:"power"`
	// Consumable - предмет исчезает после использования.
	Consumable bool `json:"consumable"`
	// CarriedBy - кто несет предмет; nil, если предмет лежит на полу.
	CarriedBy *EntityID `json:"carriedBy,omitempty"`
}
