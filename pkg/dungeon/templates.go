package dungeon

import "rogue-server/internal/domain"

// EntityTemplate определяет шаблон для создания существа
type EntityTemplate struct {
	Name     string
	Render   domain.RenderComponent
	Stats    domain.StatsComponent
	Behavior domain.BehaviorKind
	Vision   int
}

// Spawn создает существо из шаблона в реестре уровня.
func (t EntityTemplate) Spawn(store *domain.EntityStore, pos domain.Position) *domain.Entity {
	e := store.Create(domain.EntityTypeNPC, t.Name, pos)
	e.Render = &domain.RenderComponent{
		Glyph: t.Render.Glyph,
		Color: t.Render.Color,
		Order: 1,
	}
	e.Stats = &domain.StatsComponent{
		MaxHP:    t.Stats.MaxHP,
		HP:       t.Stats.MaxHP,
		Strength: t.Stats.Strength,
		Defense:  t.Stats.Defense,
	}
	e.Behavior = &domain.BehaviorComponent{Kind: t.Behavior}
	e.Vision = domain.NewVisionComponent(t.Vision)
	e.Blocker = true
	return e
}

// --- ВРАГИ ---

var Goblin = EntityTemplate{
	Name: "Гоблин",
	Render: domain.RenderComponent{
		Glyph: 'g',
		Color: "#22C55E",
	},
	Stats: domain.StatsComponent{
		MaxHP:    8,
		Strength: 3,
		Defense:  0,
	},
	Behavior: domain.BehaviorHostile,
	Vision:   8,
}

var Orc = EntityTemplate{
	Name: "Орк",
	Render: domain.RenderComponent{
		Glyph: 'o',
		Color: "#DC2626",
	},
	Stats: domain.StatsComponent{
		MaxHP:    16,
		Strength: 4,
		Defense:  1,
	},
	Behavior: domain.BehaviorHostile,
	Vision:   8,
}

var Troll = EntityTemplate{
	Name: "Тролль",
	Render: domain.RenderComponent{
		Glyph: 'T',
		Color: "#78716C",
	},
	Stats: domain.StatsComponent{
		MaxHP:    30,
		Strength: 8,
		Defense:  2,
	},
	Behavior: domain.BehaviorHostile,
	Vision:   6,
}

// EnemyTemplates - карта всех доступных врагов
var EnemyTemplates = map[string]EntityTemplate{
	"goblin": Goblin,
	"orc":    Orc,
	"troll":  Troll,
}

// --- ПРЕДМЕТЫ ---

// ItemTemplate определяет шаблон для создания предмета-сущности
type ItemTemplate struct {
	Name       string
	Render     domain.RenderComponent
	Properties domain.ItemComponent
}

// Spawn создает предмет из шаблона на полу.
func (t ItemTemplate) Spawn(store *domain.EntityStore, pos domain.Position) *domain.Entity {
	e := store.Create(domain.EntityTypeItem, t.Name, pos)
	e.Render = &domain.RenderComponent{
		Glyph: t.Render.Glyph,
		Color: t.Render.Color,
		Order: 0,
	}
	e.Item = &domain.ItemComponent{
		Effect:     t.Properties.Effect,
		Power:      t.Properties.Power,
		Consumable: t.Properties.Consumable,
	}
	return e
}

var HealthPotion = ItemTemplate{
	Name: "Зелье лечения",
	Render: domain.RenderComponent{
		Glyph: '!',
		Color: "#DC2626",
	},
	Properties: domain.ItemComponent{
		Effect:     domain.EffectHeal,
		Power:      8,
		Consumable: true,
	},
}

var GreaterHealthPotion = ItemTemplate{
	Name: "Большое зелье лечения",
	Render: domain.RenderComponent{
		Glyph: '!',
		Color: "#991B1B",
	},
	Properties: domain.ItemComponent{
		Effect:     domain.EffectHeal,
		Power:      20,
		Consumable: true,
	},
}

// ItemTemplates - карта всех доступных предметов
var ItemTemplates = map[string]ItemTemplate{
	"health_potion":         HealthPotion,
	"greater_health_potion": GreaterHealthPotion,
}
