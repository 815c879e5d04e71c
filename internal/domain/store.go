package domain

// EntityStore - реестр живых сущностей уровня.
//
// Порядок обхода стабилен: сущности хранятся в порядке создания.
// Уничтожение отложенное: Destroy лишь помечает сущность, физическое
// удаление происходит в Flush в конце хода. Это позволяет системам
// внутри хода безопасно ссылаться на "убитых" в этом же ходу.
type EntityStore struct {
	ordered []*Entity
	byID    map[EntityID]*Entity
	pending map[EntityID]bool

	level     int
	nextIndex uint64
}

// NewEntityStore создает пустой реестр для уровня заданной глубины.
func NewEntityStore(level int) *EntityStore {
	return &EntityStore{
		byID:    make(map[EntityID]*Entity),
		pending: make(map[EntityID]bool),
		level:   level,
	}
}

// Create регистрирует новую сущность, выдавая ей свежий ID.
// Индексы монотонны: ID никогда не переиспользуются.
func (s *EntityStore) Create(t EntityType, name string, pos Position) *Entity {
	e := &Entity{
		ID:       NewEntityID(t, s.level, s.nextIndex),
		Name:     name,
		Position: pos,
	}
	s.nextIndex++
	s.ordered = append(s.ordered, e)
	s.byID[e.ID] = e
	return e
}

// Adopt переносит существующую сущность (с ее старым ID) в этот реестр.
// Используется при спуске на новый уровень: игрок и содержимое его
// рюкзака сохраняют идентичность.
func (s *EntityStore) Adopt(e *Entity) {
	if _, exists := s.byID[e.ID]; exists {
		return
	}
	// Продвигаем счетчик, чтобы свежие ID не столкнулись с принятыми
	// (важно при восстановлении уровня из снимка).
	if e.ID.Level() == s.level && e.ID.Index() >= s.nextIndex {
		s.nextIndex = e.ID.Index() + 1
	}
	s.ordered = append(s.ordered, e)
	s.byID[e.ID] = e
}

// Get возвращает сущность по ID или ErrUnknownEntity.
// Помеченные на удаление сущности остаются доступны до Flush.
func (s *EntityStore) Get(id EntityID) (*Entity, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, ErrUnknownEntity
	}
	return e, nil
}

// Destroy помечает сущность на удаление. Идемпотентно.
func (s *EntityStore) Destroy(id EntityID) {
	if _, ok := s.byID[id]; ok {
		s.pending[id] = true
	}
}

// IsPendingDestroy - сущность помечена на удаление в этом ходу.
func (s *EntityStore) IsPendingDestroy(id EntityID) bool {
	return s.pending[id]
}

// Flush атомарно удаляет все помеченные сущности, снимая их с карты.
// Вызывается один раз в конце хода. Возвращает удаленных.
func (s *EntityStore) Flush(world *GameWorld) []*Entity {
	if len(s.pending) == 0 {
		return nil
	}
	var removed []*Entity
	kept := s.ordered[:0]
	for _, e := range s.ordered {
		if s.pending[e.ID] {
			if world != nil {
				world.RemoveEntity(e)
			}
			delete(s.byID, e.ID)
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	s.ordered = kept
	s.pending = make(map[EntityID]bool)
	return removed
}

// All возвращает живые сущности в порядке создания, пропуская
// помеченные на удаление.
func (s *EntityStore) All() []*Entity {
	out := make([]*Entity, 0, len(s.ordered))
	for _, e := range s.ordered {
		if !s.pending[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// EachWith обходит сущности, имеющие ВСЕ компоненты маски, в порядке
// создания. Возврат false из fn прерывает обход.
func (s *EntityStore) EachWith(mask ComponentMask, fn func(*Entity) bool) {
	for _, e := range s.ordered {
		if s.pending[e.ID] {
			continue
		}
		if !e.HasComponents(mask) {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Count - число живых (не помеченных) сущностей.
func (s *EntityStore) Count() int {
	return len(s.ordered) - len(s.pending)
}

// Level - глубина уровня, которому принадлежит реестр.
func (s *EntityStore) Level() int {
	return s.level
}
