package systems

import (
	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// DamageQueue копит входящий урон в течение хода. Урон ПРИМЕНЯЕТСЯ
// только в фазе разрешения эффектов: порядок атак внутри хода не
// влияет на то, кто доживет до его конца.
type DamageQueue struct {
	order   []domain.EntityID
	pending map[domain.EntityID]int
}

// NewDamageQueue создает пустую очередь урона.
func NewDamageQueue() *DamageQueue {
	return &DamageQueue{pending: make(map[domain.EntityID]int)}
}

// Add накапливает урон по цели. Порядок первых попаданий запоминается,
// чтобы разрешение шло детерминированно.
func (q *DamageQueue) Add(target domain.EntityID, amount int) {
	if amount <= 0 {
		return
	}
	if _, seen := q.pending[target]; !seen {
		q.order = append(q.order, target)
	}
	q.pending[target] += amount
}

// Resolve применяет весь накопленный урон и помечает погибших на
// удаление. Возвращает ID погибших в порядке первых попаданий.
func (q *DamageQueue) Resolve(store *domain.EntityStore) []domain.EntityID {
	var dead []domain.EntityID
	for _, id := range q.order {
		e, err := store.Get(id)
		if err != nil {
			// Цель уже исчезла (например, уничтожена другим эффектом).
			continue
		}
		if e.Stats == nil {
			continue
		}
		total := q.pending[id]
		e.Stats.TakeDamage(total)
		logger.Log.WithFields(map[string]interface{}{
			"target": e.Name,
			"damage": total,
			"hp":     e.Stats.HP,
		}).Debug("Damage resolved")

		if e.Stats.IsDead() {
			dead = append(dead, id)
			// Игрок остается в реестре: терминальное состояние
			// обрабатывает движок, а клиенту нужен финальный снимок.
			if !e.IsPlayer() {
				store.Destroy(id)
			}
		}
	}
	q.order = q.order[:0]
	q.pending = make(map[domain.EntityID]int)
	return dead
}

// Empty - в очереди нет накопленного урона.
func (q *DamageQueue) Empty() bool {
	return len(q.order) == 0
}
