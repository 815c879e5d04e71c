package systems

import (
	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

// MeleeDamage считает урон ближней атаки: сила минус защита,
// но не меньше единицы - любая атака оставляет царапину.
func MeleeDamage(attacker, defender *domain.StatsComponent) int {
	dmg := attacker.Strength - defender.Defense
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// QueueMelee ставит ближнюю атаку в очередь урона. Атака не применяется
// немедленно: цель сохраняет возможность ответить в этом же ходу.
func QueueMelee(queue *DamageQueue, attacker, target *domain.Entity) {
	if attacker.Stats == nil || target.Stats == nil {
		return
	}
	dmg := MeleeDamage(attacker.Stats, target.Stats)
	queue.Add(target.ID, dmg)

	logger.Log.WithFields(map[string]interface{}{
		"attacker": attacker.Name,
		"target":   target.Name,
		"damage":   dmg,
	}).Debug("Melee attack queued")
}
