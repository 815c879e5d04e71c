package network

import "sync"

// Broadcaster занимается только рассылкой готовых снимков подписчикам.
// Ключ - сессия клиента, не сущность: несколько вкладок могут смотреть
// одну партию.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> личный канал
	subscribers map[string]chan []byte
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan []byte),
	}
}

// Register создает личный канал для сессии
func (b *Broadcaster) Register(sessionID string) chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan []byte, 100)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет сообщение конкретной сессии (Unicast)
func (b *Broadcaster) SendTo(sessionID string, data []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		select {
		case ch <- data:
		default:
			// Медленный клиент теряет кадр, игра не ждет.
		}
	}
}

// Broadcast отправляет всем подписчикам
func (b *Broadcaster) Broadcast(data []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- data:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
