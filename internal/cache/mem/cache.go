package mem

import (
	"sync"

	"github.com/goserg/standingsserver/internal/domain"
	"github.com/goserg/standingsserver/internal/normalize"
)

// Cache is a by-name player lookup built from the last seen player list.
// It only serves name resolution; ratings are always recomputed from the
// store and never cached here.
type Cache struct {
	mu      sync.RWMutex
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name = normalize.Name(name)
	player, ok := c.players[name]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}
