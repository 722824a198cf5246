package slot

import (
	"sync"
	"telecare-service/internal/app/models"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
)

type profileEntry struct {
	doctor models.Doctor
	expiry time.Time
}

func (e profileEntry) isExpired(now time.Time) bool {
	return now.After(e.expiry)
}

// profileCache keeps recently used doctor profiles for the availability engine.
type profileCache struct {
	expiration time.Duration
	lru        *simplelru.LRU
	mu         *sync.Mutex
	now        func() time.Time
}

func newProfileCache(size int, expiration time.Duration, now func() time.Time) (*profileCache, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}
	return &profileCache{
		expiration: expiration,
		lru:        lru,
		mu:         &sync.Mutex{},
		now:        now,
	}, nil
}

func (c *profileCache) get(doctorID string) (*models.Doctor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(doctorID)
	if !ok {
		return nil, false
	}
	entry := e.(profileEntry)
	if entry.isExpired(c.now()) {
		c.lru.Remove(doctorID)
		return nil, false
	}
	doctor := entry.doctor
	return &doctor, true
}

func (c *profileCache) add(doctor models.Doctor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(doctor.ID, profileEntry{doctor: doctor, expiry: c.now().Add(c.expiration)})
}

func (c *profileCache) remove(doctorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Remove(doctorID)
}
