package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// OAuthStateRepository holds short-lived OAuth state tokens so the callback
// can reject forged requests. States expire after 10 minutes.
type OAuthStateRepository struct {
	cache *cache.Cache
}

func NewOAuthStateRepository() *OAuthStateRepository {
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &OAuthStateRepository{
		cache: c,
	}
}

func (r *OAuthStateRepository) Save(state string) {
	r.cache.Set(state, true, cache.DefaultExpiration)
}

// Consume returns whether the state was issued by us, and removes it so a
// state cannot be replayed.
func (r *OAuthStateRepository) Consume(state string) bool {
	if _, found := r.cache.Get(state); found {
		r.cache.Delete(state)
		return true
	}
	return false
}
