package override_repo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func TestOverride_ConsumeOnce(t *testing.T) {
	r := NewOverrideRepository()
	assert.False(t, r.Peek())
	assert.False(t, r.Consume())

	r.Set(true)
	assert.True(t, r.Peek())
	assert.True(t, r.Consume())
	assert.False(t, r.Peek())
	assert.False(t, r.Consume())
}

func TestOverride_SetFalseDisarms(t *testing.T) {
	r := NewOverrideRepository()
	r.Set(true)
	r.Set(false)
	assert.False(t, r.Consume())
}

func TestOverride_ConcurrentConsumers(t *testing.T) {
	r := NewOverrideRepository()
	r.Set(true)

	winners := atomic.NewInt32(0)
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Consume() {
				winners.Inc()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
