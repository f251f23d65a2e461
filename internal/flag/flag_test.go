package flag

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	var f Flag
	assert.False(t, f.IsSet())
	assert.True(t, f.Set())
	assert.False(t, f.Set())
	assert.True(t, f.IsSet())
	f.Clear()
	assert.False(t, f.IsSet())
}

func TestFlagSetOnlyOnceUnderContention(t *testing.T) {
	var (
		f       Flag
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.Set() {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, winners)
}
