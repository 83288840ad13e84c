package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingularGetSetDelete(t *testing.T) {
	c := NewSingular[string]("greeting")

	_, err := c.Get()
	assert.ErrorIs(t, err, ErrNotFound)

	c.Set("hello", time.Minute)
	v, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	c.Delete()
	_, err = c.Get()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSingularMutexGetSetComputesOnce(t *testing.T) {
	c := NewSingular[int]("answer")
	var calls int32

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.MutexGetSet(func() (int, error) {
				atomic.AddInt32(&calls, 1)
				return 42, nil
			}, time.Minute)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSingularMutexGetSetDoesNotCacheErrors(t *testing.T) {
	c := NewSingular[int]("flaky")
	boom := errors.New("boom")

	_, err := c.MutexGetSet(func() (int, error) { return 0, boom }, time.Minute)
	assert.ErrorIs(t, err, boom)

	v, err := c.MutexGetSet(func() (int, error) { return 7, nil }, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
