package cache

import (
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"olexsmir.xyz/x/is"
)

func TestTTL_SetGet(t *testing.T) {
	c := NewTTL[int](time.Minute)

	t.Run("hit", func(t *testing.T) {
		c.Set("Europe/Paris", 120)
		v, found := c.Get("Europe/Paris")
		is.Equal(t, found, true)
		is.Equal(t, v, 120)
	})

	t.Run("miss", func(t *testing.T) {
		_, found := c.Get("Asia/Tokyo")
		is.Equal(t, found, false)
	})

	t.Run("overwrites prev value", func(t *testing.T) {
		c.Set("Europe/Paris", 120)
		c.Set("Europe/Paris", 60)
		v, _ := c.Get("Europe/Paris")
		is.Equal(t, v, 60)
	})

	t.Run("expired entry", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			c := NewTTL[int](time.Minute)
			c.Set("Europe/Paris", 120)
			time.Sleep(2 * time.Minute)
			v, found := c.Get("Europe/Paris")
			is.Equal(t, found, false)
			is.Equal(t, v, 0)
		})
	})
}

func TestTTL_GetOrCompute(t *testing.T) {
	c := NewTTL[int](time.Minute)

	calls := 0
	compute := func() (int, error) {
		calls++
		return 540, nil
	}

	v, err := c.GetOrCompute("Asia/Tokyo", compute)
	is.Err(t, err, nil)
	is.Equal(t, v, 540)

	v, err = c.GetOrCompute("Asia/Tokyo", compute)
	is.Err(t, err, nil)
	is.Equal(t, v, 540)
	is.Equal(t, calls, 1)

	t.Run("errors are not cached", func(t *testing.T) {
		boom := errors.New("boom")
		fails := 0
		_, err := c.GetOrCompute("bad", func() (int, error) {
			fails++
			return 0, boom
		})
		is.Err(t, err, boom)
		_, err = c.GetOrCompute("bad", func() (int, error) {
			fails++
			return 0, boom
		})
		is.Err(t, err, boom)
		is.Equal(t, fails, 2)
	})
}

func TestTTL_ConcurrentSetGet(t *testing.T) {
	c := NewTTL[int](time.Minute)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("key", i)
		}()
		go func() {
			defer wg.Done()
			c.Get("key")
		}()
	}
	wg.Wait()
}
