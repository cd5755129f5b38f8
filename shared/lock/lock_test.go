package lock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayy-man/spa-booking-v2-sub002/shared/lock"
)

func TestKeyed_SerializesSameKey(t *testing.T) {
	keyed := lock.NewKeyed()

	var (
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			release := keyed.Acquire("2026-09-07")
			defer release()

			counter++
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestKeyed_IndependentKeysDoNotBlock(t *testing.T) {
	keyed := lock.NewKeyed()

	releaseA := keyed.Acquire("2026-09-07")
	defer releaseA()

	done := make(chan struct{})

	go func() {
		release := keyed.Acquire("2026-09-08")
		release()
		close(done)
	}()

	<-done
}

func TestKeyed_ReacquireAfterRelease(t *testing.T) {
	keyed := lock.NewKeyed()

	release := keyed.Acquire("key")
	release()

	release = keyed.Acquire("key")
	release()
}
