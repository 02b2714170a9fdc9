package barrier

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestWaitReleasesTogether(t *testing.T) {
	const parties, rounds = 6, 200
	b := New(parties)

	counts := make([]int, parties)
	var wg sync.WaitGroup
	errs := make(chan error, parties)
	for id := 0; id < parties; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for round := 1; round <= rounds; round++ {
				counts[id] = round
				if err := b.Wait(nil); err != nil {
					errs <- err
					return
				}
				for other, c := range counts {
					if c < round {
						errs <- fmt.Errorf("round %d: worker %d saw worker %d at %d", round, id, other, c)
						b.Break()
						return
					}
				}
				if err := b.Wait(nil); err != nil {
					errs <- err
					return
				}
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestSerialRunsOnceBeforeRelease(t *testing.T) {
	const parties, rounds = 4, 100
	b := New(parties)

	var mu sync.Mutex
	runs := 0
	shared := 0

	var wg sync.WaitGroup
	failed := make(chan string, parties*rounds)
	for id := 0; id < parties; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for round := 1; round <= rounds; round++ {
				var serial func()
				if id == 0 {
					serial = func() {
						mu.Lock()
						runs++
						mu.Unlock()
						shared = round
					}
				}
				if err := b.Wait(serial); err != nil {
					failed <- err.Error()
					return
				}
				if shared != round {
					failed <- "serial action not visible after release"
					b.Break()
					return
				}
				if err := b.Wait(nil); err != nil {
					failed <- err.Error()
					return
				}
			}
		}(id)
	}
	wg.Wait()
	close(failed)
	for msg := range failed {
		t.Fatal(msg)
	}
	if runs != rounds {
		t.Fatalf("serial ran %d times, want %d", runs, rounds)
	}
}

func TestBreakReleasesWaiters(t *testing.T) {
	b := New(3)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { errs <- b.Wait(nil) }()
	}

	time.Sleep(20 * time.Millisecond)
	b.Break()

	for i := 0; i < 2; i++ {
		select {
		case err := <-errs:
			if !errors.Is(err, ErrBroken) {
				t.Fatalf("waiter returned %v, want ErrBroken", err)
			}
		case <-time.After(time.Second):
			t.Fatal("waiter not released by Break")
		}
	}
	if err := b.Wait(nil); !errors.Is(err, ErrBroken) {
		t.Fatalf("Wait after Break returned %v", err)
	}
	if !b.Broken() {
		t.Fatal("Broken() must report true")
	}
}

func TestSinglePartyNeverBlocks(t *testing.T) {
	b := New(0)
	if b.Parties() != 1 {
		t.Fatalf("Parties() = %d, want 1", b.Parties())
	}
	ran := 0
	for i := 0; i < 3; i++ {
		if err := b.Wait(func() { ran++ }); err != nil {
			t.Fatal(err)
		}
	}
	if ran != 3 {
		t.Fatalf("serial ran %d times, want 3", ran)
	}
}
