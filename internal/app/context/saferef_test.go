package appctx_test

import (
	"sync"
	"testing"

	appctx "github.com/jsamuelsen11/project-service/internal/app/context"
)

func TestSafeRef_SetAndGet(t *testing.T) {
	t.Parallel()

	slot := appctx.NewRef("")
	slot.Set("user-42")

	if got := slot.Get(); got != "user-42" {
		t.Errorf("Get() = %q, want %q", got, "user-42")
	}
}

func TestSafeRef_ConcurrentByteCounter(t *testing.T) {
	t.Parallel()

	uploaded := appctx.NewRef(int64(0))
	sizes := []int64{512, 1024, 2048, 4096, 8192}

	var wg sync.WaitGroup
	for _, size := range sizes {
		wg.Go(func() {
			uploaded.Update(func(total *int64) { *total += size })
		})
	}
	wg.Wait()

	if got := uploaded.Get(); got != 15872 {
		t.Errorf("Get() = %d, want %d", got, 15872)
	}
}
