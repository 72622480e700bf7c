package appctx_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/project-service/internal/app/context"
)

// journal records the order actions run and roll back in.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(entry string) {
	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

// putAction stands in for an object upload.
type putAction struct {
	key         string
	log         *journal
	err         error
	rollbackErr error
	block       bool
}

func (a *putAction) Execute(ctx context.Context) error {
	if a.block {
		<-ctx.Done()
		a.log.add("canceled:" + a.key)
		return ctx.Err()
	}
	if a.err != nil {
		return a.err
	}
	a.log.add("put:" + a.key)
	return nil
}

func (a *putAction) Rollback(context.Context) error {
	a.log.add("delete:" + a.key)
	return a.rollbackErr
}

func (a *putAction) Description() string { return "put " + a.key }

func TestGetOrFetch_MemoizesByKey(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{"ada", "grace"}, nil
	}

	first, err := appctx.GetOrFetch(rc, "users:a,b", fetch)
	require.NoError(t, err)
	second, err := appctx.GetOrFetch(rc, "users:a,b", fetch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}

	_, err = appctx.GetOrFetch(rc, "users:c", fetch)
	require.NoError(t, err)
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
}

func TestGetOrFetch_MemoizesFailure(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	errDirectory := errors.New("directory unavailable")
	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		return 0, errDirectory
	}

	for range 3 {
		_, err := appctx.GetOrFetch(rc, "users", fetch)
		require.ErrorIs(t, err, errDirectory)
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	_, err := appctx.GetOrFetch(rc, "k", func(context.Context) (string, error) { return "v", nil })
	require.NoError(t, err)

	_, err = appctx.GetOrFetch(rc, "k", func(context.Context) (int, error) { return 1, nil })
	require.ErrorIs(t, err, appctx.ErrTypeMismatch)
}

func TestGetOrFetch_PassesEmbeddedContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	rc := appctx.New(context.WithValue(context.Background(), key{}, "req-1"))

	got, err := appctx.GetOrFetch(rc, "k", func(ctx context.Context) (string, error) {
		v, _ := ctx.Value(key{}).(string)
		return v, nil
	})
	require.NoError(t, err)
	if got != "req-1" {
		t.Errorf("GetOrFetch() = %q, want %q", got, "req-1")
	}
}

func TestCommit(t *testing.T) {
	t.Parallel()

	errPut := errors.New("bucket unavailable")

	tests := []struct {
		name    string
		build   func(log *journal) (group []*putAction, last *putAction)
		wantErr error
		want    []string
	}{
		{
			name: "uploads then metadata",
			build: func(log *journal) ([]*putAction, *putAction) {
				return []*putAction{{key: "a", log: log}}, &putAction{key: "meta", log: log}
			},
			want: []string{"put:a", "put:meta"},
		},
		{
			name: "metadata failure deletes uploaded objects",
			build: func(log *journal) ([]*putAction, *putAction) {
				return []*putAction{{key: "a", log: log}}, &putAction{key: "meta", log: log, err: errPut}
			},
			wantErr: errPut,
			want:    []string{"put:a", "delete:a"},
		},
		{
			name: "rollback failure does not stop other rollbacks",
			build: func(log *journal) ([]*putAction, *putAction) {
				return []*putAction{{key: "a", log: log, rollbackErr: errors.New("gone")}}, &putAction{key: "meta", log: log, err: errPut}
			},
			wantErr: errPut,
			want:    []string{"put:a", "delete:a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := &journal{}
			group, last := tt.build(log)

			rc := appctx.New(context.Background())
			for _, a := range group {
				require.NoError(t, rc.AddAction(a))
			}
			require.NoError(t, rc.AddAction(last))

			err := rc.Commit(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, log.list())
		})
	}
}

func TestCommit_GroupFailureUndoesFinishedUploads(t *testing.T) {
	t.Parallel()

	log := &journal{}
	errPut := errors.New("quota exceeded")

	rc := appctx.New(context.Background())
	require.NoError(t, rc.AddAction(&putAction{key: "first", log: log}))
	require.NoError(t, rc.AddGroup(
		&putAction{key: "slow", log: log, block: true},
		&putAction{key: "broken", log: log, err: errPut},
	))
	require.NoError(t, rc.AddAction(&putAction{key: "meta", log: log}))

	done := make(chan error, 1)
	go func() { done <- rc.Commit(context.Background()) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, errPut)
	case <-time.After(2 * time.Second):
		t.Fatal("Commit() did not cancel the blocked upload")
	}

	got := log.list()
	assert.Contains(t, got, "delete:first")
	assert.NotContains(t, got, "put:meta")
	assert.NotContains(t, got, "delete:slow")
	assert.NotContains(t, got, "delete:broken")
}

func TestCommit_GroupUploadsConcurrently(t *testing.T) {
	t.Parallel()

	var started sync.WaitGroup
	started.Add(2)
	release := make(chan struct{})

	rc := appctx.New(context.Background())
	require.NoError(t, rc.AddGroup(
		barrierAction{started: &started, release: release},
		barrierAction{started: &started, release: release},
	))

	go func() {
		started.Wait()
		close(release)
	}()

	done := make(chan error, 1)
	go func() { done <- rc.Commit(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("group actions did not run concurrently")
	}
}

type barrierAction struct {
	started *sync.WaitGroup
	release chan struct{}
}

func (b barrierAction) Execute(ctx context.Context) error {
	b.started.Done()
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (barrierAction) Rollback(context.Context) error { return nil }
func (barrierAction) Description() string           { return "barrier" }

func TestCommit_RunsOnce(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	require.NoError(t, rc.Commit(context.Background()))

	require.ErrorIs(t, rc.Commit(context.Background()), appctx.ErrAlreadyCommitted)
	require.ErrorIs(t, rc.AddAction(&putAction{key: "late"}), appctx.ErrAlreadyCommitted)
	require.ErrorIs(t, rc.AddGroup(&putAction{key: "late"}), appctx.ErrAlreadyCommitted)
}

func TestStaging_RejectsNilAction(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	require.ErrorIs(t, rc.AddAction(nil), appctx.ErrNilAction)
	require.ErrorIs(t, rc.AddGroup(&putAction{key: "a"}, nil), appctx.ErrNilAction)
}
