package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/internal/store"
)

type recordingStore struct {
	mu       sync.Mutex
	saves    []*models.Snapshot
	sessions []string
	saveErr  error
}

func (r *recordingStore) Load(ctx context.Context) (*models.Snapshot, error) {
	return nil, ErrNotFound
}

func (r *recordingStore) Save(ctx context.Context, snap *models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, snap)
	return nil
}

func (r *recordingStore) LoadSession(ctx context.Context) (string, error) {
	return "", ErrNotFound
}

func (r *recordingStore) SaveSession(ctx context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, accountID)
	return nil
}

func (r *recordingStore) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves), len(r.sessions)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestWriterSavesEnqueuedJobs(t *testing.T) {
	rec := &recordingStore{}
	w := NewWriter(rec, 4, nil)
	w.Start(context.Background())
	defer w.Stop()

	w.EnqueueSnapshot(store.Seed())
	w.EnqueueSession("stu-1001")

	waitFor(t, func() bool {
		saves, sessions := rec.counts()
		return saves == 1 && sessions == 1
	})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, "stu-1001", rec.sessions[0])
	require.Len(t, rec.saves, 1)
	assert.Len(t, rec.saves[0].Courses, 3)
}

func TestWriterDrainsOnStop(t *testing.T) {
	rec := &recordingStore{}
	w := NewWriter(rec, 8, nil)
	w.Start(context.Background())

	for i := 0; i < 5; i++ {
		w.EnqueueSnapshot(store.Seed())
	}
	w.Stop()

	saves, _ := rec.counts()
	assert.Equal(t, 5, saves)
}

func TestWriterDropsWhenNotStarted(t *testing.T) {
	rec := &recordingStore{}
	w := NewWriter(rec, 4, nil)

	w.EnqueueSnapshot(store.Seed())
	w.Stop()

	saves, _ := rec.counts()
	assert.Zero(t, saves)
}

func TestWriterSurvivesSaveFailure(t *testing.T) {
	rec := &recordingStore{saveErr: errors.New("disk full")}
	w := NewWriter(rec, 4, nil)
	w.Start(context.Background())
	defer w.Stop()

	w.EnqueueSnapshot(store.Seed())
	w.EnqueueSession("stu-1001")

	waitFor(t, func() bool {
		_, sessions := rec.counts()
		return sessions == 1
	})
}

func TestWriterStartIsIdempotent(t *testing.T) {
	rec := &recordingStore{}
	w := NewWriter(rec, 4, nil)
	w.Start(context.Background())
	w.Start(context.Background())

	w.EnqueueSession("admin-1")
	waitFor(t, func() bool {
		_, sessions := rec.counts()
		return sessions == 1
	})
	w.Stop()
	w.Stop()
}
