package snapshot

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-erp-api/internal/models"
)

type jobKind int

const (
	jobSaveSnapshot jobKind = iota
	jobSaveSession
)

type job struct {
	kind     jobKind
	snap     *models.Snapshot
	account  string
	enqueued time.Time
}

// Writer serialises snapshot saves onto a single background goroutine.
// Saves are fire-and-forget: failures are logged and dropped, never
// retried, and never roll back in-memory state.
type Writer struct {
	store  Store
	logger *zap.Logger

	jobs    chan job
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// NewWriter builds a writer over the given store.
func NewWriter(store Store, buffer int, logger *zap.Logger) *Writer {
	if buffer <= 0 {
		buffer = 16
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		store:  store,
		logger: logger,
		jobs:   make(chan job, buffer),
	}
}

// Start begins consumption. Safe to call once.
func (w *Writer) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.run()
	w.started = true
}

// Stop cancels the worker and waits for it to exit.
func (w *Writer) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.mu.Unlock()
	w.wg.Wait()
}

// EnqueueSnapshot schedules a save of the aggregate document. When the
// buffer is full the save is dropped with a warning; a later save will
// carry the newer state anyway.
func (w *Writer) EnqueueSnapshot(snap *models.Snapshot) {
	w.enqueue(job{kind: jobSaveSnapshot, snap: snap, enqueued: time.Now().UTC()})
}

// EnqueueSession schedules a save of the session reference.
func (w *Writer) EnqueueSession(accountID string) {
	w.enqueue(job{kind: jobSaveSession, account: accountID, enqueued: time.Now().UTC()})
}

func (w *Writer) enqueue(j job) {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if !started {
		w.logger.Warn("snapshot writer not started, dropping save")
		return
	}

	select {
	case w.jobs <- j:
	default:
		w.logger.Warn("snapshot writer buffer full, dropping save")
	}
}

func (w *Writer) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			w.drain()
			return
		case j := <-w.jobs:
			w.handle(j)
		}
	}
}

// drain flushes pending saves on shutdown so the last transition is not
// lost to the buffer.
func (w *Writer) drain() {
	for {
		select {
		case j := <-w.jobs:
			w.handle(j)
		default:
			return
		}
	}
}

func (w *Writer) handle(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	switch j.kind {
	case jobSaveSnapshot:
		err = w.store.Save(ctx, j.snap)
	case jobSaveSession:
		err = w.store.SaveSession(ctx, j.account)
	}
	if err != nil {
		w.logger.Warn("snapshot save failed",
			zap.Error(err),
			zap.Duration("queued_for", time.Since(j.enqueued)))
	}
}
