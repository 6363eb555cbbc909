package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/docuvault/docqa-api/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Processor runs the ingestion pipeline for one document.
type Processor interface {
	Process(ctx context.Context, documentID string) error
}

// Dispatcher routes ingestion tasks to a fixed set of workers using consistent
// hashing on the document ID, guaranteeing per-document task ordering.
type Dispatcher struct {
	workers   []chan string
	processor Processor
	log       zerolog.Logger
	ctx       context.Context
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan string, numWorkers),
		processor: processor,
		log:       log,
		ctx:       context.Background(),
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
// Start must be called before the first Enqueue.
func (d *Dispatcher) Start(ctx context.Context) {
	d.ctx = ctx
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a task to the worker responsible for its document ID.
// The call is non-blocking up to channelBuffer capacity. After the
// dispatcher's context is cancelled nothing drains the channels, so a full
// buffer drops the task with a warning instead of blocking the caller
// during shutdown.
func (d *Dispatcher) Enqueue(documentID string) {
	i := d.shardIndex(documentID)
	select {
	case d.workers[i] <- documentID:
		metrics.IngestionQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	case <-d.ctx.Done():
		d.log.Warn().Str("document_id", documentID).Int("worker_id", i).
			Msg("dispatcher stopped, dropping task")
	}
}

// shardIndex maps a document ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(documentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(documentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	gauge := metrics.IngestionQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case documentID, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))
			if err := d.processor.Process(ctx, documentID); err != nil {
				d.log.Error().Err(err).
					Str("document_id", documentID).
					Int("worker_id", id).
					Msg("ingestion processing failed")
			}
		}
	}
}
