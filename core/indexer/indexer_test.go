package indexer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBlock struct {
	height int64
}

func (b *testBlock) BlockHeight() int64 {
	return b.height
}

type testDatasource struct {
	mu         sync.Mutex
	tip        int64
	fetchFails map[int64]int
}

func (d *testDatasource) Name() string { return "test" }

func (d *testDatasource) Fetch(_ context.Context, height int64) (*testBlock, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fetchFails[height] > 0 {
		d.fetchFails[height]--
		return nil, errors.New("fetch failed")
	}
	return &testBlock{height: height}, nil
}

func (d *testDatasource) GetCurrentBlockHeight(context.Context) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tip, nil
}

type testProcessor struct {
	mu        sync.Mutex
	current   int64
	processed []int64
	attempts  map[int64]int
	failures  map[int64]int // remaining failures per height, -1 fails forever
	shutdown  bool
}

func newTestProcessor(current int64) *testProcessor {
	return &testProcessor{
		current:  current,
		attempts: make(map[int64]int),
		failures: make(map[int64]int),
	}
}

func (p *testProcessor) Name() string { return "test" }

func (p *testProcessor) Process(_ context.Context, input *testBlock) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempts[input.height]++
	if n := p.failures[input.height]; n != 0 {
		if n > 0 {
			p.failures[input.height]--
		}
		return errors.New("store unavailable")
	}
	p.processed = append(p.processed, input.height)
	return nil
}

func (p *testProcessor) CurrentBlock(context.Context) (int64, error) {
	return p.current, nil
}

func (p *testProcessor) Shutdown(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shutdown = true
	return nil
}

func (p *testProcessor) processedHeights() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int64(nil), p.processed...)
}

func testConfig() Config {
	return Config{
		PollingInterval: 10 * time.Millisecond,
		PrefetchBlocks:  4,
		InitialBackoff:  time.Millisecond,
	}
}

func runAsync[T Input](ctx context.Context, i *Indexer[T]) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- i.Run(ctx)
	}()
	return errCh
}

func TestIndexerProcessesBlocksInOrder(t *testing.T) {
	ds := &testDatasource{tip: 120}
	p := newTestProcessor(100)
	idx := New[*testBlock](p, ds, testConfig())

	errCh := runAsync(context.Background(), idx)
	require.Eventually(t, func() bool {
		return len(p.processedHeights()) == 20
	}, 5*time.Second, time.Millisecond)

	require.NoError(t, idx.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-errCh)

	expected := make([]int64, 0, 20)
	for h := int64(101); h <= 120; h++ {
		expected = append(expected, h)
	}
	assert.Equal(t, expected, p.processedHeights())
	assert.True(t, p.shutdown)
}

func (p *testProcessor) isShutdown() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shutdown
}

func TestIndexerShutsDownProcessorOnCancel(t *testing.T) {
	ds := &testDatasource{tip: 105}
	p := newTestProcessor(100)
	idx := New[*testBlock](p, ds, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := runAsync(ctx, idx)
	require.Eventually(t, func() bool {
		return len(p.processedHeights()) == 5
	}, 5*time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("indexer did not stop after cancel")
	}
	assert.True(t, p.isShutdown())
}

func TestIndexerPicksUpNewTip(t *testing.T) {
	ds := &testDatasource{tip: 101}
	p := newTestProcessor(100)
	idx := New[*testBlock](p, ds, testConfig())

	errCh := runAsync(context.Background(), idx)
	require.Eventually(t, func() bool {
		return len(p.processedHeights()) == 1
	}, 5*time.Second, time.Millisecond)

	ds.mu.Lock()
	ds.tip = 103
	ds.mu.Unlock()

	require.Eventually(t, func() bool {
		return len(p.processedHeights()) == 3
	}, 5*time.Second, time.Millisecond)

	require.NoError(t, idx.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-errCh)
	assert.Equal(t, []int64{101, 102, 103}, p.processedHeights())
}

func TestIndexerRetriesFailedBlock(t *testing.T) {
	ds := &testDatasource{tip: 105, fetchFails: map[int64]int{104: 1}}
	p := newTestProcessor(100)
	p.failures[103] = 2
	idx := New[*testBlock](p, ds, testConfig())

	errCh := runAsync(context.Background(), idx)
	require.Eventually(t, func() bool {
		return len(p.processedHeights()) == 5
	}, 5*time.Second, time.Millisecond)

	require.NoError(t, idx.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-errCh)

	assert.Equal(t, []int64{101, 102, 103, 104, 105}, p.processedHeights())
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Equal(t, 3, p.attempts[103])
	assert.Equal(t, 1, p.attempts[104])
}

func TestIndexerGivesUpAfterMaxRetries(t *testing.T) {
	ds := &testDatasource{tip: 110}
	p := newTestProcessor(100)
	p.failures[102] = -1
	conf := testConfig()
	conf.MaxBlockRetries = 3
	idx := New[*testBlock](p, ds, conf)

	err := idx.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 102 failed after 3 attempts")
	assert.Equal(t, []int64{101}, p.processedHeights())
	assert.Equal(t, 3, p.attempts[102])
	assert.Equal(t, int64(101), idx.CurrentBlock())
}

func TestNewAppliesDefaults(t *testing.T) {
	idx := New[*testBlock](newTestProcessor(0), &testDatasource{}, Config{})
	assert.Equal(t, DefaultPollingInterval, idx.config.PollingInterval)
	assert.Equal(t, DefaultPrefetchBlocks, idx.config.PrefetchBlocks)
	assert.Equal(t, DefaultInitialBackoff, idx.config.InitialBackoff)
	assert.Zero(t, idx.config.MaxBlockRetries)
}
