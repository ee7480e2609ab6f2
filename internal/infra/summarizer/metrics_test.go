package summarizer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusSummaryMetrics(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	require.NotNil(t, metrics)
	assert.NotNil(t, metrics.sourceSentences)
	assert.NotNil(t, metrics.selectedSentences)
	assert.NotNil(t, metrics.shortCircuitCounter)
	assert.NotNil(t, metrics.iterationsHistogram)
	assert.NotNil(t, metrics.durationHistogram)
}

func TestNewPrometheusSummaryMetrics_Singleton(t *testing.T) {
	assert.Same(t, NewPrometheusSummaryMetrics(), NewPrometheusSummaryMetrics())
}

func TestPrometheusSummaryMetrics_AllMethods(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	assert.NotPanics(t, func() {
		metrics.RecordSentences(12, 4)
		metrics.RecordSentences(0, 0)
		metrics.RecordShortCircuit()
		metrics.RecordIterations(37)
		metrics.RecordDuration(3 * time.Millisecond)
		metrics.RecordDuration(0)
	})
}

func TestPrometheusSummaryMetrics_ConcurrentAccess(t *testing.T) {
	metrics := NewPrometheusSummaryMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics.RecordSentences(20, 5)
			metrics.RecordIterations(15)
			metrics.RecordShortCircuit()
			metrics.RecordDuration(time.Millisecond)
		}()
	}
	wg.Wait()
}

// MockMetricsRecorder is a mock implementation for testing
type MockMetricsRecorder struct {
	mu            sync.Mutex
	Sources       []int
	Selected      []int
	ShortCircuits int
	Iterations    []int
	Durations     []time.Duration
}

func (m *MockMetricsRecorder) RecordSentences(source, selected int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sources = append(m.Sources, source)
	m.Selected = append(m.Selected, selected)
}

func (m *MockMetricsRecorder) RecordShortCircuit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShortCircuits++
}

func (m *MockMetricsRecorder) RecordIterations(iterations int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Iterations = append(m.Iterations, iterations)
}

func (m *MockMetricsRecorder) RecordDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Durations = append(m.Durations, duration)
}

func TestMockMetricsRecorder_ImplementsInterface(t *testing.T) {
	var _ SummaryMetricsRecorder = &MockMetricsRecorder{}
	var _ SummaryMetricsRecorder = NewPrometheusSummaryMetrics()
	var _ SummaryMetricsRecorder = noopRecorder{}
}
