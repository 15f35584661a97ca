package quantile

import (
	"strings"
	"sync"
	"time"

	"github.com/bmizerany/perks/quantile"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/stringy"
)

type Result struct {
	Count       int                  `json:"count"`
	Percentiles []map[string]float64 `json:"percentiles"`
}

func (r *Result) String() string {
	var s []string
	for _, item := range r.Percentiles {
		s = append(s, stringy.NanoSecondToHuman(item["value"]))
	}
	return strings.Join(s, ", ")
}

// Quantile tracks targeted percentiles over a sliding time window using a
// pair of alternating streams. Samples land in the current stream, queries
// merge both, and the older stream is reset every half window.
type Quantile struct {
	sync.Mutex
	streams        [2]quantile.Stream
	currentIndex   uint8
	lastMoveWindow time.Time
	currentStream  *quantile.Stream

	Percentiles    []float64
	MoveWindowTime time.Duration
}

func New(windowTime time.Duration, percentiles []float64) *Quantile {
	q := Quantile{
		lastMoveWindow: time.Now(),
		MoveWindowTime: windowTime / 2,
		Percentiles:    percentiles,
	}
	for i := range q.streams {
		q.streams[i] = *quantile.NewTargeted(percentiles...)
	}
	q.currentStream = &q.streams[0]
	return &q
}

func (q *Quantile) Insert(startTime int64) {
	q.Lock()
	now := time.Now()
	for q.dataStale(now) {
		q.moveWindow()
	}
	q.currentStream.Insert(float64(now.UnixNano() - startTime))
	q.Unlock()
}

// Result merges both streams and reports the configured percentiles.
// It is safe to call on a nil *Quantile.
func (q *Quantile) Result() *Result {
	if q == nil {
		return &Result{}
	}

	q.Lock()
	now := time.Now()
	for q.dataStale(now) {
		q.moveWindow()
	}
	merged := quantile.NewTargeted(q.Percentiles...)
	merged.Merge(q.streams[0].Samples())
	merged.Merge(q.streams[1].Samples())
	q.Unlock()

	result := Result{
		Count:       merged.Count(),
		Percentiles: make([]map[string]float64, len(q.Percentiles)),
	}
	for i, p := range q.Percentiles {
		result.Percentiles[i] = map[string]float64{"quantile": p, "value": merged.Query(p)}
	}
	return &result
}

func (q *Quantile) dataStale(now time.Time) bool {
	return now.After(q.lastMoveWindow.Add(q.MoveWindowTime))
}

func (q *Quantile) moveWindow() {
	q.currentIndex ^= 0x1
	q.currentStream = &q.streams[q.currentIndex]
	q.lastMoveWindow = q.lastMoveWindow.Add(q.MoveWindowTime)
	q.currentStream.Reset()
}
