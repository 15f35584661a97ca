package quantile

import (
	"testing"
	"time"

	"github.com/Mingdi-Luo/EE533-Lab1/internal/test"
)

func TestQuantile(t *testing.T) {
	q := New(10*time.Second, []float64{0.5, 0.9, 0.99})

	for i := 0; i < 100; i++ {
		q.Insert(time.Now().Add(-time.Duration(i) * time.Millisecond).UnixNano())
	}

	result := q.Result()
	test.Equal(t, 100, result.Count)
	test.Equal(t, 3, len(result.Percentiles))
	for _, item := range result.Percentiles {
		test.Equal(t, true, item["value"] > 0)
	}
}

func TestQuantileNil(t *testing.T) {
	var q *Quantile
	result := q.Result()
	test.Equal(t, 0, result.Count)
	test.Equal(t, 0, len(result.Percentiles))
}

func TestQuantileWindowMoves(t *testing.T) {
	q := New(100*time.Millisecond, []float64{0.5})

	q.Insert(time.Now().UnixNano())
	test.Equal(t, 1, q.Result().Count)

	// both streams cycle out after a full window passes
	q.lastMoveWindow = time.Now().Add(-time.Second)
	test.Equal(t, 0, q.Result().Count)
}
