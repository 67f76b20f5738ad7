package debounce_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aqarview/geosearch/internal/pkg/debounce"
)

type recorder struct {
	mu     sync.Mutex
	values []int
}

func (r *recorder) add(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.values...)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := debounce.New(50 * time.Millisecond)
	defer d.Stop()
	rec := &recorder{}

	// five rapid events inside the window fire exactly once, with the last value
	for i := 1; i <= 5; i++ {
		v := i
		d.Trigger("bounds", func() { rec.add(v) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, []int{5}, rec.snapshot())
}

func TestDebouncerIndependentKeys(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	defer d.Stop()
	rec := &recorder{}

	d.Trigger("bounds", func() { rec.add(1) })
	d.Trigger("text", func() { rec.add(2) })

	time.Sleep(100 * time.Millisecond)
	assert.ElementsMatch(t, []int{1, 2}, rec.snapshot())
}

func TestDebouncerFlushFiresImmediately(t *testing.T) {
	d := debounce.New(time.Hour)
	defer d.Stop()
	rec := &recorder{}

	d.Trigger("bounds", func() { rec.add(1) })
	d.Flush("bounds")

	assert.Equal(t, []int{1}, rec.snapshot())

	// flushed schedule must not fire again
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []int{1}, rec.snapshot())
}

func TestDebouncerCancel(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	defer d.Stop()
	rec := &recorder{}

	d.Trigger("bounds", func() { rec.add(1) })
	d.Cancel("bounds")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestDebouncerStopRejectsTriggers(t *testing.T) {
	d := debounce.New(10 * time.Millisecond)
	rec := &recorder{}

	d.Trigger("bounds", func() { rec.add(1) })
	d.Stop()
	d.Trigger("bounds", func() { rec.add(2) })

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
