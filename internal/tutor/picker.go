package tutor

import (
	"math/rand"
	"sync"
	"time"
)

// Picker chooses an index in [0, n). Implementations must be safe for
// concurrent use.
type Picker interface {
	Pick(n int) int
}

// RandPicker picks uniformly using a seeded math/rand source.
type RandPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandPicker returns a picker seeded with seed. Equal seeds give equal
// sequences.
func NewRandPicker(seed int64) *RandPicker {
	return &RandPicker{rnd: rand.New(rand.NewSource(seed))}
}

// NewTimePicker returns a picker seeded from the clock.
func NewTimePicker() *RandPicker {
	return NewRandPicker(time.Now().UnixNano())
}

// Pick returns a uniform index in [0, n); 0 when n <= 1.
func (p *RandPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

// Pick calls f.
func (f PickerFunc) Pick(n int) int {
	return f(n)
}
