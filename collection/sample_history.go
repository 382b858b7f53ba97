package collection

import (
	"sync"
	"time"

	"code.cloudfoundry.org/app-perfmon/models"
)

// SampleHistory is a bounded ring of samples kept in timestamp order. Once
// full, each new sample overwrites the oldest one.
type SampleHistory struct {
	lock     sync.RWMutex
	data     []*models.Sample
	capacity int
	cursor   int
	num      int
}

func NewSampleHistory(capacity int) *SampleHistory {
	if capacity <= 0 {
		panic("invalid SampleHistory capacity")
	}
	return &SampleHistory{
		data:     make([]*models.Sample, capacity),
		capacity: capacity,
	}
}

func timestampOf(s *models.Sample) int64 {
	return s.Metadata.Timestamp.UnixNano()
}

// binarySearch returns the logical position of the first sample at or after t.
func (h *SampleHistory) binarySearch(t int64) int {
	if h.num == 0 {
		return 0
	}
	var l, r int
	if h.data[h.cursor] == nil {
		l = 0
		r = h.cursor - 1
	} else {
		l = h.cursor
		r = h.cursor - 1 + h.capacity
	}

	for l <= r {
		m := l + (r-l)/2
		if t <= timestampOf(h.data[m%h.capacity]) {
			r = m - 1
		} else {
			l = m + 1
		}
	}
	return l
}

func (h *SampleHistory) Put(s *models.Sample) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.num == 0 || timestampOf(s) >= timestampOf(h.data[(h.cursor-1+h.capacity)%h.capacity]) {
		h.data[h.cursor] = s
		h.cursor = (h.cursor + 1) % h.capacity
		h.num++
		return
	}

	pos := h.binarySearch(timestampOf(s))
	if pos == h.cursor && h.data[h.cursor] != nil {
		// older than everything retained
		return
	}

	end := h.cursor
	if h.data[end] != nil {
		end += h.capacity
	}
	for i := end; i > pos; i-- {
		h.data[i%h.capacity] = h.data[(i-1)%h.capacity]
	}
	h.data[pos%h.capacity] = s
	h.cursor = (h.cursor + 1) % h.capacity
	h.num++
}

func (h *SampleHistory) Len() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return min(h.num, h.capacity)
}

// Query returns up to limit samples with timestamps in [start, end), newest
// first. A limit of zero or less means no limit.
func (h *SampleHistory) Query(start, end time.Time, limit int) []*models.Sample {
	h.lock.RLock()
	defer h.lock.RUnlock()

	result := []*models.Sample{}
	if h.num == 0 {
		return result
	}

	from := h.binarySearch(start.UnixNano())
	to := h.binarySearch(end.UnixNano())
	for i := to - 1; i >= from; i-- {
		if limit > 0 && len(result) == limit {
			break
		}
		result = append(result, h.data[i%h.capacity])
	}
	return result
}

// Prune drops every sample older than before and reports how many went.
func (h *SampleHistory) Prune(before time.Time) int {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.num == 0 {
		return 0
	}

	start := 0
	if h.data[h.cursor] != nil {
		start = h.cursor
	}
	size := min(h.num, h.capacity)
	from := h.binarySearch(before.UnixNano())
	dropped := from - start
	if dropped <= 0 {
		return 0
	}

	kept := make([]*models.Sample, h.capacity)
	n := 0
	for i := from; i < start+size; i++ {
		kept[n] = h.data[i%h.capacity]
		n++
	}
	h.data = kept
	h.cursor = n % h.capacity
	h.num = n
	return dropped
}
