package chart

import (
	"fmt"
	"sync"
)

// Point is one sample. Points in a series must be sorted ascending by X;
// the window-slide and bisection logic depend on it and do not validate.
type Point struct {
	X float64
	Y float64
}

// Series is one named, x-sorted point sequence drawn as one path.
type Series struct {
	Label  string
	Points []Point
}

// SeriesEventKind classifies a data change.
type SeriesEventKind int

const (
	// SeriesAppended: a point was appended to a series.
	SeriesAppended SeriesEventKind = iota
	// SeriesMutated: an existing point was replaced in place.
	SeriesMutated
	// SeriesReplaced: a series' full point sequence was swapped.
	SeriesReplaced
)

// SeriesEvent describes one change to the store.
type SeriesEvent struct {
	Kind   SeriesEventKind
	Series string
	Index  int
	Point  Point
}

// Subscription is a handle to an active store subscription.
type Subscription struct {
	id    int
	store *SeriesStore
}

// Unsubscribe removes the subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.store == nil {
		return
	}
	s.store.unsubscribe(s.id)
	s.store = nil
}

type storeSub struct {
	id int
	fn func(SeriesEvent)
}

// SeriesStore is an ordered, observable collection of series.
//
// Insertion order is draw order and color/legend index order. Subscribers
// are notified synchronously, in registration order, after each mutation.
type SeriesStore struct {
	mu     sync.RWMutex
	series []*Series
	subs   []storeSub
	nextID int
}

func NewSeriesStore() *SeriesStore {
	return &SeriesStore{}
}

// AddSeries appends a new named series with the given initial points.
func (st *SeriesStore) AddSeries(label string, points ...Point) {
	st.mu.Lock()
	pts := make([]Point, len(points))
	copy(pts, points)
	st.series = append(st.series, &Series{Label: label, Points: pts})
	st.mu.Unlock()
}

// Len returns the number of series.
func (st *SeriesStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.series)
}

// Labels returns the series labels in insertion order.
func (st *SeriesStore) Labels() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]string, len(st.series))
	for i, s := range st.series {
		out[i] = s.Label
	}
	return out
}

// Snapshot returns a deep copy of all series in insertion order.
func (st *SeriesStore) Snapshot() []Series {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]Series, len(st.series))
	for i, s := range st.series {
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		out[i] = Series{Label: s.Label, Points: pts}
	}
	return out
}

// First returns a copy of the first (reference) series.
func (st *SeriesStore) First() (Series, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if len(st.series) == 0 {
		return Series{}, false
	}
	s := st.series[0]
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return Series{Label: s.Label, Points: pts}, true
}

// Append adds a point to the end of a series and notifies subscribers.
func (st *SeriesStore) Append(label string, p Point) error {
	st.mu.Lock()
	s := st.findLocked(label)
	if s == nil {
		st.mu.Unlock()
		return fmt.Errorf("series store: unknown series %q", label)
	}
	s.Points = append(s.Points, p)
	idx := len(s.Points) - 1
	st.mu.Unlock()

	st.notify(SeriesEvent{Kind: SeriesAppended, Series: label, Index: idx, Point: p})
	return nil
}

// SetPoint replaces a point in place and notifies subscribers.
func (st *SeriesStore) SetPoint(label string, index int, p Point) error {
	st.mu.Lock()
	s := st.findLocked(label)
	if s == nil {
		st.mu.Unlock()
		return fmt.Errorf("series store: unknown series %q", label)
	}
	if index < 0 || index >= len(s.Points) {
		st.mu.Unlock()
		return fmt.Errorf("series store: index %d out of range for series %q", index, label)
	}
	s.Points[index] = p
	st.mu.Unlock()

	st.notify(SeriesEvent{Kind: SeriesMutated, Series: label, Index: index, Point: p})
	return nil
}

// Replace swaps a series' full point sequence and notifies subscribers.
func (st *SeriesStore) Replace(label string, points []Point) error {
	st.mu.Lock()
	s := st.findLocked(label)
	if s == nil {
		st.mu.Unlock()
		return fmt.Errorf("series store: unknown series %q", label)
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	s.Points = pts
	st.mu.Unlock()

	st.notify(SeriesEvent{Kind: SeriesReplaced, Series: label})
	return nil
}

// Subscribe registers a callback for data-change events. Callbacks run
// synchronously in registration order.
func (st *SeriesStore) Subscribe(fn func(SeriesEvent)) *Subscription {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextID++
	id := st.nextID
	st.subs = append(st.subs, storeSub{id: id, fn: fn})
	return &Subscription{id: id, store: st}
}

func (st *SeriesStore) unsubscribe(id int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i, sub := range st.subs {
		if sub.id == id {
			st.subs = append(st.subs[:i], st.subs[i+1:]...)
			return
		}
	}
}

func (st *SeriesStore) notify(ev SeriesEvent) {
	st.mu.RLock()
	subs := make([]storeSub, len(st.subs))
	copy(subs, st.subs)
	st.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

// findLocked returns the series with the given label. Caller holds the lock.
func (st *SeriesStore) findLocked(label string) *Series {
	for _, s := range st.series {
		if s.Label == label {
			return s
		}
	}
	return nil
}

// extent returns the min/max over all series for one dimension.
// ok is false when the store holds no points at all.
func extent(series []Series, getY bool) (lo, hi float64, ok bool) {
	for _, s := range series {
		for _, p := range s.Points {
			v := p.X
			if getY {
				v = p.Y
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi, ok
}
