package sip

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of NAV prices, each associated with a
// specific date. It ensures that dates are unique and the series is always
// sorted.
type History struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the history.
func (h *History) Len() int { return len(h.days) }

// Latest returns the latest date and price in the history.
// If the history is empty, it returns zero values.
func (h *History) Latest() (day Date, price float64) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return h.days[last], h.values[last]
}

// Oldest returns the first date and price in the history.
func (h *History) Oldest() (day Date, price float64) {
	if len(h.days) == 0 {
		return Date{}, 0
	}
	return h.days[0], h.values[0]
}

// chronological is a private implementation to make this history chronologically sorted.
type chronological struct{ *History }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Append adds a point to the history.
//
// Existing value at that date is overwritten.
func (h *History) Append(on Date, price float64) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		// Found a point at that exact same day.
		// We choose to replace, because it will give higher priority to the last data
		h.values[i] = price
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, price)
	sort.Sort(chronological{h})
	return h
}

// Values returns an iterator over all date/price pairs in the history, in chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the price at 'day' and true, or zero and false.
func (h *History) Get(day Date) (float64, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return 0, false
}

// search returns the insertion index for 'day' and whether it is present.
func (h *History) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, func(d, t Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	})
}

// ValueAsOf returns the point on a given day, or the most recent point before it.
// It returns the date, the price and true if found, otherwise zero values and false.
func (h *History) ValueAsOf(day Date) (Date, float64, bool) {
	i, found := h.search(day)
	if found {
		return h.days[i], h.values[i], true
	}
	// Not found. `i` is the index where `day` would be inserted, so the last
	// entry before the target date is at `i-1`.
	if i == 0 {
		return Date{}, 0, false // No point on or before the given day.
	}
	return h.days[i-1], h.values[i-1], true
}

// ValueOnOrAfter returns the first point on a given day, or the next available
// point after it. It returns the date, the price and true if found, otherwise
// zero values and false.
func (h *History) ValueOnOrAfter(day Date) (Date, float64, bool) {
	i, found := h.search(day)
	if found {
		return h.days[i], h.values[i], true
	}
	if i >= len(h.days) {
		return Date{}, 0, false // No point on or after the given day.
	}
	return h.days[i], h.values[i], true
}

// Between returns a new history restricted to the points within [from, to],
// boundaries included.
func (h *History) Between(from, to Date) *History {
	w := &History{}
	for i, on := range h.days {
		if on.Before(from) || on.After(to) {
			continue
		}
		w.days = append(w.days, on)
		w.values = append(w.values, h.values[i])
	}
	return w
}
