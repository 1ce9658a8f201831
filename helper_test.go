package sip

// INR is a helper for tests to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// d is a shorthand to build a date in tests.
func d(str string) Date { return MustParse(str) }

// series builds a history from date/price pairs.
func series(points map[string]float64) *History {
	h := &History{}
	for day, price := range points {
		h.Append(d(day), price)
	}
	return h
}
