package raster

// SparseCoverageBuffer is a run-length-compressed per-pixel coverage
// accumulator: a sequence of (coverage, run_length) runs whose lengths
// always sum to capacity. addSpan splits runs at its span's boundaries
// and increments coverage by 1 across every run the span fully covers;
// reset collapses back to a single zero-coverage run spanning capacity.
//
// Used by the multisample rasterizer to accumulate per-sub-scanline
// coverage for one destination row without allocating a dense int array
// per row.
type SparseCoverageBuffer struct {
	capacity int
	runs     []coverageRun
}

type coverageRun struct {
	coverage int
	length   int
}

// NewSparseCoverageBuffer allocates a buffer covering capacity pixels,
// initially at zero coverage.
func NewSparseCoverageBuffer(capacity int) *SparseCoverageBuffer {
	b := &SparseCoverageBuffer{capacity: capacity}
	b.Reset()
	return b
}

// Reset collapses the buffer back to a single zero-coverage run spanning
// its full capacity.
func (b *SparseCoverageBuffer) Reset() {
	b.runs = b.runs[:0]
	if b.capacity > 0 {
		b.runs = append(b.runs, coverageRun{length: b.capacity})
	}
}

// addSpan increments coverage by 1 across [x, x+length), splitting runs
// at the span's boundaries as needed. The span is clamped to
// [0, capacity).
func (b *SparseCoverageBuffer) addSpan(x, length int) {
	if length <= 0 {
		return
	}
	start, end := x, x+length
	if start < 0 {
		start = 0
	}
	if end > b.capacity {
		end = b.capacity
	}
	if start >= end {
		return
	}

	b.splitAt(start)
	b.splitAt(end)

	pos := 0
	for i := range b.runs {
		runEnd := pos + b.runs[i].length
		if pos >= start && runEnd <= end {
			b.runs[i].coverage++
		}
		pos = runEnd
		if pos >= end {
			break
		}
	}
}

// splitAt ensures a run boundary exists exactly at offset x, leaving the
// coverage values unchanged. A no-op if x already falls on a boundary or
// lies at an edge of the buffer.
func (b *SparseCoverageBuffer) splitAt(x int) {
	if x <= 0 || x >= b.capacity {
		return
	}
	pos := 0
	for i := range b.runs {
		runEnd := pos + b.runs[i].length
		if x == pos || x == runEnd {
			return
		}
		if x > pos && x < runEnd {
			cov := b.runs[i].coverage
			left := x - pos
			right := runEnd - x
			b.runs = append(b.runs, coverageRun{})
			copy(b.runs[i+2:], b.runs[i+1:])
			b.runs[i] = coverageRun{coverage: cov, length: left}
			b.runs[i+1] = coverageRun{coverage: cov, length: right}
			return
		}
		pos = runEnd
	}
}

// get returns the coverage at pixel i along with the number of
// consecutive pixels from i (inclusive) that share that coverage value.
func (b *SparseCoverageBuffer) get(i int) (coverage, runLength int) {
	pos := 0
	for _, r := range b.runs {
		if i >= pos && i < pos+r.length {
			return r.coverage, pos + r.length - i
		}
		pos += r.length
	}
	return 0, 0
}

// forEachRun calls fn with each run's starting pixel, coverage, and
// length, left to right. Iteration is O(r) in the number of runs.
func (b *SparseCoverageBuffer) forEachRun(fn func(start, coverage, length int)) {
	pos := 0
	for _, r := range b.runs {
		fn(pos, r.coverage, r.length)
		pos += r.length
	}
}
