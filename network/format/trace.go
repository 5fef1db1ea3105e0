package format

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Trace is a formatted view of a complex sequence: two aligned field
// sequences whose meaning depends on Format.
type Trace struct {
	Format Format
	Unit   AngleUnit
	A      []float64 // Mag or Real
	B      []float64 // Phase or Image
}

// Len returns the number of samples.
func (t Trace) Len() int { return len(t.A) }

// Keys returns the field suffixes of A and B.
func (t Trace) Keys() [2]string { return t.Format.Fields() }

// Map returns the trace keyed by its field suffixes, for example
// {"Mag": ..., "Phase": ...}.
func (t Trace) Map() map[string][]float64 {
	keys := t.Keys()
	return map[string][]float64{
		keys[0]: t.A,
		keys[1]: t.B,
	}
}

// Complex rebuilds the complex samples.
func (t Trace) Complex() []complex128 {
	out := make([]complex128, len(t.A))
	ComposeSlice(out, t.Format, t.A, t.B, t.Unit)
	return out
}

// ComposeSlice fills dst with Compose(f, a[i], b[i], unit). All slices must
// have the same length.
func ComposeSlice(dst []complex128, f Format, a, b []float64, unit AngleUnit) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic(fmt.Sprintf("format: length mismatch: dst=%d a=%d b=%d", len(dst), len(a), len(b)))
	}
	for i := range dst {
		dst[i] = Compose(f, a[i], b[i], unit)
	}
}

// DecomposeSlice formats z under f and unit.
func DecomposeSlice(f Format, z []complex128, unit AngleUnit) Trace {
	t := Trace{
		Format: f,
		Unit:   unit,
		A:      make([]float64, len(z)),
		B:      make([]float64, len(z)),
	}
	if len(z) == 0 {
		return t
	}

	if f == RI {
		for i, c := range z {
			t.A[i] = real(c)
			t.B[i] = imag(c)
		}
		return t
	}

	re, im, buf := getScratch(len(z))
	for i, c := range z {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(t.A, re, im)
	for i := range t.B {
		t.B[i] = math.Atan2(im[i], re[i])
	}
	putScratch(buf)

	if f == DB {
		for i, m := range t.A {
			t.A[i] = LinearToDB(m)
		}
	}
	if unit == Degrees {
		for i, p := range t.B {
			t.B[i] = RadToDeg(p)
		}
	}

	return t
}
