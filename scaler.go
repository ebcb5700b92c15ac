package heatmap

import (
	"math"
	"sort"
)

type ScalerConstraint interface {
	~float64 | ~string
}

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

// Extent returns the smallest domain holding every value given by get.
func Extent[T any](list []T, get func(T) float64) Domain {
	var d Domain
	for i := range list {
		v := get(list[i])
		if i == 0 || v < d.fst {
			d.fst = v
		}
		if i == 0 || v > d.lst {
			d.lst = v
		}
	}
	return d
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

func (d Domain) First() float64 {
	return d.fst
}

func (d Domain) Last() float64 {
	return d.lst
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

// Scale maps v linearly from the domain onto the range. A domain reduced to a
// single value maps everything to the start of the range.
func (n numberScaler) Scale(v float64) float64 {
	if n.Extend() == 0 {
		return n.F
	}
	return n.F + n.Diff(v)/n.Extend()*n.Len()
}

func (n numberScaler) Space() float64 {
	if n.Extend() == 0 {
		return n.Len()
	}
	return n.Len() / n.Extend()
}

// Values returns round tick values inside the domain, roughly c of them,
// spaced by 1, 2 or 5 times a power of ten.
func (n numberScaler) Values(c int) []float64 {
	if c <= 0 {
		c = DefaultTicks
	}
	return Ticks(n.fst, n.lst, c)
}

const DefaultTicks = 10

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if i2 < i1 {
		return nil
	}
	list := make([]float64, 0, int(i2-i1)+1)
	for i := i1; i <= i2; i++ {
		if inc < 0 {
			list = append(list, i/-inc)
		} else {
			list = append(list, i*inc)
		}
	}
	if reverse {
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
	}
	return list
}

func tickSpec(start, stop, count float64) (float64, float64, float64) {
	var (
		step   = (stop - start) / count
		power  = math.Floor(math.Log10(step))
		ratio  = step / math.Pow(10, power)
		factor = 1.0
	)
	switch {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	}
	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 0.5 && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

type bandScaler struct {
	Range
	Strings []string
}

// BandScaler splits the range into equal bands, one per distinct value, in
// the order values first appear.
func BandScaler(values []string, rg Range) Scaler[string] {
	var (
		list  []string
		seen  = make(map[string]struct{})
		empty = struct{}{}
	)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		list = append(list, v)
		seen[v] = empty
	}
	return bandScaler{
		Range:   rg,
		Strings: list,
	}
}

// Scale returns the start of the band of v, NaN when v is not in the domain.
func (s bandScaler) Scale(v string) float64 {
	for i := range s.Strings {
		if s.Strings[i] == v {
			return s.F + float64(i)*s.Space()
		}
	}
	return math.NaN()
}

func (s bandScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s bandScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

// QuantizeScaler maps a continuous domain onto a fixed list of colors through
// equal width buckets. A value equal to a bucket boundary goes to the upper
// bucket, values outside the domain are clamped.
type QuantizeScaler struct {
	Domain
	Colors []string

	thresholds []float64
}

func Quantize(dom Domain, colors []string) QuantizeScaler {
	var (
		n    = len(colors) - 1
		list []float64
	)
	for i := 0; i < n; i++ {
		t := (float64(i+1)*dom.lst - float64(i-n)*dom.fst) / float64(n+1)
		list = append(list, t)
	}
	return QuantizeScaler{
		Domain:     dom,
		Colors:     colors,
		thresholds: list,
	}
}

func (q QuantizeScaler) Index(v float64) int {
	return sort.Search(len(q.thresholds), func(i int) bool {
		return q.thresholds[i] > v
	})
}

func (q QuantizeScaler) Scale(v float64) string {
	if len(q.Colors) == 0 {
		return ""
	}
	return q.Colors[q.Index(v)]
}

func (q QuantizeScaler) Thresholds() []float64 {
	list := make([]float64, len(q.thresholds))
	copy(list, q.thresholds)
	return list
}

// Extent gives the sub domain covered by the bucket of the given color.
func (q QuantizeScaler) Extent(color string) (float64, float64, bool) {
	for i := range q.Colors {
		if q.Colors[i] != color {
			continue
		}
		lo, hi := q.fst, q.lst
		if i > 0 {
			lo = q.thresholds[i-1]
		}
		if i < len(q.thresholds) {
			hi = q.thresholds[i]
		}
		return lo, hi, true
	}
	return 0, 0, false
}
