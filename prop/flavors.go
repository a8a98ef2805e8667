package prop

import "cmp"

// Flavors widen RW with operations gated by the value type's capabilities.
// Each flavor embeds the next-smaller surface; all embeds are zero-size, so
// the proxy's address (and therefore owner resolution) is unchanged.
//
// Every mutating operation here is read-modify-write through the accessor
// pair: the setter sees the computed result, so clamping or validation in
// the setter applies to compound operations exactly as it does to plain
// writes. Mutators return the re-read, post-setter value.

// Cmp is a read-write proxy for comparable value types.
type Cmp[O any, T comparable, A Accessor[O, T]] struct {
	RW[O, T, A]
}

// Eq reports whether the current value equals v.
func (p *Cmp[O, T, A]) Eq(v T) bool { return p.Get() == v }

// Ord is a read-write proxy for ordered value types.
type Ord[O any, T cmp.Ordered, A Accessor[O, T]] struct {
	Cmp[O, T, A]
}

// Less reports whether the current value is ordered before v.
func (p *Ord[O, T, A]) Less(v T) bool { return cmp.Less(p.Get(), v) }

// Compare three-way compares the current value against v.
func (p *Ord[O, T, A]) Compare(v T) int { return cmp.Compare(p.Get(), v) }

// Num is a read-write proxy for numeric value types.
type Num[O any, T Number, A Accessor[O, T]] struct {
	Ord[O, T, A]
}

func (p *Num[O, T, A]) apply(v T) (T, error) {
	err := p.Set(v)
	return p.Get(), err
}

// Add stores current+delta and returns the stored value.
func (p *Num[O, T, A]) Add(delta T) (T, error) { return p.apply(p.Get() + delta) }

// Sub stores current-delta and returns the stored value.
func (p *Num[O, T, A]) Sub(delta T) (T, error) { return p.apply(p.Get() - delta) }

// Mul stores current*factor and returns the stored value.
func (p *Num[O, T, A]) Mul(factor T) (T, error) { return p.apply(p.Get() * factor) }

// Div stores current/divisor and returns the stored value.
func (p *Num[O, T, A]) Div(divisor T) (T, error) { return p.apply(p.Get() / divisor) }

// Inc increments the value by one and returns the stored value.
func (p *Num[O, T, A]) Inc() (T, error) { return p.Add(1) }

// Dec decrements the value by one and returns the stored value.
func (p *Num[O, T, A]) Dec() (T, error) { return p.Sub(1) }

// Bits is a read-write proxy for integer value types, adding modulo,
// bitwise and shift operations on top of Num.
type Bits[O any, T Integer, A Accessor[O, T]] struct {
	Num[O, T, A]
}

// Mod stores current%divisor and returns the stored value.
func (p *Bits[O, T, A]) Mod(divisor T) (T, error) { return p.apply(p.Get() % divisor) }

// And stores current&mask and returns the stored value.
func (p *Bits[O, T, A]) And(mask T) (T, error) { return p.apply(p.Get() & mask) }

// Or stores current|mask and returns the stored value.
func (p *Bits[O, T, A]) Or(mask T) (T, error) { return p.apply(p.Get() | mask) }

// Xor stores current^mask and returns the stored value.
func (p *Bits[O, T, A]) Xor(mask T) (T, error) { return p.apply(p.Get() ^ mask) }

// Shl stores current<<n and returns the stored value.
func (p *Bits[O, T, A]) Shl(n uint) (T, error) { return p.apply(p.Get() << n) }

// Shr stores current>>n and returns the stored value.
func (p *Bits[O, T, A]) Shr(n uint) (T, error) { return p.apply(p.Get() >> n) }

// Text is a read-write proxy for string value types.
type Text[O any, T ~string, A Accessor[O, T]] struct {
	Ord[O, T, A]
}

// Append stores current+s and returns the stored value.
func (p *Text[O, T, A]) Append(s T) (T, error) {
	err := p.Set(p.Get() + s)
	return p.Get(), err
}
