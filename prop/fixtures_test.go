package prop_test

import (
	"strconv"
	"unsafe"

	"github.com/propkit-dev/propkit/prop"
)

// Fixture owners covering the common property shapes. Each follows the
// declaration pattern from the package doc: backing state + accessor
// methods on the owner, a zero-size descriptor per property, and the proxy
// field itself.

// Counter exposes the full integer surface.
type Counter struct {
	n int

	N prop.Bits[Counter, int, counterNAccess]
}

func (c *Counter) getN() int         { return c.n }
func (c *Counter) setN(v int) error  { c.n = v; return nil }

type counterNAccess struct{}

func (counterNAccess) Offset() uintptr             { return unsafe.Offsetof(Counter{}.N) }
func (counterNAccess) Get(c *Counter) int          { return c.getN() }
func (counterNAccess) Set(c *Counter, v int) error { return c.setN(v) }

// Rectangle has two clamped read-write properties and two computed
// read-only ones.
type Rectangle struct {
	width  float64
	height float64

	Width     prop.Num[Rectangle, float64, rectWidthAccess]
	Height    prop.Num[Rectangle, float64, rectHeightAccess]
	Area      prop.RO[Rectangle, float64, rectAreaAccess]
	Perimeter prop.RO[Rectangle, float64, rectPerimeterAccess]
}

func (r *Rectangle) getWidth() float64 { return r.width }

func (r *Rectangle) setWidth(v float64) error {
	if v < 0 {
		v = 0
	}
	r.width = v
	return nil
}

func (r *Rectangle) getHeight() float64 { return r.height }

func (r *Rectangle) setHeight(v float64) error {
	if v < 0 {
		v = 0
	}
	r.height = v
	return nil
}

func (r *Rectangle) getArea() float64      { return r.width * r.height }
func (r *Rectangle) getPerimeter() float64 { return 2 * (r.width + r.height) }

type rectWidthAccess struct{}

func (rectWidthAccess) Offset() uintptr                     { return unsafe.Offsetof(Rectangle{}.Width) }
func (rectWidthAccess) Get(r *Rectangle) float64            { return r.getWidth() }
func (rectWidthAccess) Set(r *Rectangle, v float64) error   { return r.setWidth(v) }

type rectHeightAccess struct{}

func (rectHeightAccess) Offset() uintptr                    { return unsafe.Offsetof(Rectangle{}.Height) }
func (rectHeightAccess) Get(r *Rectangle) float64           { return r.getHeight() }
func (rectHeightAccess) Set(r *Rectangle, v float64) error  { return r.setHeight(v) }

type rectAreaAccess struct{}

func (rectAreaAccess) Offset() uintptr          { return unsafe.Offsetof(Rectangle{}.Area) }
func (rectAreaAccess) Get(r *Rectangle) float64 { return r.getArea() }

type rectPerimeterAccess struct{}

func (rectPerimeterAccess) Offset() uintptr          { return unsafe.Offsetof(Rectangle{}.Perimeter) }
func (rectPerimeterAccess) Get(r *Rectangle) float64 { return r.getPerimeter() }

// Gauge clamps writes to [0, 100]; used to prove compound operations pass
// through the setter's clamping.
type Gauge struct {
	level int

	Level prop.Num[Gauge, int, gaugeLevelAccess]
}

func (g *Gauge) getLevel() int { return g.level }

func (g *Gauge) setLevel(v int) error {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	g.level = v
	return nil
}

type gaugeLevelAccess struct{}

func (gaugeLevelAccess) Offset() uintptr           { return unsafe.Offsetof(Gauge{}.Level) }
func (gaugeLevelAccess) Get(g *Gauge) int          { return g.getLevel() }
func (gaugeLevelAccess) Set(g *Gauge, v int) error { return g.setLevel(v) }

// negativeAmountError is returned by Account's setter for rejected writes.
type negativeAmountError struct{ amount int64 }

func (e negativeAmountError) Error() string {
	return "account: negative balance " + strconv.FormatInt(e.amount, 10)
}

// Account rejects negative balances outright; the stored value is left
// untouched on rejection.
type Account struct {
	balance int64

	Balance prop.Num[Account, int64, accountBalanceAccess]
}

func (a *Account) getBalance() int64 { return a.balance }

func (a *Account) setBalance(v int64) error {
	if v < 0 {
		return negativeAmountError{amount: v}
	}
	a.balance = v
	return nil
}

type accountBalanceAccess struct{}

func (accountBalanceAccess) Offset() uintptr               { return unsafe.Offsetof(Account{}.Balance) }
func (accountBalanceAccess) Get(a *Account) int64          { return a.getBalance() }
func (accountBalanceAccess) Set(a *Account, v int64) error { return a.setBalance(v) }

// Vault has a write-only secret. There is no read path at all; HasSecret
// only reports whether one was ever written.
type Vault struct {
	secret    string
	secretSet bool

	Secret prop.WO[Vault, string, vaultSecretAccess]
}

func (v *Vault) setSecret(s string) error {
	v.secret = s
	v.secretSet = true
	return nil
}

// HasSecret reports whether a secret has been written.
func (v *Vault) HasSecret() bool { return v.secretSet }

type vaultSecretAccess struct{}

func (vaultSecretAccess) Offset() uintptr               { return unsafe.Offsetof(Vault{}.Secret) }
func (vaultSecretAccess) Set(v *Vault, s string) error  { return v.setSecret(s) }

// Label has a string property.
type Label struct {
	text string

	Text prop.Text[Label, string, labelTextAccess]
}

func (l *Label) getText() string        { return l.text }
func (l *Label) setText(v string) error { l.text = v; return nil }

type labelTextAccess struct{}

func (labelTextAccess) Offset() uintptr              { return unsafe.Offsetof(Label{}.Text) }
func (labelTextAccess) Get(l *Label) string          { return l.getText() }
func (labelTextAccess) Set(l *Label, v string) error { return l.setText(v) }

// Basket has a slice property.
type Basket struct {
	items []string

	Items prop.Slice[Basket, []string, string, basketItemsAccess]
}

func (b *Basket) getItems() []string        { return b.items }
func (b *Basket) setItems(v []string) error { b.items = v; return nil }

type basketItemsAccess struct{}

func (basketItemsAccess) Offset() uintptr                  { return unsafe.Offsetof(Basket{}.Items) }
func (basketItemsAccess) Get(b *Basket) []string           { return b.getItems() }
func (basketItemsAccess) Set(b *Basket, v []string) error  { return b.setItems(v) }

// Holder has a pointer property.
type Holder struct {
	target *int

	Target prop.Ptr[Holder, int, holderTargetAccess]
}

func (h *Holder) getTarget() *int        { return h.target }
func (h *Holder) setTarget(v *int) error { h.target = v; return nil }

type holderTargetAccess struct{}

func (holderTargetAccess) Offset() uintptr             { return unsafe.Offsetof(Holder{}.Target) }
func (holderTargetAccess) Get(h *Holder) *int          { return h.getTarget() }
func (holderTargetAccess) Set(h *Holder, v *int) error { return h.setTarget(v) }
