package timelock

import (
	"github.com/iov-one/nativescript"
)

// ValidityContext is an authorization context that also knows the validity
// interval of the transaction a script is evaluated for. A nil bound means
// that the interval is open on that side.
type ValidityContext interface {
	nativescript.AuthContext
	ValidityInterval() (from, until *uint64)
}

// Interval attaches a validity interval to an authorization context.
type Interval struct {
	nativescript.AuthContext

	// From is the first slot the transaction is valid in.
	From *uint64
	// Until is the first slot the transaction is no longer valid in.
	Until *uint64
}

var _ ValidityContext = (*Interval)(nil)

// WithInterval returns a context that authorizes what ctx authorizes and
// reports given validity interval.
func WithInterval(ctx nativescript.AuthContext, from, until *uint64) *Interval {
	return &Interval{AuthContext: ctx, From: from, Until: until}
}

// ValidityInterval returns the bounds of the interval. A nil bound is absent.
func (i *Interval) ValidityInterval() (from, until *uint64) {
	return i.From, i.Until
}

// Slot returns a pointer to given slot number. Use it to build an Interval.
func Slot(n uint64) *uint64 {
	return &n
}
