package timelock

import (
	"github.com/iov-one/nativescript/errors"
)

// Error codes
// x/timelock reserves 1000 ~ 1009.

var (
	ErrMissingSlot = errors.Register(1000, "missing slot")
)
