package assert

import (
	"testing"

	"github.com/iov-one/nativescript/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrUnknownTag,
			ErrGot:   errors.ErrUnknownTag,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrUnknownTag,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrMissingType,
			ErrGot:   errors.Wrap(errors.ErrMissingType, "test"),
			WantFail: false,
		},
		"different": {
			ErrWant:  errors.ErrMissingType,
			ErrGot:   errors.ErrMissingScripts,
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unlexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	cases := map[string]struct {
		Err      error
		Name     string
		WantErr  *errors.Error
		WantFail bool
	}{
		"ensure a single error exists and is found": {
			Err:      errors.Field("keyHash", errors.ErrMissingKeyHash, "sig"),
			Name:     "keyHash",
			WantErr:  errors.ErrMissingKeyHash,
			WantFail: false,
		},
		"use nil to ensure no error was found": {
			Err:      errors.Field("keyHash", errors.ErrMissingKeyHash, "sig"),
			Name:     "unknown-name",
			WantErr:  nil,
			WantFail: false,
		},
		"use nil to fail when an error was found but was not expected": {
			Err:      errors.Field("keyHash", errors.ErrMissingKeyHash, "sig"),
			Name:     "keyHash",
			WantErr:  nil,
			WantFail: true,
		},
		"field found but of a different type": {
			Err:      errors.Field("required", errors.ErrInvalidRequired, "atLeast"),
			Name:     "required",
			WantErr:  errors.ErrMissingScripts,
			WantFail: true,
		},
		"field not found": {
			Err:      errors.ErrUnknownTag,
			Name:     "required",
			WantErr:  errors.ErrInvalidRequired,
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			FieldError(mock, tc.Err, tc.Name, tc.WantErr)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unlexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestPanics(t *testing.T) {
	mock := &tmock{TB: t}
	Panics(mock, func() {})
	if mock.failcalls != 1 {
		t.Fatal("a function that does not panic must fail the test")
	}

	mock = &tmock{TB: t}
	Panics(mock, func() { panic("boom") })
	if mock.failcalls != 0 {
		t.Fatal("a panicking function must pass")
	}
}

// tmock mocks testing.TB and only counts failure calls. It ignores all other
// input.
type tmock struct {
	testing.TB
	failcalls int
}

func (t *tmock) Error(args ...interface{}) {
	t.TB.Log(args...)
	t.failcalls++
}

func (t *tmock) Errorf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}

func (t *tmock) Fatal(args ...interface{}) {
	t.TB.Log(args...)
	t.failcalls++
}

func (t *tmock) Fatalf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}
