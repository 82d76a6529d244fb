package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		missingKeyHashErr = Field("keyHash", ErrMissingKeyHash, "sig")
		invalidRequired   = Field("required", ErrInvalidRequired, "atLeast")
		nestedWrapErr     = Field("keyHash", missingKeyHashErr, "outer")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   missingKeyHashErr,
			Field: "keyHash",
			Want:  []error{missingKeyHashErr},
		},
		"nil error returns nothing": {
			Err:   nil,
			Field: "foo",
			Want:  nil,
		},
		"error not found by the field name": {
			Err:   ErrUnknownTag,
			Field: "foo",
			Want:  nil,
		},
		"error not found by the wrong field name": {
			Err:   invalidRequired,
			Field: "keyHash",
			Want:  nil,
		},
		"field is wrapped": {
			Err:   Wrap(Wrap(invalidRequired, "inner"), "outer"),
			Field: "required",
			Want:  []error{invalidRequired},
		},
		"multiple field wrap with most inner as the result": {
			Err:   Field("scripts.0", Field("scripts.1", missingKeyHashErr, "b desc"), "a desc"),
			Field: "keyHash",
			Want:  []error{missingKeyHashErr},
		},
		"multiple field wrap with the same field return the most outside only": {
			Err:   nestedWrapErr,
			Field: "keyHash",
			Want:  []error{nestedWrapErr},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				t.Logf("want: %#v", tc.Want)
				t.Logf(" got: %#v", got)
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestFieldMessage(t *testing.T) {
	err := Field("required", ErrInvalidRequired, "got %d", -1)
	if got, want := err.Error(), `field "required": got -1: invalid required`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	err = Field("scripts", ErrMissingScripts, "")
	if got, want := err.Error(), `field "scripts": missing scripts`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
