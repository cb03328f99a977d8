package fallible

import (
	"fmt"
	"strings"
)

// Domain is the namespace of faults raised by this library itself.
const Domain = "fallible"

const (
	// CodeNoneSuccessful reports that zero of N combined results succeeded.
	CodeNoneSuccessful = 1
	// CodeMultipleErrors reports more than one underlying failure.
	CodeMultipleErrors = 2
	// CodeAbsentValue reports a nil return where a value was expected.
	CodeAbsentValue = 3
	// CodeRefused reports a false return from a boolean-reporting call.
	CodeRefused = 4
)

// Fault is a structured error identified by a (domain, code) pair,
// optionally carrying nested errors as detail.
type Fault struct {
	domain string
	code   int
	msg    string
	nested []error
}

func NewFault(domain string, code int, msg string) *Fault {
	return &Fault{domain: domain, code: code, msg: msg}
}

// AggregateFault builds a fault whose detail is a list of nested errors.
// The nested slice is copied, not aliased.
func AggregateFault(domain string, code int, msg string, nested []error) *Fault {
	f := NewFault(domain, code, msg)
	f.nested = append(f.nested, nested...)
	return f
}

// With returns a copy of the fault with a different message.
func (f *Fault) With(msg string) *Fault {
	return &Fault{domain: f.domain, code: f.code, msg: msg, nested: f.nested}
}

func (f *Fault) Domain() string {
	return f.domain
}

func (f *Fault) Code() int {
	return f.code
}

func (f *Fault) Error() string {
	var b strings.Builder
	if f.msg != "" {
		fmt.Fprintf(&b, "%s [%s:%d]", f.msg, f.domain, f.code)
	} else {
		fmt.Fprintf(&b, "[%s:%d]", f.domain, f.code)
	}
	for _, e := range f.nested {
		b.WriteString("; ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap exposes nested detail to errors.Is/As traversal.
func (f *Fault) Unwrap() []error {
	return f.nested
}

// Nested returns the detail list (nil for leaf faults).
func (f *Fault) Nested() []error {
	return f.nested
}

// IsAggregate reports whether err is one of the library's aggregate faults.
func IsAggregate(err error) bool {
	f, ok := err.(*Fault)
	return ok && f.domain == Domain &&
		(f.code == CodeNoneSuccessful || f.code == CodeMultipleErrors)
}

// FlattenErrors unpacks aggregate faults one level so that aggregates
// never nest. Leaf errors pass through in order.
func FlattenErrors(errs []error) []error {
	flat := make([]error, 0, len(errs))
	for _, err := range errs {
		if IsAggregate(err) {
			flat = append(flat, Errors(err)...)
		} else {
			flat = append(flat, err)
		}
	}
	return flat
}
