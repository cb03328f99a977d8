package fallible

import (
	"errors"
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(42)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	v, ok := r.Value()
	if !ok || v != 42 {
		t.Fatalf("expected value 42, got: %v (ok=%v)", v, ok)
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error on success, got: %v", r.Err())
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)

	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Err() != err {
		t.Fatalf("expected error %v, got: %v", err, r.Err())
	}
	if _, ok := r.Value(); ok {
		t.Fatalf("expected absent value on failure")
	}
}

func TestFail_NilErrorNormalized(t *testing.T) {
	t.Parallel()
	r := Fail[int](nil)

	if !r.IsFailure() || r.Err() == nil {
		t.Fatalf("expected inspectable failure, got err=%v", r.Err())
	}
	f, ok := r.Err().(*Fault)
	if !ok || f.Domain() != Domain || f.Code() != CodeAbsentValue {
		t.Fatalf("expected %s:%d fault, got: %v", Domain, CodeAbsentValue, r.Err())
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()
	err := errors.New("bad")

	if r := From(7, nil); !r.IsSuccess() {
		t.Fatalf("expected success, got: %v", r.Err())
	}
	if r := From(0, err); !r.IsFailure() || r.Err() != err {
		t.Fatalf("expected failure 'bad', got: success=%v, err=%v", r.IsSuccess(), r.Err())
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()
	n := 5

	r := FromPtr(&n, nil)
	if !r.IsSuccess() {
		t.Fatalf("expected success, got: %v", r.Err())
	}
	p, _ := r.Value()
	if *p != 5 {
		t.Fatalf("expected pointer to 5, got: %v", *p)
	}

	r = FromPtr[int](nil, nil)
	f, ok := r.Err().(*Fault)
	if !r.IsFailure() || !ok || f.Code() != CodeAbsentValue {
		t.Fatalf("expected absent-value fault, got: %v", r.Err())
	}

	err := errors.New("lookup failed")
	r = FromPtr(&n, err)
	if !r.IsFailure() || r.Err() != err {
		t.Fatalf("expected failure 'lookup failed', got: %v", r.Err())
	}
}

func TestFromOK(t *testing.T) {
	t.Parallel()

	r := FromOK("hit", true)
	v, _ := r.Value()
	if !r.IsSuccess() || v != "hit" {
		t.Fatalf("expected success 'hit', got: %v, err=%v", v, r.Err())
	}

	r = FromOK("", false)
	f, ok := r.Err().(*Fault)
	if !r.IsFailure() || !ok || f.Code() != CodeRefused {
		t.Fatalf("expected refused fault, got: %v", r.Err())
	}
}

func TestFailFrom_PreservesIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	in := Fail[int](err)

	out := FailFrom[int, string](in)
	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected failure 'boom', got: %v", out.Err())
	}
	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected id and createdAt preserved across FailFrom")
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	var zero Result[int]

	if !zero.IsEmpty() {
		t.Fatalf("expected zero value to be empty")
	}
	if Success(1).IsEmpty() || Fail[int](errors.New("e")).IsEmpty() {
		t.Fatalf("expected constructed results to be non-empty")
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()
	errA := errors.New("a")
	errB := errors.New("b")

	if got := Errors(nil); len(got) != 0 {
		t.Fatalf("expected no errors for nil, got: %v", got)
	}
	if got := Errors(errA); len(got) != 1 || got[0] != errA {
		t.Fatalf("expected [a], got: %v", got)
	}
	joined := errors.Join(errA, errB)
	if got := Errors(joined); len(got) != 2 || got[0] != errA || got[1] != errB {
		t.Fatalf("expected [a b], got: %v", got)
	}
}
