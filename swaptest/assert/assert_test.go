package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/swapkit/errors"
)

type recorder struct {
	failed bool
}

func (r *recorder) Helper()                       {}
func (r *recorder) Fatal(...interface{})          { r.failed = true }
func (r *recorder) Fatalf(string, ...interface{}) { r.failed = true }

func TestNil(t *testing.T) {
	var nilErr *errors.Error
	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":         {value: nil},
		"typed nil":   {value: nilErr},
		"nil slice":   {value: []byte(nil)},
		"error":       {value: fmt.Errorf("x"), wantFail: true},
		"non nilable": {value: 4, wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var r recorder
			Nil(&r, tc.value)
			if r.failed != tc.wantFail {
				t.Fatalf("want fail %v, got %v", tc.wantFail, r.failed)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	var r recorder
	Equal(&r, []int{1, 2}, []int{1, 2})
	if r.failed {
		t.Fatal("equal values reported as different")
	}
	Equal(&r, 1, int64(1))
	if !r.failed {
		t.Fatal("different types must not be equal")
	}
}

func TestEqualBytes(t *testing.T) {
	var r recorder
	EqualBytes(&r, nil, []byte{})
	if r.failed {
		t.Fatal("nil and empty must be equal")
	}
}

func TestPanics(t *testing.T) {
	var r recorder
	Panics(&r, func() { panic("boom") })
	if r.failed {
		t.Fatal("panic not recovered")
	}
	Panics(&r, func() {})
	if !r.failed {
		t.Fatal("missing panic not reported")
	}
}
