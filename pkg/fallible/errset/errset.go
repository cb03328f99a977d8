package errset

import (
	"errors"
	"sort"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Set is a collection of (domain, code) pairs used as a pattern to match
// errors. Membership is pure structural equality on the pair; no ordering.
// The zero value is an empty set ready for use.
type Set struct {
	members map[string]map[int]struct{}
}

// Pair is one (domain, code) entry, used by Pairs.
type Pair struct {
	Domain string
	Code   int
}

func New() Set {
	return Set{members: map[string]map[int]struct{}{}}
}

// Of builds a set from one domain and any number of codes.
func Of(domain string, codes ...int) Set {
	s := New()
	for _, c := range codes {
		s.Insert(domain, c)
	}
	return s
}

// OfCodes builds a set from a domain and an explicit code set.
func OfCodes(domain string, codes map[int]struct{}) Set {
	s := New()
	for c := range codes {
		s.Insert(domain, c)
	}
	return s
}

// OfError builds a set holding the (domain, code) of err.
// An error without a domain and code contributes nothing.
func OfError(err error) Set {
	s := New()
	s.InsertError(err)
	return s
}

// OfErrors builds a set from the pairs of many errors.
func OfErrors(errs []error) Set {
	s := New()
	for _, err := range errs {
		s.InsertError(err)
	}
	return s
}

// pairOf extracts the (domain, code) pair, searching the wrap chain.
func pairOf(err error) (string, int, bool) {
	var dc fallible.DomainCoder
	if errors.As(err, &dc) {
		return dc.Domain(), dc.Code(), true
	}
	return "", 0, false
}

func (s *Set) Insert(domain string, code int) {
	if s.members == nil {
		s.members = map[string]map[int]struct{}{}
	}
	codes, ok := s.members[domain]
	if !ok {
		codes = map[int]struct{}{}
		s.members[domain] = codes
	}
	codes[code] = struct{}{}
}

func (s *Set) InsertError(err error) {
	if domain, code, ok := pairOf(err); ok {
		s.Insert(domain, code)
	}
}

// Merge adds every pair of other to the receiver (in-place union).
func (s *Set) Merge(other Set) {
	for domain, codes := range other.members {
		for code := range codes {
			s.Insert(domain, code)
		}
	}
}

// Contains reports whether the (domain, code) pair of err is in the set.
// Errors carrying no pair never match.
func (s Set) Contains(err error) bool {
	domain, code, ok := pairOf(err)
	if !ok {
		return false
	}
	return s.ContainsPair(domain, code)
}

func (s Set) ContainsPair(domain string, code int) bool {
	codes, ok := s.members[domain]
	if !ok {
		return false
	}
	_, ok = codes[code]
	return ok
}

// Matches is Contains under a guard-friendly name for switch dispatch.
func (s Set) Matches(err error) bool {
	return s.Contains(err)
}

// Union returns a new set with the pairs of both operands.
func (s Set) Union(other Set) Set {
	out := New()
	out.Merge(s)
	out.Merge(other)
	return out
}

// Intersect returns a new set with the pairs present in both operands.
func (s Set) Intersect(other Set) Set {
	out := New()
	for domain, codes := range s.members {
		for code := range codes {
			if other.ContainsPair(domain, code) {
				out.Insert(domain, code)
			}
		}
	}
	return out
}

// Diff returns a new set with the pairs of s not present in other.
func (s Set) Diff(other Set) Set {
	out := New()
	for domain, codes := range s.members {
		for code := range codes {
			if !other.ContainsPair(domain, code) {
				out.Insert(domain, code)
			}
		}
	}
	return out
}

// ExclusiveOr returns the symmetric difference of the operands.
func (s Set) ExclusiveOr(other Set) Set {
	return s.Diff(other).Union(other.Diff(s))
}

// Equal reports whether the symmetric difference of the sets is empty.
func (s Set) Equal(other Set) bool {
	return s.ExclusiveOr(other).Empty()
}

// SubsetOf reports whether every pair of s is in other.
func (s Set) SubsetOf(other Set) bool {
	return s.Diff(other).Empty()
}

// SupersetOf reports whether every pair of other is in s.
func (s Set) SupersetOf(other Set) bool {
	return other.SubsetOf(s)
}

func (s Set) Empty() bool {
	return s.Len() == 0
}

func (s Set) Len() int {
	n := 0
	for _, codes := range s.members {
		n += len(codes)
	}
	return n
}

// Pairs returns the entries sorted by domain, then code.
func (s Set) Pairs() []Pair {
	pairs := make([]Pair, 0, s.Len())
	for domain, codes := range s.members {
		for code := range codes {
			pairs = append(pairs, Pair{Domain: domain, Code: code})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Domain != pairs[j].Domain {
			return pairs[i].Domain < pairs[j].Domain
		}
		return pairs[i].Code < pairs[j].Code
	})
	return pairs
}
