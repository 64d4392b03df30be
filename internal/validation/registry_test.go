package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"levelzero/internal/validation"
)

// =============================================================================
// Registry Test Suite
// =============================================================================
// Justification for unit tests: the registry is the only shared mutable state
// in the layer. Tests verify FIFO order, snapshot isolation, concurrent
// appends and reverse-order teardown.

type RegistrySuite struct {
	suite.Suite
	registry *validation.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.registry = validation.NewRegistry()
}

type closingChecker struct {
	*recorder
	closed *[]string
	err    error
}

func (c closingChecker) Close() error {
	*c.closed = append(*c.closed, c.name)
	return c.err
}

func (s *RegistrySuite) TestAppend() {
	s.Run("rejects nil checker", func() {
		err := s.registry.Append(nil)
		s.ErrorIs(err, validation.ErrNilChecker)
		s.Zero(s.registry.Len())
	})

	s.Run("keeps registration order", func() {
		tr := &trace{}
		for _, name := range []string{"b", "a", "c"} {
			s.Require().NoError(s.registry.Append(newRecorder(name, tr)))
		}
		s.Equal([]string{"b", "a", "c"}, s.registry.Names())
	})

	s.Run("allows the same checker twice", func() {
		r := validation.NewRegistry()
		p := newRecorder("dup", &trace{})
		s.Require().NoError(r.Append(p))
		s.Require().NoError(r.Append(p))
		s.Equal(2, r.Len())
	})
}

func (s *RegistrySuite) TestCheckersReturnsCopy() {
	s.Require().NoError(s.registry.Append(newRecorder("a", &trace{})))

	got := s.registry.Checkers()
	got[0] = newRecorder("replaced", &trace{})

	s.Equal([]string{"a"}, s.registry.Names())
}

func (s *RegistrySuite) TestConcurrentAppend() {
	const n = 64
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			return s.registry.Append(newRecorder(fmt.Sprintf("c%d", i), &trace{}))
		})
	}
	s.Require().NoError(g.Wait())
	s.Equal(n, s.registry.Len())
	s.ElementsMatch(expectedNames(n), s.registry.Names())
}

func (s *RegistrySuite) TestCloseInReverseOrder() {
	var closed []string
	boom := errors.New("boom")
	tr := &trace{}

	s.Require().NoError(s.registry.Append(closingChecker{recorder: newRecorder("first", tr), closed: &closed}))
	s.Require().NoError(s.registry.Append(newRecorder("no-closer", tr)))
	s.Require().NoError(s.registry.Append(closingChecker{recorder: newRecorder("second", tr), closed: &closed, err: boom}))
	s.Require().NoError(s.registry.Append(closingChecker{recorder: newRecorder("third", tr), closed: &closed}))

	err := s.registry.Close()

	s.Equal([]string{"third", "second", "first"}, closed)
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "close second")
}

func expectedNames(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = fmt.Sprintf("c%d", i)
	}
	return out
}

func TestDefaultRegistryIsShared(t *testing.T) {
	a := validation.Default()
	b := validation.Default()
	require.NotNil(t, a)
	assert.Same(t, a, b)
}
