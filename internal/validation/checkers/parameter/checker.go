// Package parameter validates entry point arguments before they reach the
// driver: null handles, nil output pointers, out-of-range flags and
// enumerations, sizes and alignments.
package parameter

import "levelzero/internal/validation"

const Name = "parameter"

// Checker participates in every family. It is stateless and safe for
// concurrent use.
type Checker struct {
	core    core
	tools   tools
	sysman  sysman
	runtime runtime
}

var _ validation.Checker = (*Checker)(nil)

func New() *Checker {
	return &Checker{}
}

func (c *Checker) Name() string                           { return Name }
func (c *Checker) Core() validation.CoreEntryPoints       { return &c.core }
func (c *Checker) Tools() validation.ToolsEntryPoints     { return &c.tools }
func (c *Checker) Sysman() validation.SysmanEntryPoints   { return &c.sysman }
func (c *Checker) Runtime() validation.RuntimeEntryPoints { return &c.runtime }

// isPowerOfTwo accepts zero, which lets the driver pick an alignment.
func isPowerOfTwo(n uint64) bool {
	return n&(n-1) == 0
}
