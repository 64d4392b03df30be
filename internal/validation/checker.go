// Package validation implements the validation layer: a registry of checkers
// and a dispatch shim that wraps every driver entry point with the checkers'
// prologues and epilogues.
//
// A checker participates in an API family by returning a non-nil value from
// the family accessor. Family values usually embed the matching Base type and
// override only the entry points they validate.
package validation

// Family names an API family.
type Family string

const (
	FamilyCore    Family = "ze"
	FamilyTools   Family = "zet"
	FamilySysman  Family = "zes"
	FamilyRuntime Family = "zer"
)

// Checker is a unit of validation logic. Accessors return nil for families
// the checker does not participate in.
type Checker interface {
	Name() string
	Core() CoreEntryPoints
	Tools() ToolsEntryPoints
	Sysman() SysmanEntryPoints
	Runtime() RuntimeEntryPoints
}

// Families lists the families c participates in.
func Families(c Checker) []Family {
	var out []Family
	if c.Core() != nil {
		out = append(out, FamilyCore)
	}
	if c.Tools() != nil {
		out = append(out, FamilyTools)
	}
	if c.Sysman() != nil {
		out = append(out, FamilySysman)
	}
	if c.Runtime() != nil {
		out = append(out, FamilyRuntime)
	}
	return out
}

func coreOf(c Checker) CoreEntryPoints       { return c.Core() }
func toolsOf(c Checker) ToolsEntryPoints     { return c.Tools() }
func sysmanOf(c Checker) SysmanEntryPoints   { return c.Sysman() }
func runtimeOf(c Checker) RuntimeEntryPoints { return c.Runtime() }
