// Package zel holds loader-level types shared by drivers and layers.
package zel

import (
	"levelzero/pkg/ze"
	"levelzero/pkg/zer"
	"levelzero/pkg/zes"
	"levelzero/pkg/zet"
)

// Tables aggregates one dispatch table per API family.
type Tables struct {
	Core    ze.Table
	Tools   zet.Table
	Sysman  zes.Table
	Runtime zer.Table
}

// ComponentVersion identifies a loader component such as a layer.
type ComponentVersion struct {
	Name        string
	SpecVersion ze.APIVersion
	Major       int
	Minor       int
	Patch       int
}
