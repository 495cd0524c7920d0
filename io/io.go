// Package io defines the basic interfaces for working
// with the input lines of the generator (reset, mode switches
// and the 8 bit input bus). Implementors are sampled once per
// pixel clock so anything returned is only seen on that cycle.
package io

// PortIn1 defines a 1 bit input line.
type PortIn1 interface {
	// Input will return the current level being set on the given input line.
	Input() bool
}

// PortIn8 defines an 8 bit input port.
type PortIn8 interface {
	// Input will return the current value being set on the given input port.
	Input() uint8
}
