// Copyright 2024 The Gofem-MD Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs implements the closed set of error kinds surfaced by the
// simulation core: MathDomain, ParseError, IOError, ConfigError and
// DomainViolation. Every package in this module reports failures through
// these kinds instead of bare errors so the driver can report a single,
// kind-tagged line and exit non-zero, without swallowing or retrying.
package errs

import "fmt"

// Kind is a closed enum of error categories. No other kind may be added
// without also updating every switch over Kind in this module.
type Kind int

const (
	// MathDomain flags division by a near-zero magnitude, unit-vector of a
	// near-zero vector, or an acos argument outside [-1,1] past tolerance.
	MathDomain Kind = iota
	// ParseError flags a malformed model/topology line or an atom-count
	// mismatch while reading an input file.
	ParseError
	// IOError flags a file that cannot be opened, read or written.
	IOError
	// ConfigError flags a missing required flag or an out-of-range value.
	ConfigError
	// DomainViolation flags an element tag outside the enum at a site that
	// needs a positive mass.
	DomainViolation
)

func (k Kind) String() string {
	switch k {
	case MathDomain:
		return "MathDomain"
	case ParseError:
		return "ParseError"
	case IOError:
		return "IOError"
	case ConfigError:
		return "ConfigError"
	case DomainViolation:
		return "DomainViolation"
	default:
		return "Unknown"
	}
}

// Error is the error type every package in this module returns. Site names
// the function/call-site that raised it (e.g. "vec3.Unit", "inp.LoadModel:12")
// so the single-line report required by spec keeps kind, site and context
// together, the way gosl/chk.Err formats gofem's errors.
type Error struct {
	Kind Kind
	Site string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Site, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Site)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with a formatted context string, mirroring chk.Err's
// "site: fmt, args..." call shape.
func New(kind Kind, site, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Site: site, Err: fmt.Errorf(format, args...)}
}
