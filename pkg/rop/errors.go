package rop

import "github.com/zeebo/errs"

var (
	// UnwrapError is the class of the panic raised by Unwrap on a failure.
	UnwrapError = errs.Class("unwrap on failure")
	// VariantError is the class of the panic raised by Result or Err when
	// called on the other variant.
	VariantError = errs.Class("wrong variant")
)
