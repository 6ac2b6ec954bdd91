// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import "errors"

var (
	ErrInternal         = errors.New("internal error")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidQuery     = errors.New("invalid query")
	ErrFieldNotFound    = errors.New("field not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrResultTooLarge   = errors.New("too many results, maximum 5000")
)
