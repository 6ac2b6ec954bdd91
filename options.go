// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package insight

import "fmt"

type options struct {
	withResultLimit int
}

// Option - how options are passed as args
type Option func(*options) error

func getDefaultOptions() options {
	return options{withResultLimit: maxResultRows}
}

func getOpts(opt ...Option) (options, error) {
	opts := getDefaultOptions()

	for _, o := range opt {
		if err := o(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// withResultLimit provides an option to lower the result cap so tests can
// exercise the overflow path without materializing thousands of records.
func withResultLimit(limit int) Option {
	return func(o *options) error {
		const op = "insight.withResultLimit"
		if limit <= 0 {
			return fmt.Errorf("%s: %w: limit must be positive, got %d", op, ErrInvalidParameter, limit)
		}
		o.withResultLimit = limit
		return nil
	}
}
