// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ingest

import "go.uber.org/zap"

type options struct {
	withLogger *zap.SugaredLogger
}

// Option - how options are passed as args
type Option func(*options) error

func getDefaultOptions() options {
	return options{withLogger: zap.NewNop().Sugar()}
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

// WithLogger provides an option to log ingestion progress and skipped files.
// Without it the loaders are silent.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) error {
		if l != nil {
			o.withLogger = l
		}
		return nil
	}
}
