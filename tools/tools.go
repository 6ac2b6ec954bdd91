// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build tools

// Package tools pins build-time tool dependencies.
package tools

import (
	_ "mvdan.cc/gofumpt"
)
