// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

package wgpu

import "errors"

var (
	// ErrNoBackend indicates the Vulkan HAL backend is unavailable.
	ErrNoBackend = errors.New("wgpu: vulkan backend not available")

	// ErrNoAdapter indicates no GPU adapters were enumerated.
	ErrNoAdapter = errors.New("wgpu: no GPU adapters found")
)
