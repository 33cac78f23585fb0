// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license.

package cuckoo

import "errors"

var (
	// ErrInvalidVertexCount is returned by New when n is zero or odd. The
	// graph is bipartite and needs an exact left/right split.
	ErrInvalidVertexCount = errors.New("cuckoo: vertex count must be even and non-zero")

	// ErrInvalidEdgeCount is returned by New when e is zero.
	ErrInvalidEdgeCount = errors.New("cuckoo: edge count must be non-zero")

	// ErrInvalidCycleLength is returned by New when l is odd or below 4.
	ErrInvalidCycleLength = errors.New("cuckoo: cycle length must be even and at least 4")
)
