package graph

import "errors"

var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrVertexExists indicates AddVertex was called with an id already in use.
	ErrVertexExists = errors.New("graph: vertex already exists")

	// ErrSelfLoop indicates an edge was attempted between a vertex and itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)
