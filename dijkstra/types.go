package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	ErrEmptySource     = errors.New("dijkstra: source vertex ID is empty")
	ErrNilGraph        = errors.New("dijkstra: graph is nil")
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")
	ErrVertexNotFound  = errors.New("dijkstra: vertex not found in graph")
	ErrNegativeWeight  = errors.New("dijkstra: negative edge weight encountered")
	ErrBadMaxDistance  = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string // starting vertex ID
	Target      string // optional; search stops once Target is settled
	ReturnPath  bool   // return the predecessor map
	MaxDistance int64  // vertices farther than this are not explored
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the search as soon as id has its final distance.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables generation of the predecessor map.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps explored distances. Negative values make Dijkstra
// return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// DefaultOptions returns Options for source with no target and no cap.
func DefaultOptions(source string) Options {
	return Options{Source: source, MaxDistance: math.MaxInt64}
}
