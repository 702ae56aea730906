// Package types defines the parameter structs, validation rules and
// standard errors shared by the mecanica calculators.
//
// Every calculator takes one of these structs by value and never reads
// package-level state. DefaultConfig returns the example parameters used
// by the mecanica CLI when neither flags nor config.yaml override them.
package types
