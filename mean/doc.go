// Package mean provides composable parametric mean functions: the
// deterministic trend components of a Gaussian process regression network
// applied to radial-velocity time series.
//
// Every model maps a vector of observation times to a vector of predicted
// values and is driven by a small flat parameter vector, exposed through
// the Function interface. Models combine algebraically with NewSum and
// NewProduct while keeping the same interface, so an external optimizer
// can distribute one global parameter vector across any tree of models by
// chaining SetParams calls.
package mean
