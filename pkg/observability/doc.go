/*
Package observability provides monitoring hooks for the transform graph.

Metrics implements transform.Hooks on top of Prometheus counters, tracking
operator registrations, applied transforms and the edges they traverse.
*/
package observability
