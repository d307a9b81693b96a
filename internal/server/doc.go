// Package server wires and runs the transport servers of go-matjip.
//
// It binds the HTTP and gRPC listeners at construction time, runs both
// until SIGTERM, SIGINT or SIGQUIT arrives, and then drains them.
package server
