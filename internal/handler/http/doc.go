// Package http implements the local HTTP control API of the sync engine.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, metrics, response compression and payload signing are
// handled here before requests are delegated to the sync coordinator.
package http
