// Package server implements the FusionAI Orchestrator HTTP responder.
//
// The implementation is organized into specialized files for configuration,
// routing, HTTP handlers, and the listener lifecycle so that each piece can be
// exercised on its own in tests.
package server
