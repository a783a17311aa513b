// Package mocks provides centralized mock implementations for testing.
//
// Usage:
//
//	gen := mocks.NewMockGeneratorWithText("  Un poema bonito.  ")
//	svc, _ := service.NewComposeService(gen, logger, service.Options{})
//	// ... exercise svc, then inspect gen.Calls()
package mocks
