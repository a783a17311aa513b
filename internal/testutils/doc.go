// Package testutils provides helpers shared by tests across packages:
// temporary files, httptest servers, and assertions on the JSON error shape.
package testutils
