// Package kernel contains shared value objects used across the pickup domain.
//
// The package includes:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Contact: customer contact details attached to a parcel
//   - TrackingCode: normalized carrier tracking identifier
//
// All value objects are immutable, created through factory functions, and
// expose a Validate method so zero values are rejected before use.
package kernel
