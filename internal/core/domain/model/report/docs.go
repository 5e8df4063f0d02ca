// Package report provides the CustomerReport aggregate: a self-service
// submission from the customer portal that an operator can link to a physical
// parcel. Linking never touches the parcel's own status.
package report
