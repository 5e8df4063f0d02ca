// Package services contains stateless domain services that implement business
// decisions spanning more than one aggregate or depending on configuration.
//
// ExpirationPolicy decides, for a parcel awaiting pickup, whether the storage
// sweep should leave it alone, warn the customer, or expire it. The decision
// is a pure function of the parcel's last status change, the evaluation
// instant, and the configured thresholds, which keeps the sweep testable
// without wall-clock dependencies.
package services
