// Package parcel provides the Parcel aggregate root and its Status state
// machine for the pickup core.
//
// The package includes:
//   - Parcel: the aggregate that manages parcel identity, contact data, and lifecycle
//   - Status: a state machine enforcing the closed transition table
//
// Key business rules:
//   - Parcels are created awaiting pickup ("in_giacenza")
//   - A parcel is collected ("ritirato") only through OTP confirmation
//   - A parcel expires ("in_giacenza_scaduto") only through the storage sweep
//   - Operators may flag a parcel for handling ("in_corso") and resume it,
//     which restarts the storage clock
//   - Terminal states admit no further transitions inside this core
package parcel
