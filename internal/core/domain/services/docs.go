// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - FulfillmentPlanner: builds the delivery task for a confirmed order or
//     a claimed donation, deriving pickup urgency from food expiry
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
