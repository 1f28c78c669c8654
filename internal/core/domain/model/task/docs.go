// Package task contains the Task aggregate: one pickup-and-delivery job
// moving surplus food from a merchant to a customer or NGO recipient.
//
// The lifecycle is strictly linear: available, accepted, picking-up,
// delivering, completed. Claiming an available task is the only point in the
// system where concurrent actors race; exactly one driver wins and everyone
// else observes a conflict. From acceptance onward every transition is
// restricted to the owning driver, and leaving picking-up requires
// photographic proof of pickup.
package task
