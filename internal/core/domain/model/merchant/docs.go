// Package merchant contains the Merchant aggregate and its verification
// state machine.
//
// A merchant registers externally and enters the domain in Pending status.
// An admin then records a verdict: Approved unlocks listing creation,
// Rejected stores the reason shown back to the merchant. Both verdicts are
// terminal; re-application is not part of this model.
package merchant
