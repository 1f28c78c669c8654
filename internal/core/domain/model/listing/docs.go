// Package listing contains the Listing aggregate and its lifecycle and
// compliance state machines.
//
// A listing is one batch of surplus food published by an approved merchant.
// Admins police listings: flagging guideline violations keeps the listing
// visible but marked, removal takes it down for good. A scheduled sweep
// expires listings past their best-before time.
package listing
