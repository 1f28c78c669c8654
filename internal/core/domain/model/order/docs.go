// Package order contains the Order aggregate: a customer's confirmed
// purchase of surplus food items, fulfilled once delivery completes and
// ratable exactly once afterwards.
package order
