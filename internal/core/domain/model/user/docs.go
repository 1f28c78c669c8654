// Package user contains the User aggregate: platform accounts with a role
// and an active flag, managed from the admin panel.
package user
