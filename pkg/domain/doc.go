// Package domain holds the entities of the label checker: accounts and their
// plans, users, label scans with their compliance reports, payments, team
// invites and regulatory rules. It has no storage or transport dependencies.
package domain
