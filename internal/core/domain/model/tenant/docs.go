// Package tenant contains the multi-tenancy side of the domain model:
// Company (the tenant), User (the authenticated principal) and Actor (the
// per-request projection of a user used for visibility scoping and write
// authorization).
package tenant
