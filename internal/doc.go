// Package internal documents the web GIS server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, responses, and routing
// - domain: business logic for events, users, and request logs
// - storage: Postgres/PostGIS and MongoDB repositories
// - auth, config, metrics, sanitize: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
