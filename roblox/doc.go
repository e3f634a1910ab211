// Package roblox holds the HTTP plumbing shared by every Roblox API
// client in this module.
//
// All public Roblox web APIs follow the same conventions: plain GET
// requests, JSON bodies, a small set of meaningful HTTP status codes,
// and cursor-based pagination for list endpoints. This package
// implements those conventions once so that the per-service packages
// (users, groups, badges, friends, games, avatars) only have to declare
// their record types and endpoint paths.
//
// # Components
//
//   - Client: the shared transport (HTTP client, logger, user agent)
//   - Get / GetPage / SearchPage: generic fetch-and-decode helpers
//   - Page: one slice of a cursor-paginated listing
//   - Errors: sentinel errors per status code plus structured APIError
//
// # Error Handling
//
// Every non-200 response becomes an *APIError wrapping one of the
// sentinel errors, so callers can branch with errors.Is:
//
//	user, err := client.Get(ctx, 123)
//	if errors.Is(err, roblox.ErrNotFound) {
//		// no such user
//	}
//
// Failures that never produced a well-formed reply (connection errors,
// timeouts, bodies that are not valid JSON) wrap ErrTransport instead,
// keeping transport faults distinct from API-level rejections.
//
// # Pagination
//
// List endpoints accept an optional limit (10, 25, 50 or 100), an
// opaque cursor and for most endpoints a sort order. Limit and sort
// order are validated before any request is sent; cursors are never
// inspected, only forwarded verbatim to the server.
package roblox
