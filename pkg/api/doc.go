// Package api exposes the registry and the dispatch engine over HTTP.
//
// Routes:
//
//	POST /api/subscribers            register a user document and its push subscription
//	GET  /api/subscribers/count      registry size and capacity
//	POST /api/notifications/trigger  dispatch the request body to every subscriber
//	GET  /health/live                liveness probe
//	GET  /health/ready               readiness probe
//
// Every JSON response uses the envelope {"data": ..., "error": {"code",
// "message", "details"}}. Trigger responses never reveal per-endpoint
// delivery results; they carry only the dispatch ID and the number of
// subscriptions attempted.
package api
