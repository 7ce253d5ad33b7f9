// Package redis connects to Redis with bounded retries and exposes a
// readiness check. The push queue in pkg/redisq runs on top of the client
// returned by Connect.
package redis
