// Package subscription holds the registry of Web Push subscriptions known to
// the process.
//
// A Subscription is the endpoint URL a browser's push service issued plus the
// two keys needed to encrypt payloads for it (the auth secret and the P-256
// ECDH public key). Subscriptions are values: once created they never change,
// and the registry hands out copies.
//
// # Registry
//
// Registry is an ordered, capacity-bounded, in-memory collection guarded by a
// single mutex. It exposes two operations:
//
//   - Add validates a Candidate and appends it, or fails with
//     ErrInvalidSubscription or ErrCapacityExceeded leaving the registry
//     unchanged.
//   - Snapshot returns a point-in-time copy in insertion order. Dispatch
//     iterates over the copy, so concurrent Adds never block or disturb an
//     in-flight fan-out.
//
// Entries are never removed and the same endpoint may be registered twice.
// The registry is not durable: contents are lost when the process exits.
// Durable copies of registrations live in the user store, not here.
//
// # Usage
//
//	reg := subscription.NewRegistry(subscription.WithCapacity(cfg.Capacity))
//
//	err := reg.Add(subscription.Candidate{
//	    Endpoint: "https://fcm.googleapis.com/fcm/send/...",
//	    Keys: subscription.Keys{Auth: "...", P256dh: "..."},
//	})
//	switch {
//	case errors.Is(err, subscription.ErrInvalidSubscription):
//	    // reject the request, validator.ExtractValidationErrors(err) has details
//	case errors.Is(err, subscription.ErrCapacityExceeded):
//	    // registry is full
//	}
package subscription
