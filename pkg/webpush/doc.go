// Package webpush delivers encrypted Web Push messages (RFC 8030, RFC 8291)
// signed with VAPID (RFC 8292).
//
// Client is the production implementation of the dispatch engine's Sender
// capability. Payload encryption and the VAPID JWT are handled by
// github.com/SherClockHolmes/webpush-go; this package adds connection pooling,
// per-request timeouts and classification of push service responses into
// stable sentinel errors:
//
//   - ErrSubscriptionGone: 404 or 410, the subscription has expired or was
//     revoked and will never accept messages again.
//   - ErrPayloadTooLarge: 413.
//   - ErrRateLimited: 429.
//   - ErrRejected: any other 4xx (bad VAPID signature, malformed request).
//   - ErrServiceUnavailable: 5xx.
//   - ErrUnexpectedStatus: anything else outside 2xx, such as an unfollowed 3xx.
//   - ErrTimeout: the request deadline passed.
//   - ErrEncryption: the message could not be built (bad subscription keys or
//     VAPID key material); no request was sent.
//   - ErrTransport: the request failed on the network.
//
// Every non-nil error returned by Send is a *DeliveryError carrying the HTTP
// status (when one was received) and a sanitized excerpt of the response body.
//
// Client never retries.
package webpush
