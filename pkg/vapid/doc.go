// Package vapid models the VAPID signing identity (RFC 8292) a push sender
// presents to push services, and resolves it from the environment.
//
// Credentials must carry all three of PrivateKey, PublicKey and Subject before
// any push is sent. Validate reports the first missing field as a
// *MissingCredentialsError, which matches ErrMissingCredentials with errors.Is.
//
// Credentials are resolved when a dispatch starts rather than once at
// startup, so EnvSource re-reads VAPID_PRIVATE_KEY, VAPID_PUBLIC_KEY and
// VAPID_SUBJECT on every call.
//
// GenerateKeys creates a fresh P-256 key pair encoded the way push services
// and browsers expect (unpadded base64url).
package vapid
