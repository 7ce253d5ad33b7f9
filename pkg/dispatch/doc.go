// Package dispatch fans a single opaque payload out to every registered push
// subscription and reports what happened to each delivery.
//
// An Engine is built from a Snapshotter (normally *subscription.Registry) and a
// Sender (normally *webpush.Client):
//
//	engine := dispatch.NewEngine(registry, webpush.NewClient(),
//		dispatch.WithDeliveryTimeout(30*time.Second),
//		dispatch.WithLogger(log),
//	)
//
//	report, err := engine.Dispatch(ctx, payload, creds)
//
// Dispatch validates the VAPID credentials before anything else and returns a
// *vapid.MissingCredentialsError without sending when one is absent. Otherwise
// it takes a snapshot of the subscriptions, starts one delivery per entry and
// waits for all of them. A failed delivery never aborts the others and never
// fails Dispatch: it is recorded as an Outcome in the Report and logged.
//
// Each delivery has its own deadline. When it passes, the engine stops waiting
// on that delivery and records ErrDeliveryTimeout, even if the Sender ignores
// its context. When the caller's context is canceled, the deliveries still in
// flight are recorded as ErrDeliveryCanceled and Dispatch returns the partial
// report.
//
// The engine does not retry and does not remove subscriptions.
package dispatch
