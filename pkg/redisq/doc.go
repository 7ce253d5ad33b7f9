// Package redisq carries transaction events to the dispatch engine over a
// Redis list.
//
// Producers LPUSH raw payloads with Publisher.Publish. A Consumer BRPOPs them
// one at a time and passes each to its Handler. A payload whose handler
// returns an error is pushed unchanged onto the dead-letter list
// "<queue>:dead" so it can be inspected and replayed; nothing is retried
// automatically.
//
//	consumer := redisq.NewConsumer(client, func(ctx context.Context, payload []byte) error {
//		_, err := engine.Dispatch(ctx, payload, creds)
//		return err
//	}, redisq.WithQueue("transactions-queue"))
//
//	g.Go(consumer.Run(ctx))
package redisq
