// Package mongo connects to MongoDB with bounded retries and exposes a
// readiness check for the HTTP server.
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	ready := httpserver.HealthCheckHandler(log, httpserver.Check{Name: "mongo", Fn: mongo.Healthcheck(client)})
package mongo
