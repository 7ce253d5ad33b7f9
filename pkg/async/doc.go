// Package async provides generic helpers for running work in a goroutine and
// collecting its result later.
//
// Async starts fn in its own goroutine and returns a *Future immediately. The
// caller waits with Await or bounds the wait with AwaitContext. If the context
// passed to Async is already done when the goroutine starts, fn is skipped and
// the Future completes with the context error.
//
// # Usage
//
//	futures := make([]*async.Future[Result], len(items))
//	for i, item := range items {
//	    futures[i] = async.Async(ctx, item, process)
//	}
//	for _, f := range futures {
//	    res, err := f.AwaitContext(ctx)
//	    // ...
//	}
//
// AwaitContext stops waiting when its context is done but does not stop the
// goroutine; fn is expected to honour the context it receives.
package async
