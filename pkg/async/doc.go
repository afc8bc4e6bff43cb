// Package async runs a computation on its own goroutine and hands back a Future
// for its eventual result.
//
// The API process uses it for fire-and-forget work on the request path: the
// handler starts the computation, writes its response and never joins the
// Future. Tests and shutdown code may still Await it.
//
// # Usage
//
//	future := async.Async(ctx, job, func(ctx context.Context, job queue.Job) (bool, error) {
//	    return producer.Enqueue(ctx, job), nil
//	})
//
//	// optional
//	ok, err := future.AwaitWithTimeout(time.Second)
//
// If ctx is already cancelled when the goroutine starts, the function is not
// called and the Future completes with ctx.Err(). A panic inside the function
// is recovered and reported as ErrPanic.
package async
