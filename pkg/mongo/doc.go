// Package mongo connects to the MongoDB database that stores users and
// employees.
//
// Config is read from MONGO_URI and MONGO_DATABASE plus pool and retry
// settings. Connect pings with retries and fails when the server never
// answers, because the api process cannot serve anything without it.
// EnsureIndexes, IsDuplicateKey and IsNotFound are small helpers shared by the
// repositories.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.Database(ctx, cfg, log)
//	if err != nil {
//	    os.Exit(1)
//	}
package mongo
