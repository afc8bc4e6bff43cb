// Package environment carries the deployment environment (development,
// staging, production) through request contexts and log records.
//
// Parse normalizes the APP_ENV value. The api server installs Middleware so
// handlers can branch on IsProduction, for example to hide internal error
// details, and LoggerExtractor adds an "env" attribute to request logs.
package environment
