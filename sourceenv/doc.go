// Package sourceenv reads variables from the process environment.
//
// Lookup is exact: with Prefix "APP_", key "PORT" reads APP_PORT.
//
// Example:
//
//	src := sourceenv.New(sourceenv.Options{Prefix: "APP_"})
//	port, err := envkit.Int(src, "PORT")
package sourceenv
