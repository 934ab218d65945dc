// Package sourcefile reads variables from a single flat file.
//
// Supported formats: yaml, json, toml, and env (KEY=VALUE lines).
// Nested tables flatten to dot-separated keys: database.host.
// Env files are parsed with godotenv: inline comments are dropped, quotes are
// removed, and $VAR references in unquoted or double-quoted values are expanded.
// JSON numbers keep their exact digits.
//
// Example:
//
//	src, err := sourcefile.New("app.env", sourcefile.Options{Required: true})
//	port, err := envkit.Int(src, "PORT")
package sourcefile
