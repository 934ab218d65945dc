package envkit_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/Azhovan/envkit"
	"github.com/Azhovan/envkit/sourceenv"
	"github.com/Azhovan/envkit/sourcemap"
)

type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
)

func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN"}[l]
}

// Example demonstrates reading typed variables from the process environment.
func Example() {
	os.Setenv("EXAMPLE_PORT", " 8080 ")
	os.Setenv("EXAMPLE_DEBUG", "on")
	defer func() {
		os.Unsetenv("EXAMPLE_PORT")
		os.Unsetenv("EXAMPLE_DEBUG")
	}()

	src := sourceenv.New(sourceenv.Options{Prefix: "EXAMPLE_"})

	port, err := envkit.Int(src, "PORT", envkit.Between(1024, 65535))
	if err != nil {
		fmt.Println(err)
		return
	}
	debug, err := envkit.Bool(src, "DEBUG")
	if err != nil {
		fmt.Println(err)
		return
	}
	host, err := envkit.Text(src, "HOST", envkit.Default("localhost"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Port: %d\n", port.Value)
	fmt.Printf("Debug: %t\n", debug.Value)
	fmt.Printf("Host: %s\n", host.Value)

	// Output:
	// Port: 8080
	// Debug: true
	// Host: localhost
}

// ExampleEnum demonstrates matching a variable against a symbol set.
func ExampleEnum() {
	src := sourcemap.New(map[string]string{"LOG_LEVEL": "warn"})
	levels := envkit.SymbolsOf(Debug, Info, Warn)

	level, err := envkit.Enum(src, "LOG_LEVEL", levels, envkit.CaseSensitive[LogLevel](false))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(level.Value)

	// Output:
	// WARN
}

// ExampleNotRequired demonstrates telling "not set" apart from "set to empty".
func ExampleNotRequired() {
	src := sourcemap.New(map[string]string{"SUFFIX": ""})

	suffix, _ := envkit.Text(src, "SUFFIX", envkit.NotRequired[string]())
	region, _ := envkit.Text(src, "REGION", envkit.NotRequired[string]())

	fmt.Printf("suffix set=%t value=%q\n", suffix.Set, suffix.Value)
	fmt.Printf("region set=%t\n", region.Set)

	// Output:
	// suffix set=true value=""
	// region set=false
}

// ExampleInt_errors demonstrates classifying accessor failures.
func ExampleInt_errors() {
	src := sourcemap.New(map[string]string{"WORKERS": "0", "RETRIES": "many"})

	for _, key := range []string{"WORKERS", "RETRIES", "TIMEOUT"} {
		_, err := envkit.Int(src, key, envkit.MinValue(1))
		switch {
		case errors.Is(err, envkit.ErrMissingKey):
			fmt.Printf("%s: missing\n", key)
		case errors.Is(err, envkit.ErrInvalidFormat):
			fmt.Printf("%s: not a number\n", key)
		case errors.Is(err, envkit.ErrOutOfRange):
			fmt.Printf("%s: out of range\n", key)
		}
	}

	// Output:
	// WORKERS: out of range
	// RETRIES: not a number
	// TIMEOUT: missing
}

// ExampleCollector demonstrates reading a whole contract and reporting every failure.
func ExampleCollector() {
	src := sourcemap.New(map[string]string{
		"DB_HOST": "db.internal",
		"DB_PORT": "99999",
		"MODE":    "Production",
	})

	c := envkit.NewCollector(src)
	c.Text("DB_HOST", envkit.MinLength(1))
	c.Int("DB_PORT", envkit.Between(1, 65535))
	c.Literal("MODE", []string{"development", "production"})
	c.Int("POOL_SIZE", envkit.Default[int64](10))

	if err := c.Err(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// config validation failed: 2 errors
	//   - DB_PORT: out_of_range (value 99999 exceeds maximum 65535)
	//   - MODE: invalid_format (value "Production" must be one of: development, production)
}

// ExampleDumpContract demonstrates printing the declared contract with its sources.
func ExampleDumpContract() {
	src := sourcemap.New(map[string]string{"PORT": "8080"}).Named("env")

	c := envkit.NewCollector(src)
	c.Int("PORT")
	c.Bool("VERBOSE", envkit.Default(false))
	c.Text("TOKEN", envkit.NotRequired[string]())

	if err := envkit.DumpContract(os.Stdout, c.Declarations(), envkit.WithSources()); err != nil {
		fmt.Println(err)
	}

	// Output:
	// PORT: 8080 (source: env)
	// VERBOSE: false (source: default)
	// TOKEN: <unset> (source: default)
}
