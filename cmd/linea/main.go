package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/linea/internal/client"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage: linea [-server URL] [-timeout D] <tool|services|health> [key=value ...]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linea", flag.ContinueOnError)
	fs.SetOutput(stderr)
	serverURL := fs.String("server", envOr("LINEA_SERVER", client.DefaultServerURL), "linea server URL")
	timeout := fs.Duration("timeout", 30*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, errUsage)
		return exitUsage
	}

	c := client.New(client.Config{
		BaseURL:  *serverURL,
		Timeout:  *timeout,
		RetryMax: 2,
	})

	var (
		out interface{}
		err error
	)
	command := fs.Arg(0)
	switch command {
	case "services":
		out, err = c.Services(ctx)
	case "health":
		out, err = c.Health(ctx)
	default:
		params, perr := parseParams(fs.Args()[1:])
		if perr != nil {
			fmt.Fprintln(stderr, perr)
			return exitUsage
		}
		res, xerr := c.Execute(ctx, toolID(command), params)
		if xerr != nil {
			err = xerr
			break
		}
		if werr := writeJSON(stdout, res); werr != nil {
			fmt.Fprintln(stderr, werr)
			return exitFailure
		}
		if !res.Success {
			return exitFailure
		}
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
	if err := writeJSON(stdout, out); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return exitOK
}

// toolID accepts both "dot" and "vector.dot"
func toolID(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return "vector." + name
}

// parseParams turns key=value pairs into tool params. Values are JSON
// literals; anything that is not valid JSON is passed as a string.
func parseParams(pairs []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: want key=value", pair)
		}
		var value interface{}
		if err := sonic.UnmarshalString(raw, &value); err != nil {
			value = raw
		}
		params[key] = value
	}
	return params, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
