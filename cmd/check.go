package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	infraerrors "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/errors"
	infrahttp "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/http"
)

const (
	defaultCheckTimeout = 3 * time.Second
	defaultCheckPort    = "3000"
)

func newCheckCommand() *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the local /health endpoint",
		Long: `check requests /health from a running swarm-probe and exits non-zero
when it does not answer 200. Use it as a container HEALTHCHECK.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = defaultHealthURL()
			}
			return runCheck(cmd.Context(), url, timeout, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "health URL (default http://localhost:$PORT/health)")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultCheckTimeout, "request timeout")

	return cmd
}

func defaultHealthURL() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultCheckPort
	}
	return "http://" + net.JoinHostPort("localhost", port) + "/health"
}

func runCheck(ctx context.Context, url string, timeout time.Duration, out io.Writer) error {
	client := infrahttp.NewClient(infrahttp.ClientConfig{
		Timeout:           timeout,
		DisableKeepAlives: true,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if httpErr := infraerrors.ParseHTTPError(resp); httpErr != nil {
		return fmt.Errorf("health check failed: %w", httpErr)
	}

	fmt.Fprintf(out, "OK %d %s\n", resp.StatusCode, url)
	return nil
}
