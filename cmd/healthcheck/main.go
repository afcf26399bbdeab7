// Healthcheck probes a running vault over loopback and reports the result
// through its exit code, which makes it usable as a container HEALTHCHECK.
package main

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/MKhiriev/keypass/internal/adapter"
)

const probeTimeout = 2 * time.Second

func main() {
	os.Exit(check())
}

func check() int {
	addr := normalizeAddr(os.Getenv("SERVER_ADDRESS"))

	client := adapter.NewVaultClient(adapter.VaultClientConfig{
		BaseURL: "http://" + addr,
		Timeout: probeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		return 1
	}

	return 0
}

// normalizeAddr ensures the healthcheck connects to loopback rather than the
// bind-all address. Docker containers bind 0.0.0.0 but the healthcheck runs
// inside the same container, so loopback is reachable and more correct.
func normalizeAddr(raw string) string {
	if raw == "" {
		return "127.0.0.1:8000"
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return "127.0.0.1:8000"
	}

	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
