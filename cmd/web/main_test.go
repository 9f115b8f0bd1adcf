package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tmosimanyana/moofar.site/internal/config"
	"github.com/tmosimanyana/moofar.site/internal/server"
	"github.com/tmosimanyana/moofar.site/public"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRoutesCommand(t *testing.T) {
	var out bytes.Buffer
	if err := newApp(&out).Run(context.Background(), []string{appName, "routes"}); err != nil {
		t.Fatalf("routes: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header, five routes and fallback, got %q", out.String())
	}
	for i, want := range []string{"/", "/about", "/services", "/contact", "/integrations"} {
		if got := strings.Fields(lines[i+1])[0]; got != want {
			t.Errorf("route %d: got %s, want %s", i, got, want)
		}
	}
}

func TestConfigCommandUsesEnvFile(t *testing.T) {
	for _, key := range []string{"PORT", "MOOFAR_ENV", "MOOFAR_PUBLIC_DIR", "LOG_LEVEL", "MOOFAR_READ_TIMEOUT"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	envFile := filepath.Join(t.TempDir(), "site.env")
	if err := os.WriteFile(envFile, []byte("PORT=6100\nMOOFAR_READ_TIMEOUT=3s\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	var out bytes.Buffer
	if err := newApp(&out).Run(context.Background(), []string{appName, "--env-file", envFile, "config"}); err != nil {
		t.Fatalf("config: %v", err)
	}
	var got configDump
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if got.Server.Port != "6100" || got.Server.ReadTimeout != "3s" {
		t.Errorf("expected env file values, got %+v", got.Server)
	}
	if got.Site.PublicDir != "(embedded)" || got.Site.Environment != "local" || got.Log.Level != "info" {
		t.Errorf("unexpected defaults %+v %+v", got.Site, got.Log)
	}
}

func TestConfigCommandReportsInvalidValues(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	err := newApp(io.Discard).Run(context.Background(), []string{appName, "--env-file", "", "config"})
	if err == nil || !strings.Contains(err.Error(), "Server.Port") {
		t.Fatalf("expected port validation error, got %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, err := server.New(config.ServerConfig{
		Port:         "0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}, zap.NewNop(), public.StaticFS())
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, srv, ln, time.Second, zap.NewNop()) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	defer client.CloseIdleConnections()
	resp, err := client.Get("http://" + ln.Addr().String() + "/some/unmapped/path")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `id="root"`) {
		t.Fatalf("expected entry document, got %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}
