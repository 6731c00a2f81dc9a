package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/goleak"

	"bloodnet/internal/platform/config"
	dErrors "bloodnet/pkg/domain-errors"
	"bloodnet/pkg/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(testutil.FixedClock(fixedNow))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDistrictsCommand(t *testing.T) {
	out, err := run(t, "districts", "chenn")
	require.NoError(t, err)
	assert.Equal(t, "Chennai\n", out)

	out, err = run(t, "districts", "atlantis")
	require.NoError(t, err)
	assert.Contains(t, out, `No districts match "atlantis".`)
}

func TestDonorsCommand(t *testing.T) {
	t.Run("lists available donor with contact link", func(t *testing.T) {
		out, err := run(t, "donors", "Chennai", "O+")
		require.NoError(t, err)
		assert.Contains(t, out, "Rajesh Kumar")
		assert.Contains(t, out, "tel:+91 9876543210")
		assert.Contains(t, out, "recently donated")
		assert.Contains(t, out, "1 donor(s)")
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		out, err := run(t, "donors", "Ariyalur", "AB-")
		require.NoError(t, err)
		assert.Contains(t, out, "No donors found for this search.")
	})

	t.Run("requires both arguments", func(t *testing.T) {
		_, err := run(t, "donors", "Chennai")
		require.Error(t, err)
	})
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "--status", "Not Available")
	require.NoError(t, err)
	assert.Contains(t, out, "Priya Devi")
	assert.NotContains(t, out, "Rajesh Kumar")

	_, err = run(t, "search", "--status", "sleeping")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestRecencyCommand(t *testing.T) {
	out, err := run(t, "recency", "2023-11-10")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-10: recently donated (threshold 2023-10-16)\n", out)

	out, err = run(t, "recency", "2023-10-15")
	require.NoError(t, err)
	assert.Contains(t, out, "not recent")

	_, err = run(t, "recency", "15/10/2023")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDate))
}

func TestRequestsCommand(t *testing.T) {
	out, err := run(t, "urgent")
	require.NoError(t, err)
	assert.Contains(t, out, "URGENT BLOOD REQUIREMENTS")
	assert.Contains(t, out, "High")
	assert.NotContains(t, out, "Medium")

	_, err = run(t, "requests", "--urgency", "whenever")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestFacilitiesCommand(t *testing.T) {
	out, err := run(t, "facilities")
	require.NoError(t, err)
	assert.Contains(t, out, "Blood banks")
	assert.Contains(t, out, "Upcoming donation camps")
	assert.Contains(t, out, "Helplines")
}

func TestLinksCommand(t *testing.T) {
	out, err := run(t, "links", "+91 9876543210")
	require.NoError(t, err)
	assert.Equal(t, "call:     tel:+91 9876543210\nwhatsapp: https://wa.me/919876543210\n", out)
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donors.xlsx")
	out, err := run(t, "export", "Chennai", "O+", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Donors")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Rajesh Kumar", rows[1][0])
}

func TestTranslateCommand(t *testing.T) {
	out, err := run(t, "translate", "nav.home", "--locale", "ta")
	require.NoError(t, err)
	assert.Equal(t, "முகப்பு\n", out)

	_, err = run(t, "translate", "nav.nowhere")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = run(t, "translate", "--locale", "fr")
	require.Error(t, err)
}

func TestLintCommand(t *testing.T) {
	out, err := run(t, "lint")
	require.NoError(t, err)
	assert.Equal(t, "catalog ok\n", out)

	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`districts: [Chennai]
blood_groups: ["O+"]
donors:
  - id: "9"
    name: Test Donor
    age: 30
    blood_group: "O+"
    district: Atlantis
    last_donated: "2023-12-01"
    phone: "+91 9000000000"
    status: Available
`), 0o600))
	out, err = run(t, "--seed", seed, "lint")
	require.Error(t, err)
	assert.Contains(t, out, `donor 9: district "Atlantis": unknown district`)
}

func TestRemoteBackend(t *testing.T) {
	router, err := buildRouter(config.Defaults(), discardLogger())
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	out, err := run(t, "--server", srv.URL, "donors", "Chennai", "O+")
	require.NoError(t, err)
	assert.Contains(t, out, "Rajesh Kumar")

	_, err = run(t, "--server", srv.URL, "recency", "not-a-date")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDate))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := config.Defaults()
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, discardLogger(), func(addr string) { addrCh <- addr })
	}()

	addr := <-addrCh
	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeRejectsUnknownLocale(t *testing.T) {
	cfg := config.Defaults()
	cfg.DefaultLocale = "fr"
	_, err := buildRouter(cfg, discardLogger())
	require.Error(t, err)
}
