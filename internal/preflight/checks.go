package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"launchset/internal/config"
	"launchset/internal/store"
)

const endpointTimeout = 5 * time.Second

// CheckCatalog verifies that the catalog answers a rockets listing.
func CheckCatalog(ctx context.Context, baseURL, userAgent string) Result {
	const name = "Catalog"

	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return Result{Name: name, Detail: "missing base url"}
	}
	return checkEndpoint(ctx, name, http.MethodGet, base+"/rockets", userAgent)
}

// CheckSnapshot verifies that the static snapshot is retrievable. It issues a
// HEAD request so the body is not downloaded.
func CheckSnapshot(ctx context.Context, snapshotURL, userAgent string) Result {
	const name = "Snapshot"

	target := strings.TrimSpace(snapshotURL)
	if target == "" {
		return Result{Name: name, Detail: "missing url"}
	}
	return checkEndpoint(ctx, name, http.MethodHead, target, userAgent)
}

func checkEndpoint(ctx context.Context, name, method, target, userAgent string) Result {
	checkCtx, cancel := context.WithTimeout(ctx, endpointTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, method, target, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("request failed (%v)", err)}
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	client := &http.Client{Timeout: endpointTimeout}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unreachable (%v)", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Name: name, Detail: fmt.Sprintf("%s returned %d", target, resp.StatusCode)}
	}
	latency := time.Since(start).Round(time.Millisecond)
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (reachable, %s)", target, latency)}
}

// CheckStore verifies that the run store opens and answers a query.
func CheckStore(ctx context.Context, cfg *config.Config) Result {
	const name = "Run store"

	st, err := store.Open(cfg)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", cfg.StorePath(), err)}
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx, 0)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", st.Path(), err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d runs)", st.Path(), len(runs))}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
