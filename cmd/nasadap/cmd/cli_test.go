package cmd

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

type fatalMocks struct {
	fatalCalls int
	exitCalls  []int
	msgs       []string
	lastMsg    string
}

func (m *fatalMocks) fatalln(v ...interface{}) {
	m.fatalCalls++
	m.lastMsg = fmt.Sprintln(v...)
	m.msgs = append(m.msgs, m.lastMsg)
}

func (m *fatalMocks) fatalf(format string, v ...interface{}) {
	m.fatalCalls++
	m.lastMsg = fmt.Sprintf(format, v...)
	m.msgs = append(m.msgs, m.lastMsg)
}

func (m *fatalMocks) exit(code int) {
	m.exitCalls = append(m.exitCalls, code)
}

// setupCLITest patches over the fatal handlers and captures command output
func setupCLITest(t *testing.T) (*fatalMocks, *bytes.Buffer) {
	t.Helper()
	mocks := &fatalMocks{}
	output := &bytes.Buffer{}

	savedFatalln, savedFatalf, savedExit, savedInfo := logFatalln, logFatalf, osExit, infoLogger
	logFatalln = mocks.fatalln
	logFatalf = mocks.fatalf
	osExit = mocks.exit
	infoLogger = log.New(output, "", 0)
	t.Cleanup(func() {
		logFatalln, logFatalf, osExit, infoLogger = savedFatalln, savedFatalf, savedExit, savedInfo
	})
	return mocks, output
}

// fakeArchive serves catalog documents and subset granules for any product day
type fakeArchive struct {
	mu       sync.Mutex
	requests []string
	payload  []byte
}

func (f *fakeArchive) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.Path)
		f.mu.Unlock()
		if filepath.Base(r.URL.Path) == "catalog.xml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(f.payload)
	}
}

func (f *fakeArchive) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func TestCLIProductList(t *testing.T) {
	mocks, output := setupCLITest(t)

	rootCmd.SetArgs([]string{"product", "list", "--mission", "gpm"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls)

	for _, product := range []string{"3IMERGHHE", "3IMERGHHL", "3IMERGHH"} {
		assert.Contains(t, output.String(), product)
	}
	assert.Contains(t, output.String(), "precipitationCal")
}

func TestCLIProductGet(t *testing.T) {
	mocks, output := setupCLITest(t)

	rootCmd.SetArgs([]string{"product", "get", "--mission", "gpm", "--product", "3IMERGHHE"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls)

	var product model.ProductDescriptor
	require.NoError(t, yaml.Unmarshal(output.Bytes(), &product))
	assert.Equal(t, "3IMERGHHE", product.Name)
	assert.Equal(t, "3B-HHR-E.MS.MRG.3IMERG", product.FilePrefix)
}

func TestCLIProductGetUnknown(t *testing.T) {
	mocks, _ := setupCLITest(t)

	rootCmd.SetArgs([]string{"product", "get", "--mission", "gpm", "--product", "nope"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 1, mocks.fatalCalls)
	assert.Contains(t, mocks.lastMsg, "product must be one of")
}

func TestCLIFetch(t *testing.T) {
	mocks, output := setupCLITest(t)

	archive := &fakeArchive{payload: []byte("netcdf bytes")}
	ts := httptest.NewServer(archive.handler())
	defer ts.Close()

	cacheDir := t.TempDir()
	fetchArgs := []string{"fetch",
		"--mission", "gpm",
		"--product", "3IMERGHH",
		"--from", "2019-06-01",
		"--to", "2019-06-01",
		"--endpoint", ts.URL,
		"--no-catalog",
		"--cache-dir", cacheDir,
		"--min-lon", "-72", "--max-lon", "-35",
		"--min-lat", "-33", "--max-lat", "3",
		"--datasets", "precipitationCal",
	}
	rootCmd.SetArgs(fetchArgs)
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls, mocks.lastMsg)
	require.Empty(t, mocks.exitCalls)

	assert.Equal(t, model.SlotsPerDay, archive.count())
	assert.Contains(t, output.String(), "planned: 48, downloaded: 48")

	cached, err := filepath.Glob(filepath.Join(cacheDir,
		"GPM_L3", "GPM_3IMERGHH.06", "2019", "152", "*.nc4"))
	require.NoError(t, err)
	assert.Len(t, cached, model.SlotsPerDay)

	// a second run over the same range transfers nothing
	output.Reset()
	rootCmd.SetArgs(fetchArgs)
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls, mocks.lastMsg)

	assert.Equal(t, model.SlotsPerDay, archive.count())
	assert.Contains(t, output.String(), "planned: 48, downloaded: 0")
	assert.Contains(t, output.String(), "cached: 48")
}

func TestCLICacheCommands(t *testing.T) {
	mocks, output := setupCLITest(t)

	archive := &fakeArchive{payload: []byte("netcdf bytes")}
	ts := httptest.NewServer(archive.handler())
	defer ts.Close()

	cacheDir := t.TempDir()
	rootCmd.SetArgs([]string{"fetch",
		"--mission", "gpm",
		"--product", "3IMERGHH",
		"--from", "2019-06-01",
		"--to", "2019-06-01",
		"--endpoint", ts.URL,
		"--no-catalog",
		"--cache-dir", cacheDir,
	})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls, mocks.lastMsg)

	output.Reset()
	rootCmd.SetArgs([]string{"cache", "list", "--cache-dir", cacheDir})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls, mocks.lastMsg)
	assert.Contains(t, output.String(), "3B-HHR.MS.MRG.3IMERG.20190601-S000000-E002959.0000.V06B.nc4")
	assert.Contains(t, output.String(), "48 granules")

	output.Reset()
	rootCmd.SetArgs([]string{"cache", "info", "--cache-dir", cacheDir})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls, mocks.lastMsg)
	assert.Contains(t, output.String(), "48 downloads recorded")
	assert.Contains(t, output.String(), ts.URL)
}

func TestCLIFetchBadCredential(t *testing.T) {
	mocks, _ := setupCLITest(t)

	// every request is denied, including the session check
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts.Close()

	credFile := filepath.Join(t.TempDir(), "credential.yaml")
	require.NoError(t, os.WriteFile(credFile,
		[]byte("username: jane\npassword: wrong\n"), 0600))

	rootCmd.SetArgs([]string{"fetch",
		"--mission", "gpm",
		"--product", "3IMERGHH",
		"--from", "2019-06-01",
		"--to", "2019-06-01",
		"--endpoint", ts.URL,
		"--no-catalog",
		"--no-ledger",
		"--cache-dir", t.TempDir(),
		"--credential", credFile,
	})
	require.NoError(t, rootCmd.Execute())

	// the session check fails before any granule is planned
	require.NotZero(t, mocks.fatalCalls)
	assert.Contains(t, mocks.msgs[0], "check Earthdata session")
}

func TestCLIConfigGenerate(t *testing.T) {
	mocks, _ := setupCLITest(t)

	targetDir := t.TempDir()
	rootCmd.SetArgs([]string{"config", "generate",
		"--target-dir", targetDir,
		"--credential", "/etc/nasadap/credential.yaml",
		"--cache-dir", "/var/cache/nasadap",
		"--concurrency-factor", "10",
	})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, 0, mocks.fatalCalls, mocks.lastMsg)

	raw, err := os.ReadFile(filepath.Join(targetDir, "nasadap.yaml"))
	require.NoError(t, err)
	var generated CLIConfig
	require.NoError(t, yaml.Unmarshal(raw, &generated))
	assert.Equal(t, "/etc/nasadap/credential.yaml", generated.Credential)
	assert.Equal(t, "/var/cache/nasadap", generated.CacheDir)
	assert.Equal(t, 10, generated.Concurrency)
}
