package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbcheck/internal/cli"
	"fbcheck/internal/config"
	"fbcheck/internal/domain"
	"fbcheck/internal/exitcodes"
)

// graphServer answers every Graph call the battery makes. posts is the JSON
// body for /{page}/posts; failing lists path suffixes that return an error.
func graphServer(t *testing.T, posts string, failing ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, suffix := range failing {
			if strings.HasSuffix(r.URL.Path, suffix) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"error":{"message":"(#100) Invalid metric","type":"OAuthException","code":100}}`)
				return
			}
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/posts"):
			fmt.Fprint(w, posts)
		case strings.Contains(r.URL.Path, "/insights"):
			fmt.Fprint(w, `{"data":[{"name":"metric","period":"lifetime","values":[{"value":9}]}]}`)
		default:
			fmt.Fprint(w, `{"fan_count":42,"shares":{"count":2},"likes":{"summary":{"total_count":5}},"comments":{"summary":{"total_count":1}}}`)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvPageID, config.EnvAccessToken, config.EnvAPIVersion, config.EnvGraphURL, config.EnvTimeout} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// execute runs the root command with args and returns stdout and the exit code main would use
func execute(t *testing.T, args ...string) (string, int, error) {
	t.Helper()
	var out bytes.Buffer
	root := &cobra.Command{Use: "fbcheck", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	var flags cli.Flags
	cmds := NewCommands(cfg, &out)
	cmds.Register(root, &flags, cfg)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	code := cmds.Run.ExitCode()
	if err != nil {
		code = exitcodes.RuntimeErr
	}
	return stripansi.Strip(out.String()), code, err
}

func TestRun_AllChecksPass(t *testing.T) {
	clearEnv(t)
	server := graphServer(t, `{"data":[{"id":"42_1"}]}`)
	t.Setenv(config.EnvGraphURL, server.URL)
	t.Setenv(config.EnvPageID, "42")
	t.Setenv(config.EnvAccessToken, "token")

	out, code, err := execute(t, "run", "--table")
	require.NoError(t, err)

	assert.Equal(t, exitcodes.Success, code)
	assert.Contains(t, out, "✓ Page fan count (fans: 42)")
	assert.Contains(t, out, "✓ Post reactions (anger) (anger: 9)")
	assert.Contains(t, out, "✓ Filter negative comments (negative comments: 1)")
	assert.Contains(t, out, "15/15 (100%)")
	assert.Contains(t, out, "✓ pass")
}

func TestRun_NoPosts(t *testing.T) {
	clearEnv(t)
	server := graphServer(t, `{"data":[]}`)
	t.Setenv(config.EnvGraphURL, server.URL)
	t.Setenv(config.EnvPageID, "42")
	t.Setenv(config.EnvAccessToken, "token")

	out, code, err := execute(t, "run")
	require.NoError(t, err)

	assert.Equal(t, exitcodes.Success, code)
	assert.Contains(t, out, "No posts found")
	assert.Contains(t, out, "2/2 (100%)")
	assert.NotContains(t, out, "Post share count")
}

func TestRun_TotalWipeoutExitsWithFailure(t *testing.T) {
	clearEnv(t)
	server := graphServer(t, `{"data":[]}`, "/42", "/posts")
	t.Setenv(config.EnvGraphURL, server.URL)
	t.Setenv(config.EnvPageID, "42")
	t.Setenv(config.EnvAccessToken, "token")

	out, code, err := execute(t, "run")
	require.NoError(t, err)

	assert.Equal(t, exitcodes.TestFailure, code)
	assert.Contains(t, out, "✗ Page fan count")
	assert.Contains(t, out, "0/2 (0%)")
}

func TestRun_PartialFailureExitsSuccessfully(t *testing.T) {
	clearEnv(t)
	server := graphServer(t, `{"data":[{"id":"42_1"}]}`, "post_clicks")
	t.Setenv(config.EnvGraphURL, server.URL)
	t.Setenv(config.EnvPageID, "42")
	t.Setenv(config.EnvAccessToken, "token")

	out, code, err := execute(t, "run")
	require.NoError(t, err)

	assert.Equal(t, exitcodes.Success, code)
	assert.Contains(t, out, "✗ Post clicks")
	assert.Contains(t, out, "14/15 (93%)")
	assert.Contains(t, out, "1/15")
}

func TestRun_FilterSkipsOtherChecks(t *testing.T) {
	clearEnv(t)
	server := graphServer(t, `{"data":[{"id":"42_1"}]}`)
	t.Setenv(config.EnvGraphURL, server.URL)
	t.Setenv(config.EnvPageID, "42")
	t.Setenv(config.EnvAccessToken, "token")

	out, code, err := execute(t, "run", "--filter", "{Page posts,Post reactions*}")
	require.NoError(t, err)

	assert.Equal(t, exitcodes.Success, code)
	assert.Contains(t, out, "○ Page fan count (skipped)")
	assert.Contains(t, out, "7/15 (47%)")
	assert.Contains(t, out, "8/15")
}

func TestRun_MissingCredentials(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, code, err := execute(t, "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
	assert.Equal(t, exitcodes.RuntimeErr, code)
}

func TestRun_EnvFileAndTOML(t *testing.T) {
	clearEnv(t)
	server := graphServer(t, `{"data":[]}`)
	dir := t.TempDir()

	envPath := filepath.Join(dir, "graph.env")
	require.NoError(t, os.WriteFile(envPath, []byte("FB_PAGE_ID=42\nFB_ACCESS_TOKEN=token\n"), 0o644))
	tomlPath := filepath.Join(dir, "fbcheck.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(fmt.Sprintf("[graph]\nurl = %q\n", server.URL)), 0o644))

	out, code, err := execute(t, "run", "--env-file", envPath, "--config", tomlPath)
	require.NoError(t, err)
	assert.Equal(t, exitcodes.Success, code)
	assert.Contains(t, out, "Page: 42")
}

func TestList(t *testing.T) {
	out, code, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, exitcodes.Success, code)
	assert.Contains(t, out, " 1. Page fan count")
	assert.Contains(t, out, "15. Filter negative comments")
	assert.Contains(t, out, "15 check(s)")

	out, _, err = execute(t, "list", "--filter", "Post reactions*")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. Post reactions (like)")
	assert.Contains(t, out, " 6. Post reactions (anger)")
	assert.Contains(t, out, "6 check(s)")

	out, _, err = execute(t, "list", "--filter", "nothing-matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No checks match the filter")
}

type recordingViewer struct {
	calls   int
	results []domain.TestResult
}

func (v *recordingViewer) View(results []domain.TestResult) error {
	v.calls++
	v.results = results
	return nil
}

func TestRunCommand_OpensViewerOnFailures(t *testing.T) {
	server := graphServer(t, `{"data":[{"id":"42_1"}]}`, "post_reactions_wow_total")

	cfg := config.New()
	cfg.GraphURL = server.URL
	cfg.PageID = "42"
	cfg.AccessToken = "token"
	cfg.Flags.OpenFailures = true

	var out bytes.Buffer
	viewer := &recordingViewer{}
	cmds := NewCommands(cfg, &out)
	cmds.Run.viewer = viewer

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, cmds.Run.Execute(cmd, nil))

	assert.Equal(t, 1, viewer.calls)
	assert.Len(t, viewer.results, 15)
	assert.Equal(t, exitcodes.Success, cmds.Run.ExitCode())
}
