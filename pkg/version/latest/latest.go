package latest

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hellodev/cli/pkg/analytics"
	"github.com/hellodev/cli/pkg/conf"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/hellodev/cli/pkg/version"
	"github.com/pkg/errors"
)

const releaseURL = "https://api.github.com/repos/hellodev/cli/releases?per_page=10"

type release struct {
	Name       string `json:"name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

// CheckLatest queries the GitHub API for newer releases and warns on l when
// the CLI is outdated. Checks run at most once a day and never fail a
// command. It returns false when an upgrade is available.
func CheckLatest(ctx context.Context, l logger.Logger, userConfig *conf.UserConfig) bool {
	if version.Get() == "<unknown>" || version.Prerelease() {
		// Pass silently if we don't know the current CLI version or are on a pre-release.
		return true
	}

	if userConfig != nil && userConfig.LatestVersion.Version != "" &&
		userConfig.LatestVersion.Updated.After(time.Now().AddDate(0, 0, -1)) {
		// We only want to log about newer CLI versions once a day.
		return true
	}

	latest, err := Lookup(ctx)
	if err != nil {
		analytics.ReportError(err)
		logger.Debug("An error occurred checking for the latest version: %s", err)
		return true
	} else if latest == "" {
		// Pass silently if we can't identify the latest version.
		return true
	}

	if userConfig != nil {
		userConfig.LatestVersion = conf.VersionUpdate{
			Version: latest,
			Updated: time.Now().UTC(),
		}
		if err := conf.WriteDefaultUserConfig(*userConfig); err != nil {
			logger.Debug("An error occurred saving the latest version: %s", err)
		}
	}

	return !WarnIfOutdated(l, version.Get(), latest)
}

// WarnIfOutdated prints an upgrade hint on l when latest is newer than
// current and reports whether it did.
func WarnIfOutdated(l logger.Logger, current, latest string) bool {
	if !outdated(current, latest) {
		return false
	}
	l.Warning("A newer CLI version is available (%s -> %s). To upgrade, run",
		strings.TrimPrefix(current, "v"), strings.TrimPrefix(latest, "v"))
	l.Log(logger.Gray("  " + upgradeCommand()))
	l.Log("")
	return true
}

// outdated compares two versions, tolerating a leading "v". When either one
// does not parse as semver, any difference counts as outdated.
func outdated(current, latest string) bool {
	cur, errCur := semver.ParseTolerant(current)
	lat, errLat := semver.ParseTolerant(latest)
	if errCur != nil || errLat != nil {
		return strings.TrimPrefix(latest, "v") != strings.TrimPrefix(current, "v")
	}
	return lat.GT(cur)
}

func upgradeCommand() string {
	if runtime.GOOS == "windows" {
		return "iwr https://github.com/hellodev/cli/releases/latest/download/install.ps1 -useb | iex"
	}
	return "curl -L https://github.com/hellodev/cli/releases/latest/download/install.sh | sh"
}

// Lookup returns the name of the newest published release, skipping drafts
// and pre-releases. An empty name with a nil error means none was found.
func Lookup(ctx context.Context) (string, error) {
	curTime := time.Now()
	defer func() {
		logger.Debug("Time to get latest version: %s", time.Since(curTime))
	}()

	rhc := retryablehttp.NewClient()
	rhc.RetryMax = 2
	rhc.RetryWaitMin = 100 * time.Millisecond
	rhc.RetryWaitMax = time.Second
	rhc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	// Disable logging.
	rhc.Logger = nil
	rhc.HTTPClient.Timeout = 5 * time.Second

	// GitHub heavily rate limits this endpoint.
	// https://docs.github.com/rest/overview/resources-in-the-rest-api#rate-limiting
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "initializing HTTP request")
	}
	req.Header.Add("Accept", "application/vnd.github.v3+json")

	resp, err := rhc.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "performing HTTP request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// e.g. {"message":"API rate limit ..."}
		var ghError struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&ghError); err != nil {
			logger.Debug("Unable to decode GitHub %s API response: %s", resp.Status, err)
		}
		return "", errors.Errorf("HTTP %s: %s", resp.Status, ghError.Message)
	}

	var releases []release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return "", errors.Wrap(err, "decoding releases")
	}
	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		return r.Name, nil
	}
	return "", nil
}
