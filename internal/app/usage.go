package app

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ecli-go/ecli/internal/utils"
	"github.com/ecli-go/ecli/report"
	"github.com/google/go-github/v45/github"
)

// Version is set at compile time
var Version = ""

const (
	Owner = "ecli-go"
	Repo  = "ecli"
)

// PrintUsage prints the help screen to stdout
func PrintUsage(help *report.Help) {
	if help == nil {
		return
	}
	fmt.Print(help.String())
}

// PrintVersion displays the version
func PrintVersion() {
	fmt.Printf("hello version %s\n", Version)
}

// CheckForUpdates checks for newer releases and returns the update message
func CheckForUpdates() (string, error) {
	return checkForUpdates(context.Background(), github.NewClient(nil))
}

func checkForUpdates(ctx context.Context, c *github.Client) (string, error) {
	// unauthenticated requests from the same IP are limited to 60 per hour
	latestRelease, _, err := c.Repositories.GetLatestRelease(ctx, Owner, Repo)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}

	return updateMessage(Version, latestRelease.GetTagName())
}

var releaseTag = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)$`)

// updateMessage compares the running version with the latest release tag.
func updateMessage(current, latestTagName string) (string, error) {
	latestVersion := releaseTag.FindStringSubmatch(latestTagName)

	if len(latestVersion) == 0 {
		return "", fmt.Errorf("version name does not match expected format: %s", latestTagName)
	}

	switch utils.CompareVersions(current, latestVersion[1]) {
	case -1:
		return fmt.Sprintf("Found newer version %s\nPlease update from the URL below:\nhttps://github.com/%s/%s/releases/tag/%s",
			latestVersion[1], Owner, Repo, latestTagName), nil
	case 1:
		return fmt.Sprintf("Current version %s is newer than the latest release %s",
			current, latestVersion[1]), nil
	default:
		return fmt.Sprintf("hello is on the latest version: %s", current), nil
	}
}
