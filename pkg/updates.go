package qrgen

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/CtrlAltDefeat55/Advanced-QR-Code-Generator/pkg/version"
	"github.com/go-resty/resty/v2"
	"golang.org/x/mod/semver"
)

const releaseAPIURL = "https://api.github.com/repos/CtrlAltDefeat55/Advanced-QR-Code-Generator/releases/latest"

type UpgradableRelease struct {
	Version    string `json:"version"`
	ReleaseURL string `json:"releaseUrl"`
	Summary    string `json:"summary"`
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
	Name    string `json:"name"`
}

// CheckForUpdate asks GitHub for the latest release and reports it if
// it is newer than the running build. Best-effort: network or parse
// trouble yields (nil, false).
func CheckForUpdate() (*UpgradableRelease, bool) {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Accept", "application/vnd.github+json")

	var latest githubRelease
	resp, err := client.R().SetResult(&latest).Get(releaseAPIURL)
	if err != nil {
		log.Printf("Failed to fetch latest release: %v", err)
		return nil, false
	}
	if resp.IsError() {
		log.Printf("Failed to fetch latest release: %s", resp.Status())
		return nil, false
	}

	tag := normalizeTag(latest.TagName)
	if !semver.IsValid(tag) {
		return nil, false
	}

	summary := latest.Name
	if summary == "" {
		summary = fmt.Sprintf("Release %s", latest.TagName)
	}

	release := &UpgradableRelease{
		Version:    latest.TagName,
		ReleaseURL: latest.HTMLURL,
		Summary:    summary,
	}

	current := normalizeTag(version.GetVersionInfo().Release)
	if !semver.IsValid(current) {
		// Dev builds have no comparable version; surface the latest.
		return release, true
	}

	return release, semver.Compare(tag, current) > 0
}

func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
