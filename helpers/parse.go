package helpers

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"repo-fetch/model"
)

var (
	// /owner/repo/tree/ref/path - directory URL
	treeRegex = regexp.MustCompile(`^/([^/]+)/([^/]+)/tree/([^/]+)/(.*)`)
	// /owner/repo/blob/ref/path - single file URL
	blobRegex = regexp.MustCompile(`^/([^/]+)/([^/]+)/blob/([^/]+)/(.+)`)
	// /owner/repo/ref/path - raw.githubusercontent.com URL
	rawRegex = regexp.MustCompile(`^/([^/]+)/([^/]+)/([^/]+)/(.+)`)
)

// ParseURL turns a github.com tree/blob URL or a raw.githubusercontent.com
// URL into repository coordinates.
func ParseURL(rawURL string) (model.RepoCoordinates, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return model.RepoCoordinates{}, fmt.Errorf("invalid URL: %s", rawURL)
	}

	switch host := strings.ToLower(parsed.Host); host {
	case "github.com", "www.github.com":
		return parseGitHubURL(parsed.Path, rawURL)
	case "raw.githubusercontent.com":
		return parseRawURL(parsed.Path, rawURL)
	default:
		return model.RepoCoordinates{}, fmt.Errorf(
			"unsupported host: %s\nSupported: github.com, raw.githubusercontent.com", host)
	}
}

func parseGitHubURL(urlPath, originalURL string) (model.RepoCoordinates, error) {
	if match := blobRegex.FindStringSubmatch(urlPath); len(match) == 5 {
		filePath := unescape(match[4])
		return model.RepoCoordinates{
			Owner:      match[1],
			Repository: match[2],
			Ref:        match[3],
			Dir:        path.Dir(filePath),
			FilePath:   filePath,
			IsFile:     true,
		}, nil
	}

	if match := treeRegex.FindStringSubmatch(urlPath); len(match) == 5 {
		return model.RepoCoordinates{
			Owner:      match[1],
			Repository: match[2],
			Ref:        match[3],
			Dir:        unescape(match[4]),
		}, nil
	}

	return model.RepoCoordinates{}, fmt.Errorf(
		"invalid GitHub URL format: %s\nExpected formats:\n"+
			"  Directory: https://github.com/owner/repo/tree/branch/path/to/dir\n"+
			"  File:      https://github.com/owner/repo/blob/branch/path/to/file.ext",
		originalURL,
	)
}

func parseRawURL(urlPath, originalURL string) (model.RepoCoordinates, error) {
	match := rawRegex.FindStringSubmatch(urlPath)
	if len(match) != 5 {
		return model.RepoCoordinates{}, fmt.Errorf(
			"invalid raw URL format: %s\nExpected: https://raw.githubusercontent.com/owner/repo/ref/path/to/file",
			originalURL,
		)
	}

	filePath := unescape(match[4])
	return model.RepoCoordinates{
		Owner:      match[1],
		Repository: match[2],
		Ref:        match[3],
		Dir:        path.Dir(filePath),
		FilePath:   filePath,
		IsFile:     true,
	}, nil
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
