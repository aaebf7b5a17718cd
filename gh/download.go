package gh

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"repo-fetch/helpers"
	"repo-fetch/model"
)

// DownloadContents downloads every file under dir into outputDir,
// recreating the repository-relative directory structure. Entries are
// processed sequentially, depth-first; a failure aborts the remaining
// work without rolling back files already written.
func (c *Client) DownloadContents(ctx context.Context, coords model.RepoCoordinates, dir string, outputDir string) error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return c.downloadContents(ctx, coords, dir, outputDir)
}

func (c *Client) downloadContents(ctx context.Context, coords model.RepoCoordinates, dir string, outputDir string) error {
	listing, err := c.Contents(ctx, coords, dir)
	if err != nil {
		return err
	}

	if listing.File != nil {
		return c.downloadEntry(ctx, *listing.File, outputDir)
	}

	for _, entry := range listing.Entries {
		switch entry.Type {
		case "file":
			if err := c.downloadEntry(ctx, entry, outputDir); err != nil {
				return err
			}
		case "dir":
			if err := c.downloadContents(ctx, coords, entry.Path, outputDir); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: entry %s has type %q", ErrUnexpectedShape, entry.Path, entry.Type)
		}
	}

	return nil
}

func (c *Client) downloadEntry(ctx context.Context, entry Entry, outputDir string) error {
	content, err := c.get(ctx, entry.DownloadURL, acceptRaw)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", entry.Path, err)
	}

	if err := helpers.SaveFile(outputDir, entry.Path, content); err != nil {
		return err
	}

	if c.OnFile != nil {
		c.OnFile(entry.Path, int64(len(content)))
	}

	return nil
}

// DownloadFile fetches exactly one known file, building the raw URL
// directly from the repository coordinates, and writes the bytes to
// destPath. No directory listing, no recursion.
func (c *Client) DownloadFile(ctx context.Context, coords model.RepoCoordinates, path string, destPath string) error {
	rawURL := fmt.Sprintf(
		"%s/%s/%s/%s/%s",
		c.RawBaseURL,
		coords.Owner,
		coords.Repository,
		coords.Ref,
		path,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("Accept", acceptRaw)
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP error for %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %s for %s", resp.Status, path)
	}

	if isLfsResponse(resp) {
		lfsURL := fmt.Sprintf(
			"%s/%s/%s/%s/%s",
			c.MediaBaseURL,
			coords.Owner,
			coords.Repository,
			coords.Ref,
			path,
		)
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, lfsURL, nil)
		if err != nil {
			return fmt.Errorf("creating LFS request for %s: %w", path, err)
		}
		resp, err = c.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("HTTP error for LFS %s: %w", path, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP %s for LFS %s", resp.Status, path)
		}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body for %s: %w", path, err)
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output folder for %s: %w", destPath, err)
		}
	}

	if err := os.WriteFile(destPath, content, 0o644); err != nil {
		return fmt.Errorf("saving file %s: %w", destPath, err)
	}

	return nil
}

// isLfsResponse reports whether resp looks like a Git LFS pointer
// rather than file content. It peeks at the body and resets it for the
// caller. Pointer files are 128-140 bytes and start with the LFS spec
// version line.
func isLfsResponse(resp *http.Response) bool {
	contentLength, err := strconv.Atoi(resp.Header.Get("Content-Length"))
	if err != nil || contentLength < 128 || contentLength > 140 {
		return false
	}

	head := make([]byte, 64)
	n, err := io.ReadFull(resp.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false
	}

	rest, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}

	isLfs := strings.HasPrefix(string(head[:n]), "version https://git-lfs.github.com/spec/v1")

	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(append(head[:n], rest...)))

	return isLfs
}
