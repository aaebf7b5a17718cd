package gh

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"repo-fetch/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListing(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantFile    string
		wantEntries int
		wantErr     error
	}{
		{
			name:     "single file object",
			body:     `{"type":"file","path":"docs/readme.md","download_url":"https://raw.example/readme.md"}`,
			wantFile: "docs/readme.md",
		},
		{
			name:        "directory listing",
			body:        `[{"type":"file","path":"a.txt"},{"type":"dir","path":"sub"}]`,
			wantEntries: 2,
		},
		{
			name:        "empty directory",
			body:        `[]`,
			wantEntries: 0,
		},
		{
			name:    "object that is not a file",
			body:    `{"type":"symlink","path":"link"}`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "scalar response",
			body:    `"nope"`,
			wantErr: ErrUnexpectedShape,
		},
		{
			name:    "empty response",
			body:    ``,
			wantErr: ErrUnexpectedShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := parseListing([]byte(tt.body))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.wantFile != "" {
				require.NotNil(t, listing.File)
				assert.Equal(t, tt.wantFile, listing.File.Path)
				assert.Nil(t, listing.Entries)
			} else {
				assert.Nil(t, listing.File)
				assert.Len(t, listing.Entries, tt.wantEntries)
			}
		})
	}
}

func TestContentsRequest(t *testing.T) {
	var gotPath, gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient("tok123")
	client.APIBaseURL = srv.URL

	coords := model.RepoCoordinates{Owner: "owner", Repository: "repo", Ref: "main"}
	_, err := client.Contents(context.Background(), coords, "some/dir")
	require.NoError(t, err)

	assert.Equal(t, "/repos/owner/repo/contents/some/dir?ref=main", gotPath)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestContentsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient("tok")
	client.APIBaseURL = srv.URL

	_, err := client.Contents(context.Background(), model.RepoCoordinates{Owner: "o", Repository: "r", Ref: "main"}, "dir")
	assert.ErrorContains(t, err, "404")
}
