package model

// RepoCoordinates holds the parsed location of a file or directory
// inside a GitHub repository.
type RepoCoordinates struct {
	Owner      string
	Repository string
	Ref        string
	Dir        string
	FilePath   string
	IsFile     bool
}
