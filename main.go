package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path"
	"path/filepath"

	"repo-fetch/config"
	"repo-fetch/gh"
	"repo-fetch/helpers"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	repoURL := flag.String("url", "", "GitHub file or directory URL")
	output := flag.String("output", ".", "Output directory")
	token := flag.String("token", "", "GitHub personal access token (overrides env)")
	flag.Parse()

	if *repoURL == "" {
		flag.Usage()
		return flag.ErrHelp
	}

	coords, err := helpers.ParseURL(*repoURL)
	if err != nil {
		return fmt.Errorf("failed to parse repository URL: %w", err)
	}

	resolved := *token
	if resolved == "" {
		resolved, err = config.TokenFromEnv()
		if err != nil && !coords.IsFile {
			return err
		}
	}

	ctx := context.Background()
	client := gh.NewClient(resolved)

	status := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s Repository: %s/%s\n", status("[-]"), coords.Owner, coords.Repository)

	if coords.IsFile {
		dest := filepath.Join(*output, filepath.FromSlash(coords.FilePath))
		fmt.Printf("%s Fetching file: %s\n", status("[-]"), coords.FilePath)
		if err := client.DownloadFile(ctx, coords, coords.FilePath, dest); err != nil {
			return err
		}
		fmt.Printf("%s Saved %s\n", status("[-]"), dest)
		return nil
	}

	fmt.Printf("%s Directory: %s\n", status("[-]"), coords.Dir)

	bar := pb.Full.Start64(0)
	defer bar.Finish()

	var files int
	client.OnFile = func(p string, size int64) {
		files++
		bar.SetTotal(bar.Total() + size)
		bar.Add64(size)
		bar.Set("prefix", path.Base(p)+" ")
	}

	if err := client.DownloadContents(ctx, coords, coords.Dir, *output); err != nil {
		return err
	}

	bar.Finish()
	fmt.Printf("%s Downloaded %d files (%s)\n", status("[-]"), files, helpers.FormatBytes(bar.Total()))
	return nil
}
