package vscode

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"devenv-enabler/internal/archive"
	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/platform"
)

// Font describes a coding font published as a GitHub release archive.
type Font struct {
	Name string // Display name, e.g. "JetBrainsMono"
	Repo string // GitHub repo, e.g. "JetBrains/JetBrainsMono"
	Tag  string // Release tag, e.g. "v2.304"
}

// DefaultFont is the font installed by --install-font.
var DefaultFont = Font{
	Name: "JetBrainsMono",
	Repo: "JetBrains/JetBrainsMono",
	Tag:  "v2.304",
}

// githubRelease mirrors the GitHub release JSON we care about.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// archiveSuffixes are the release asset formats the extractor handles,
// in preference order.
var archiveSuffixes = []string{".zip", ".tar.xz", ".tar.gz", ".tgz", ".tar.bz2", ".7z"}

// InstallFont downloads the font's release archive, extracts it, and
// copies every .ttf/.otf file into the user font directory. Font files
// already present are left untouched. In dry-run mode only the intended
// download is reported.
func InstallFont(font Font, dryRun bool) error {
	fontsDir, err := platform.FontsDir()
	if err != nil {
		return fmt.Errorf("cannot determine font directory: %w", err)
	}

	assetURL, assetName, err := findFontAsset(font)
	if err != nil {
		return err
	}

	if dryRun {
		logger.Info("[INFO] Would download font %s from %s into %s\n", font.Name, assetURL, fontsDir)
		return nil
	}

	workDir, err := os.MkdirTemp("", "devenv-font-")
	if err != nil {
		return fmt.Errorf("cannot create temp directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	archivePath := filepath.Join(workDir, path.Base(assetName))
	logger.Info("[INFO] Downloading font asset %s\n", assetName)
	if err := downloadFile(assetURL, archivePath); err != nil {
		return err
	}

	extracted, err := archive.Extract(archivePath, workDir)
	if err != nil {
		return fmt.Errorf("failed to extract font archive: %w", err)
	}
	logger.Debug("[DEBUG] Extracted font archive to %s\n", extracted)

	installed, err := copyFontFiles(extracted, fontsDir)
	if err != nil {
		return err
	}
	if installed == 0 {
		logger.Warn("[WARN] No font files found in %s release archive\n", font.Name)
		return nil
	}
	logger.Info("[INFO] Installed %d font file(s) for %s into %s\n", installed, font.Name, fontsDir)
	return nil
}

// findFontAsset fetches the release metadata and picks the first asset in
// an extractable archive format.
func findFontAsset(font Font) (url, name string, err error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", font.Repo, font.Tag)
	logger.Debug("[DEBUG] Fetching GitHub release from %s\n", apiURL)

	resp, err := http.Get(apiURL)
	if err != nil {
		return "", "", fmt.Errorf("HTTP GET error fetching release for %s@%s: %w", font.Name, font.Tag, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("GitHub release fetch failed for %s@%s: HTTP status %d", font.Name, font.Tag, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", "", fmt.Errorf("failed to decode GitHub release JSON for %s@%s: %w", font.Name, font.Tag, err)
	}
	logger.Debug("[DEBUG] Release %s has %d assets\n", release.TagName, len(release.Assets))

	for _, suffix := range archiveSuffixes {
		for _, asset := range release.Assets {
			if strings.HasSuffix(strings.ToLower(asset.Name), suffix) {
				return asset.BrowserDownloadURL, asset.Name, nil
			}
		}
	}
	return "", "", fmt.Errorf("no extractable asset found in release %s of %s", release.TagName, font.Repo)
}

// downloadFile streams the content at url into destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}

// copyFontFiles walks the extracted tree and copies every .ttf/.otf file
// into fontsDir, skipping files that already exist there. Returns the
// number of files copied.
func copyFontFiles(root, fontsDir string) (int, error) {
	if err := os.MkdirAll(fontsDir, 0755); err != nil {
		return 0, fmt.Errorf("cannot create font directory %s: %w", fontsDir, err)
	}

	installed := 0
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		dest := filepath.Join(fontsDir, filepath.Base(p))
		if _, err := os.Stat(dest); err == nil {
			logger.Debug("[DEBUG] Font file already present: %s\n", dest)
			return nil
		}
		if err := copyFile(p, dest); err != nil {
			return err
		}
		installed++
		return nil
	})
	return installed, err
}

// copyFile copies src to dst preserving nothing but the bytes; fonts do
// not need executable bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy failed: %w", err)
	}
	return out.Close()
}
