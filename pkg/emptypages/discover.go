package emptypages

import (
	"fmt"
	"os"
	"path/filepath"
)

// Collection is one discovered document set directory
type Collection struct {
	Name string // Directory name, used as the collection name in reports
	Path string // Absolute or base-relative path to the directory
}

// FindCollections discovers all collection directories under basePath.
//
// A child directory qualifies if and only if it directly contains a
// page subdirectory holding at least one page description file. The
// result is ordered by directory name.
func FindCollections(basePath string, config ScanConfig) ([]Collection, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("base path does not exist: %s", basePath)
		}
		return nil, fmt.Errorf("cannot access base path %s: %w", basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base path is not a directory: %s", basePath)
	}

	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read base path %s: %w", basePath, err)
	}

	// os.ReadDir returns entries sorted by filename, which fixes the
	// collection processing order.
	var collections []Collection
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(basePath, entry.Name())
		if len(listPageFiles(dir, config)) > 0 {
			collections = append(collections, Collection{Name: entry.Name(), Path: dir})
		}
	}
	return collections, nil
}

// listPageFiles returns the page description files of a collection
// directory, sorted by filename. filepath.Glob sorts its matches.
func listPageFiles(collectionDir string, config ScanConfig) []string {
	pageDir := filepath.Join(collectionDir, config.PageDirName)
	info, err := os.Stat(pageDir)
	if err != nil || !info.IsDir() {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(pageDir, "*"+config.PageExt))
	if err != nil {
		return nil
	}
	return matches
}
