package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Unzip extracts every file entry of the archive at path into destDir. The
// provider's archives are flat, so entry names are flattened to their base
// name; that also keeps hostile entry paths inside destDir. Two entries
// sharing a base name mean the archive is not flat after all, and extraction
// fails rather than overwriting one with the other.
func Unzip(path, destDir string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	seen := make(map[string]string)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := filepath.Base(f.Name)
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("archive entries %s and %s collide on %s", prev, f.Name, base)
		}
		seen[base] = f.Name
		if err := extractFile(f, filepath.Join(destDir, base)); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		os.Remove(dest)
		return err
	}
	return w.Close()
}
