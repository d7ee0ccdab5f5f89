package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// defaultDirPermissions is used for directories created during extraction.
const defaultDirPermissions = 0o755

// errUnsafePath is returned when an archive entry would escape the target directory.
var errUnsafePath = errors.New("archive entry escapes target directory")

// Compress writes every regular file under srcDir into a new deflate zip at
// destPath. Entry names are slash-separated paths relative to srcDir;
// directories get no entries of their own. The visit callback, when non-nil,
// is invoked with each entry name as it is added.
func Compress(srcDir, destPath string, visit func(entryName string)) error {
	zipFile, err := os.Create(filepath.Clean(destPath))
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}

		entryName := filepath.ToSlash(relPath)

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("header for %s: %w", path, err)
		}

		header.Name = entryName
		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("create entry %s: %w", entryName, err)
		}

		source, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer source.Close()

		if _, err = io.Copy(writer, source); err != nil {
			return fmt.Errorf("write entry %s: %w", entryName, err)
		}

		if visit != nil {
			visit(entryName)
		}

		return nil
	})
	if err != nil {
		// Do not leave a truncated archive behind.
		zipWriter.Close()
		zipFile.Close()
		os.Remove(destPath)

		return fmt.Errorf("compress %s: %w", srcDir, err)
	}

	return nil
}

// Extract unpacks the zip at srcPath into destDir, overlaying existing files.
// Entries that would resolve outside destDir are rejected.
func Extract(srcPath, destDir string) error {
	reader, err := zip.OpenReader(filepath.Clean(srcPath))
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		destPath := filepath.Join(destDir, filepath.FromSlash(file.Name))

		relPath, err := filepath.Rel(destDir, destPath)
		if err != nil || strings.HasPrefix(relPath, "..") {
			return fmt.Errorf("%s: %w", file.Name, errUnsafePath)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, file.Mode()); err != nil {
				return fmt.Errorf("create directory %s: %w", destPath, err)
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), defaultDirPermissions); err != nil {
			return fmt.Errorf("create parent of %s: %w", destPath, err)
		}

		if err := extractFile(file, destPath); err != nil {
			return fmt.Errorf("extract %s: %w", file.Name, err)
		}
	}

	return nil
}

// EntryNames lists the file entry names of the zip at path, in archive order.
func EntryNames(path string) ([]string, error) {
	reader, err := zip.OpenReader(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	names := make([]string, 0, len(reader.File))

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}

		names = append(names, file.Name)
	}

	return names, nil
}

// extractFile writes a single archive entry to destPath with the entry's mode.
func extractFile(file *zip.File, destPath string) error {
	source, err := file.Open()
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return err
	}
	defer dest.Close()

	_, err = io.Copy(dest, source)

	return err
}
