// Package archive bundles saved pages into a zip file
package archive

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/rotisserie/eris"
)

// CreateZip writes zipPath containing the files named by names, read from dir.
// Each entry is stored under its base name, in the order given.
func CreateZip(zipPath, dir string, names []string) (err error) {
	out, err := os.Create(zipPath)
	if err != nil {
		return eris.Wrapf(err, "failed to create %s", zipPath)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = eris.Wrapf(cerr, "failed to close %s", zipPath)
		}
	}()

	zw := zip.NewWriter(out)
	for _, name := range names {
		if err := addFile(zw, filepath.Join(dir, name), name); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return eris.Wrap(err, "failed to finish zip")
	}
	return nil
}

func addFile(zw *zip.Writer, path, name string) error {
	in, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "failed to open %s", path)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return eris.Wrapf(err, "failed to stat %s", path)
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return eris.Wrapf(err, "failed to add %s", name)
	}
	if _, err := io.Copy(w, in); err != nil {
		return eris.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
