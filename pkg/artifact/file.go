package artifact

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/chartr/pkg/errors"
	chartio "github.com/matzehuels/chartr/pkg/io"
)

// Load reads and decodes the artifact at path.
func Load(path string) (chartio.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return chartio.State{}, errors.Wrap(errors.ErrCodeArtifactRead, err, "read %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Save encodes st and writes it to path, replacing any existing file.
func Save(path string, st chartio.State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile atomically replaces the file at path with data.
func WriteFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeArtifactWrite, err, "write %s", path)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeArtifactWrite, err, "write %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeArtifactWrite, err, "write %s", path)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeArtifactWrite, err, "write %s", path)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeArtifactWrite, err, "write %s", path)
	}
	return nil
}
