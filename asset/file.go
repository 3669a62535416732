package asset

import (
	"io"

	"github.com/db47h/ofs"
)

func loadFile(fs ofs.FileSystem, name string) ([]byte, error) {
	r, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
