// Package image writes assembled words as a "v3.0 hex words addressed"
// memory image.
package image

import (
	"bufio"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/ezrec/hexasm/asm"
)

// Header is the first line of every image.
const Header = "v3.0 hex words addressed"

// Write writes the header, then all words on a single line starting at
// address 0. There is no trailing newline.
func Write(w io.Writer, words iter.Seq[asm.Word]) (err error) {
	bw := bufio.NewWriter(w)

	bw.WriteString(Header)
	bw.WriteString("\n0: ")
	sep := ""
	for word := range words {
		bw.WriteString(sep)
		bw.WriteString(word.String())
		sep = " "
	}

	return bw.Flush()
}

// WriteFile writes the image to path. The image is written to a
// temporary file in the same directory and renamed into place, so path
// is never left holding a partial image.
func WriteFile(path string, words iter.Seq[asm.Word]) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	err = tmp.Chmod(0o644)
	if err != nil {
		return
	}

	err = Write(tmp, words)
	if err != nil {
		return
	}

	err = tmp.Close()
	if err != nil {
		return
	}

	err = os.Rename(tmp.Name(), path)

	return
}
