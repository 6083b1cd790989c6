package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"componentgate/internal/types"
)

// IndexFileName lists every file a process run generated.
const IndexFileName = "componentgate.index"

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

// WriteFile writes data below the output directory and returns the path.
func (a OutputFileAdapter) WriteFile(filename string, data []byte) (string, error) {
	path, err := a.ensurePath(filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", filename)).
			WithCause(err)
	}
	return path, nil
}

// WriteIndex records the generated artifacts as "declaration,type,file"
// lines sorted by declaration.
func (a OutputFileAdapter) WriteIndex(artifacts []types.GeneratedArtifact) (string, error) {
	ordered := append([]types.GeneratedArtifact(nil), artifacts...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Declaration != ordered[j].Declaration {
			return ordered[i].Declaration < ordered[j].Declaration
		}
		return ordered[i].Path < ordered[j].Path
	})
	var lines []string
	for _, artifact := range ordered {
		lines = append(lines, fmt.Sprintf("%s,%s,%s", artifact.Declaration, artifact.TypeName, filepath.Base(artifact.Path)))
	}
	return a.WriteFile(IndexFileName, []byte(strings.Join(lines, "\n")))
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}
