package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/vmihailenco/msgpack/v5"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// StateFileAdapter persists run state as msgpack.
type StateFileAdapter struct{}

func NewStateFileAdapter() StateFileAdapter {
	return StateFileAdapter{}
}

func (a StateFileAdapter) Save(path string, state types.RunState) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("state file path is empty")
	}
	data, err := msgpack.Marshal(&state)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode run state").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create state directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write state file").
			WithCause(err)
	}
	return nil
}

func (a StateFileAdapter) Load(path string) (types.RunState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RunState{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("state file not found").
			WithCause(err)
	}
	var state types.RunState
	if err := msgpack.Unmarshal(data, &state); err != nil {
		return types.RunState{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode state file").
			WithCause(err)
	}
	return state, nil
}

var _ ports.StatePort = StateFileAdapter{}
