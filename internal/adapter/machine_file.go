package adapter

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	m "mutoracle.dev/pkg/mutoracle/internal/model"
)

// MachineFile is the YAML description of a Mealy machine.
type MachineFile struct {
	Initial     string           `yaml:"initial"`
	Inputs      []string         `yaml:"inputs"`
	Transitions []TransitionFile `yaml:"transitions"`
}

// TransitionFile is one row of a MachineFile.
type TransitionFile struct {
	From   string `yaml:"from"`
	Input  string `yaml:"input"`
	To     string `yaml:"to"`
	Output string `yaml:"output"`
}

// MachineFileAdapter reads and writes machine description files.
type MachineFileAdapter interface {
	Load(path string) (*m.Machine, error)
	Save(path string, machine *m.Machine) error
}

// LocalMachineFileAdapter stores machines as YAML files on the local disk.
type LocalMachineFileAdapter struct{}

// NewLocalMachineFileAdapter constructs a LocalMachineFileAdapter.
func NewLocalMachineFileAdapter() *LocalMachineFileAdapter {
	return &LocalMachineFileAdapter{}
}

// Load parses the machine stored at path.
func (a *LocalMachineFileAdapter) Load(path string) (*m.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read machine file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read machine file: %w", err)
	}

	machine, err := ParseMachine(data)
	if err != nil {
		slog.Error("Failed to parse machine file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse machine file %s: %w", path, err)
	}

	slog.Debug("Loaded machine", "path", path, "states", machine.NumStates(), "inputs", machine.Alphabet().Size())

	return machine, nil
}

// Save writes machine to path. States are named q0, q1, ...
func (a *LocalMachineFileAdapter) Save(path string, machine *m.Machine) error {
	data, err := yaml.Marshal(Describe(machine))
	if err != nil {
		return fmt.Errorf("failed to encode machine: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("Failed to write machine file", "path", path, "error", err)
		return fmt.Errorf("failed to write machine file: %w", err)
	}

	return nil
}

// ParseMachine builds a machine from its YAML description. States are
// numbered in order of first appearance, starting with the initial state.
func ParseMachine(data []byte) (*m.Machine, error) {
	var file MachineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if file.Initial == "" {
		return nil, fmt.Errorf("missing initial state")
	}

	alphabet, err := m.NewAlphabet(file.Inputs...)
	if err != nil {
		return nil, err
	}

	b := m.NewBuilder(alphabet)
	states := make(map[string]m.StateID)

	state := func(name string) m.StateID {
		if id, ok := states[name]; ok {
			return id
		}

		id := b.AddState()
		states[name] = id

		return id
	}

	b.SetInitial(state(file.Initial))

	seen := make(map[[2]int]struct{}, len(file.Transitions))

	for i, row := range file.Transitions {
		in, ok := alphabet.Lookup(row.Input)
		if !ok {
			return nil, fmt.Errorf("transition %d: unknown input %q", i, row.Input)
		}

		from := state(row.From)

		key := [2]int{int(from), int(in)}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("transition %d: duplicate transition from %q on %q", i, row.From, row.Input)
		}

		seen[key] = struct{}{}

		b.SetTransition(from, in, state(row.To), row.Output)
	}

	return b.Build()
}

// Describe converts machine into its file representation.
func Describe(machine *m.Machine) MachineFile {
	alphabet := machine.Alphabet()
	name := func(s m.StateID) string { return fmt.Sprintf("q%d", s) }

	file := MachineFile{
		Initial:     name(machine.Initial()),
		Inputs:      alphabet.Names(alphabet.Symbols()),
		Transitions: make([]TransitionFile, 0, machine.NumStates()*alphabet.Size()),
	}

	for s := range m.StateID(machine.NumStates()) {
		for _, in := range alphabet.Symbols() {
			file.Transitions = append(file.Transitions, TransitionFile{
				From:   name(s),
				Input:  alphabet.Name(in),
				To:     name(machine.Successor(s, in)),
				Output: machine.Output(s, in),
			})
		}
	}

	return file
}
