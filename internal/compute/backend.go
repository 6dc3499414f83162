package compute

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// Backend fills a pre-sized grid from the sample axes.
type Backend interface {
	Name() string
	Fill(ctx context.Context, p fractal.Params, x, y []float32, n *fractal.Grid) error
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	cpu := NewCPUBackend(0)
	if cpu.Workers() > 1 {
		return cpu
	}
	return NewSerialBackend()
}

var backends = map[string]func(workers int) Backend{
	"serial": func(int) Backend { return NewSerialBackend() },
	"cpu":    func(workers int) Backend { return NewCPUBackend(workers) },
	"auto":   func(int) Backend { return AutoSelectBackend() },
}

// Lookup returns a backend by name. workers is only used by "cpu";
// zero means one per core.
func Lookup(name string, workers int) (Backend, error) {
	fn, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s (available: %v)", name, BackendNames())
	}
	return fn(workers), nil
}

func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
