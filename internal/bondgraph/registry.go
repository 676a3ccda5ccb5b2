package bondgraph

import (
	"fmt"
	"sort"
)

type kindInfo struct {
	description string
	build       func(name string) Element
}

// Registry maps element kinds to constructors.
type Registry struct {
	kinds map[Kind]kindInfo
}

func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[Kind]kindInfo)}

	r.Register(KindEffortSource, "effort source", func(name string) Element { return newOnePort(KindEffortSource, name, "E") })
	r.Register(KindFlowSource, "flow source", func(name string) Element { return newOnePort(KindFlowSource, name, "F") })
	r.Register(KindResistor, "dissipative element", func(name string) Element { return newOnePort(KindResistor, name, "R") })
	r.Register(KindCapacitor, "capacitive storage", func(name string) Element { return newOnePort(KindCapacitor, name, "C") })
	r.Register(KindInertia, "inertial storage", func(name string) Element { return newOnePort(KindInertia, name, "I") })
	r.Register(KindTransformer, "transformer", func(name string) Element { return newTwoPort(KindTransformer, name, "n") })
	r.Register(KindGyrator, "gyrator", func(name string) Element { return newTwoPort(KindGyrator, name, "r") })
	r.Register(KindZeroJunction, "common-effort junction", func(name string) Element { return newJunction(KindZeroJunction, name) })
	r.Register(KindOneJunction, "common-flow junction", func(name string) Element { return newJunction(KindOneJunction, name) })

	return r
}

// DefaultRegistry holds every built-in element kind.
var DefaultRegistry = NewRegistry()

func (r *Registry) Register(kind Kind, description string, build func(name string) Element) {
	r.kinds[kind] = kindInfo{description: description, build: build}
}

func (r *Registry) New(kind Kind, name string) (Element, error) {
	info, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return info.build(name), nil
}

func (r *Registry) Describe(kind Kind) string {
	return r.kinds[kind].description
}

func (r *Registry) ListKinds() []Kind {
	kinds := make([]Kind, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
