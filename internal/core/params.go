package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form string parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// SnapshotProvider exposes the current parameter snapshot of a simulation.
type SnapshotProvider interface {
	Parameters() ParameterSnapshot
}

// FloatParameterSetter allows callers to update floating point parameters at
// runtime. Implementations clamp out-of-range values and report unknown keys
// by returning false.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
