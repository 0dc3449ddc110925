package discipline

// ConfigSet bundles the threshold configuration of every discipline. It is
// the unit the YAML configuration file overrides: unmarshalling onto a
// DefaultConfigSet keeps the defaults for every threshold the file leaves
// out.
type ConfigSet struct {
	SprintStart   SprintStartConfig   `yaml:"sprint_start"`
	SprintRunning SprintRunningConfig `yaml:"sprint_running"`
	LongJump      LongJumpConfig      `yaml:"long_jump"`
	HighJump      HighJumpConfig      `yaml:"high_jump"`
	ShotPut       ShotPutConfig       `yaml:"shot_put"`
	DiscusThrow   DiscusConfig        `yaml:"discus_throw"`
	JavelinThrow  JavelinConfig       `yaml:"javelin_throw"`
	Hurdling      HurdlingConfig      `yaml:"hurdling"`
}

// DefaultConfigSet returns the hand-tuned defaults for every discipline.
func DefaultConfigSet() ConfigSet {
	return ConfigSet{
		SprintStart:   DefaultSprintStartConfig(),
		SprintRunning: DefaultSprintRunningConfig(),
		LongJump:      DefaultLongJumpConfig(),
		HighJump:      DefaultHighJumpConfig(),
		ShotPut:       DefaultShotPutConfig(),
		DiscusThrow:   DefaultDiscusConfig(),
		JavelinThrow:  DefaultJavelinConfig(),
		Hurdling:      DefaultHurdlingConfig(),
	}
}

// NewRegistryWith creates a registry with every discipline registered under
// the given threshold configuration.
func NewRegistryWith(cs ConfigSet) *Registry {
	r := &Registry{evaluators: make(map[string]Evaluator)}
	r.Register(NewSprintStart(cs.SprintStart))
	r.Register(NewSprintRunning(cs.SprintRunning))
	r.Register(NewLongJump(cs.LongJump))
	r.Register(NewHighJump(cs.HighJump))
	r.Register(NewShotPut(cs.ShotPut))
	r.Register(NewDiscusThrow(cs.DiscusThrow))
	r.Register(NewJavelinThrow(cs.JavelinThrow))
	r.Register(NewHurdling(cs.Hurdling))
	return r
}
