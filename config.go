package extrude

// Config is a key-value configuration object attached to a target. The core
// itself reads exactly one derived value from it, the active level of detail;
// all other keys are opaque and backend-specific.
type Config struct {
	values map[string]any
}

// lodKey is the configuration key the LOD resolver reads.
const lodKey = "lod"

// minLOD and maxLOD bound the level-of-detail scale.
const (
	minLOD = 0
	maxLOD = 4
)

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{values: map[string]any{}}
}

// Set stores a value under key, replacing any previous value.
func (c *Config) Set(key string, value any) {
	if c.values == nil {
		c.values = map[string]any{}
	}
	c.values[key] = value
}

// Get returns the raw value stored under key, or nil.
func (c *Config) Get(key string) any {
	if c == nil {
		return nil
	}
	return c.values[key]
}

// Int returns the integer stored under key, or def if the key is absent or
// holds a non-integer value.
func (c *Config) Int(key string, def int) int {
	if v, ok := c.Get(key).(int); ok {
		return v
	}
	return def
}

// Float returns the float stored under key, or def.
func (c *Config) Float(key string, def float64) float64 {
	if v, ok := c.Get(key).(float64); ok {
		return v
	}
	return def
}

// Bool returns the boolean stored under key, or def.
func (c *Config) Bool(key string, def bool) bool {
	if v, ok := c.Get(key).(bool); ok {
		return v
	}
	return def
}

// String returns the string stored under key, or def.
func (c *Config) String(key string, def string) string {
	if v, ok := c.Get(key).(string); ok {
		return v
	}
	return def
}

// LOD resolves the active level of detail. Missing or malformed values
// resolve to the maximum standard level, so detail is only ever dropped by
// explicit configuration. The value is returned as configured; meshes whose
// declared range does not contain it are simply filtered out.
func (c *Config) LOD() int {
	return c.Int(lodKey, maxLOD)
}
