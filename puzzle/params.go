package puzzle

// Params exposes numeric tuning knobs. *koanf.Koanf satisfies it, so a
// config subtree can be passed straight to a solver.
type Params interface {
	Int64(key string) int64
	Exists(key string) bool
}

// Int64Or returns p[key], or def when p is nil or the key is unset.
func Int64Or(p Params, key string, def int64) int64 {
	if p == nil || !p.Exists(key) {
		return def
	}

	return p.Int64(key)
}

// IntOr is Int64Or for int-sized parameters.
func IntOr(p Params, key string, def int) int {
	return int(Int64Or(p, key, int64(def)))
}

// StaticParams is a map-backed Params, handy in tests.
type StaticParams map[string]int64

// Int64 implements Params.
func (s StaticParams) Int64(key string) int64 { return s[key] }

// Exists implements Params.
func (s StaticParams) Exists(key string) bool {
	_, ok := s[key]
	return ok
}
