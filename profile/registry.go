package profile

import "github.com/HanHongChen/cnsim-ctl/model"

// Registry holds the loaded profiles and the name of the current one. The
// current name always resolves to a loaded profile.
type Registry struct {
	names    []string
	profiles map[string]model.Profile
	current  string
}

func (r *Registry) Current() model.Profile {
	return r.profiles[r.current]
}

func (r *Registry) CurrentName() string {
	return r.current
}

// Names returns profile names in file order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r *Registry) Get(name string) (model.Profile, bool) {
	profile, ok := r.profiles[name]
	return profile, ok
}

// Switch makes name the current profile. It reports false and leaves the
// registry unchanged if no such profile exists.
func (r *Registry) Switch(name string) bool {
	if _, ok := r.profiles[name]; !ok {
		return false
	}
	r.current = name
	return true
}
