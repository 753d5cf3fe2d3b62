package storage

// ThemeKey holds the saved theme name.
const ThemeKey = "pokedex-theme"

// ThemeStore persists the theme preference as a bare string.
type ThemeStore struct {
	kv *KV
}

// NewThemeStore returns a preference store over kv.
func NewThemeStore(kv *KV) *ThemeStore {
	return &ThemeStore{kv: kv}
}

// Load returns the saved theme name, if any.
func (s *ThemeStore) Load() (string, bool, error) {
	v, _, ok, err := s.kv.Get(ThemeKey)
	if err != nil || !ok {
		return "", false, err
	}
	return string(v), true, nil
}

// Save stores name.
func (s *ThemeStore) Save(name string) error {
	return s.kv.Put(ThemeKey, []byte(name))
}
