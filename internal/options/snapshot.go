package options

// Snapshot is a plain copy of every section, for display and export.
type Snapshot struct {
	General   map[string]string `json:"general" yaml:"general"`
	Languages []string          `json:"preserve_languages" yaml:"preserve_languages"`
	Tree      map[string]bool   `json:"tree" yaml:"tree"`
}

// Snapshot copies the current preferences. Tree entries that cannot be
// parsed as booleans are reported as false.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		General:   map[string]string{},
		Languages: s.Languages(),
		Tree:      map[string]bool{},
	}
	if snap.Languages == nil {
		snap.Languages = []string{}
	}

	for _, k := range s.file.Section(sectionGeneral).Keys() {
		snap.General[k.Name()] = k.String()
	}

	if section, err := s.file.GetSection(sectionTree); err == nil {
		for _, k := range section.Keys() {
			b, _ := k.Bool()
			snap.Tree[k.Name()] = b
		}
	}

	return snap
}
