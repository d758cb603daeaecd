package release

// Info describes the running build.
// It is assembled once at startup and never changes afterwards.
type Info struct {
	Mode      string
	Version   string
	Commit    string
	BuildTime string
}

// New keeps every value exactly as given, including empty ones.
func New(mode, version, commit, buildTime string) Info {
	return Info{
		Mode:      mode,
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
	}
}

// WithMode returns a copy of the info with the mode replaced,
// unless the override is empty.
func (i Info) WithMode(mode string) Info {
	if mode == "" {
		return i
	}
	i.Mode = mode
	return i
}
