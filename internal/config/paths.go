package config

// ProjectConfigPath returns the path to the project-level config file.
// This is always .pystack.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".pystack.yml"
}
