package domain

import "strings"

// Invocation is a single external process run.
// Dir is the working directory the process runs in; it is created if missing.
type Invocation struct {
	Path   string
	Args   []string
	Dir    string
	Silent bool
}

// String renders the command line for logs and error metadata.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, quote(i.Path))
	for _, a := range i.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// Job is the unit of work handed to a toolchain: one target under one set of settings.
type Job struct {
	Target   Target
	Settings *Settings
	Silent   bool
}

// BuildDir returns the job's build directory.
func (j *Job) BuildDir() string {
	return j.Settings.BuildDir(j.Target.Name)
}

// Invocation returns an invocation of path in dir carrying the job's silence flag.
func (j *Job) Invocation(path, dir string, args ...string) Invocation {
	return Invocation{Path: path, Args: args, Dir: dir, Silent: j.Silent}
}
