package domain

import (
	"slices"
	"strings"
)

var defaultTargets = []Target{
	{Name: "osx-static", Family: FamilyDesktopApple, Generator: "Xcode", Arch: ArchX64, Linkage: LinkageStatic, Hosts: []Host{HostDarwin}},
	{Name: "osx-shared", Family: FamilyDesktopApple, Generator: "Xcode", Arch: ArchX64, Linkage: LinkageShared, Hosts: []Host{HostDarwin}},

	{Name: "win32-vc120-static", Family: FamilyDesktopWindows, Generator: "Visual Studio 12", Arch: ArchX86, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},
	{Name: "win32-vc140-static", Family: FamilyDesktopWindows, Generator: "Visual Studio 14", Arch: ArchX86, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},
	{Name: "win32-shared", Family: FamilyDesktopWindows, Generator: "Visual Studio 14", Arch: ArchX86, Linkage: LinkageShared, Hosts: []Host{HostWindows}},
	{Name: "win64-vc120-static", Family: FamilyDesktopWindows, Generator: "Visual Studio 12 Win64", Arch: ArchX64, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},
	{Name: "win64-vc140-static", Family: FamilyDesktopWindows, Generator: "Visual Studio 14 Win64", Arch: ArchX64, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},
	{Name: "win64-shared", Family: FamilyDesktopWindows, Generator: "Visual Studio 14 Win64", Arch: ArchX64, Linkage: LinkageShared, Hosts: []Host{HostWindows}},

	{Name: "uwp-x86-vc140-static", Family: FamilyWindowsStore, Generator: "Visual Studio 14", Arch: ArchX86, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},
	{Name: "uwp-x64-vc140-static", Family: FamilyWindowsStore, Generator: "Visual Studio 14 Win64", Arch: ArchX64, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},
	{Name: "uwp-arm-vc140-static", Family: FamilyWindowsStore, Generator: "Visual Studio 14 ARM", Arch: ArchARM, Linkage: LinkageStatic, Hosts: []Host{HostWindows}},

	{Name: "tizen-arm-static", Family: FamilyEmbeddedIDE, Generator: "arm", Arch: ArchARM, Linkage: LinkageStatic, Hosts: []Host{HostDarwin, HostWindows}},
	{Name: "tizen-arm-shared", Family: FamilyEmbeddedIDE, Generator: "arm", Arch: ArchARM, Linkage: LinkageShared, Hosts: []Host{HostDarwin, HostWindows}},
	{Name: "tizen-x86-static", Family: FamilyEmbeddedIDE, Generator: "x86", Arch: ArchX86, Linkage: LinkageStatic, Hosts: []Host{HostDarwin, HostWindows}},
	{Name: "tizen-x86-shared", Family: FamilyEmbeddedIDE, Generator: "x86", Arch: ArchX86, Linkage: LinkageShared, Hosts: []Host{HostDarwin, HostWindows}},

	{Name: "linux-x64-static", Family: FamilyDesktopLinux, Generator: "Unix Makefiles", Arch: ArchX64, Linkage: LinkageStatic, Hosts: []Host{HostLinux}},
	{Name: "linux-x64-shared", Family: FamilyDesktopLinux, Generator: "Unix Makefiles", Arch: ArchX64, Linkage: LinkageShared, Hosts: []Host{HostLinux}},
	{Name: "linux-x86-static", Family: FamilyDesktopLinux, Generator: "Unix Makefiles", Arch: ArchX86, Linkage: LinkageStatic, Hosts: []Host{HostLinux}},
	{Name: "linux-x86-shared", Family: FamilyDesktopLinux, Generator: "Unix Makefiles", Arch: ArchX86, Linkage: LinkageShared, Hosts: []Host{HostLinux}},
}

// DefaultTargets returns a copy of the built-in target table.
func DefaultTargets() []Target {
	return slices.Clone(defaultTargets)
}

// Registry is the read-only table of known targets for one host.
type Registry struct {
	host    Host
	targets map[string]Target
	names   []string
}

// NewRegistry builds a registry for host from the given targets.
// Later duplicates of a name replace earlier ones.
func NewRegistry(host Host, targets ...Target) *Registry {
	r := &Registry{
		host:    host,
		targets: make(map[string]Target, len(targets)),
	}
	for _, t := range targets {
		r.targets[t.Name] = t
	}
	for name, t := range r.targets {
		if t.AvailableOn(host) {
			r.names = append(r.names, name)
		}
	}
	slices.Sort(r.names)
	return r
}

// DefaultRegistry returns the built-in target table for host.
func DefaultRegistry(host Host) *Registry {
	return NewRegistry(host, defaultTargets...)
}

// Host returns the host the registry was built for.
func (r *Registry) Host() Host {
	return r.host
}

// Lookup returns the named target regardless of host availability.
func (r *Registry) Lookup(name string) (Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Available reports whether name is a known target that can be built on this host.
func (r *Registry) Available(name string) bool {
	t, ok := r.targets[name]
	return ok && t.AvailableOn(r.host)
}

// HostNames returns the names of all host-valid targets in lexicographic order.
func (r *Registry) HostNames() []string {
	return slices.Clone(r.names)
}

// HostTargets returns all host-valid targets in lexicographic order by name.
func (r *Registry) HostTargets() []Target {
	out := make([]Target, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.targets[name])
	}
	return out
}

// Without returns the host-valid names whose family is not in families.
func (r *Registry) Without(families ...PlatformFamily) []string {
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		if !slices.Contains(families, r.targets[name].Family) {
			out = append(out, name)
		}
	}
	return out
}

// NormalizeNames trims, de-duplicates and sorts a caller-supplied target list.
func NormalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
