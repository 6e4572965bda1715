package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sdkbuild/internal/core/domain"
)

func TestDefaultRegistry_HostNames(t *testing.T) {
	tests := []struct {
		host     domain.Host
		expected []string
	}{
		{
			host: domain.HostDarwin,
			expected: []string{
				"osx-shared", "osx-static",
				"tizen-arm-shared", "tizen-arm-static", "tizen-x86-shared", "tizen-x86-static",
			},
		},
		{
			host: domain.HostLinux,
			expected: []string{
				"linux-x64-shared", "linux-x64-static", "linux-x86-shared", "linux-x86-static",
			},
		},
		{
			host: domain.HostWindows,
			expected: []string{
				"tizen-arm-shared", "tizen-arm-static", "tizen-x86-shared", "tizen-x86-static",
				"uwp-arm-vc140-static", "uwp-x64-vc140-static", "uwp-x86-vc140-static",
				"win32-shared", "win32-vc120-static", "win32-vc140-static",
				"win64-shared", "win64-vc120-static", "win64-vc140-static",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.host), func(t *testing.T) {
			reg := domain.DefaultRegistry(tt.host)
			names := reg.HostNames()
			assert.Equal(t, tt.expected, names)
			assert.True(t, slices.IsSorted(names))

			for _, target := range reg.HostTargets() {
				assert.True(t, target.AvailableOn(tt.host), target.Name)
			}
		})
	}
}

func TestRegistry_LookupAndAvailable(t *testing.T) {
	reg := domain.DefaultRegistry(domain.HostDarwin)

	target, ok := reg.Lookup("win64-shared")
	assert.True(t, ok)
	assert.Equal(t, domain.FamilyDesktopWindows, target.Family)
	assert.Equal(t, "Visual Studio 14 Win64", target.Generator)
	assert.False(t, reg.Available("win64-shared"))

	assert.True(t, reg.Available("osx-static"))

	_, ok = reg.Lookup("badtarget1")
	assert.False(t, ok)
	assert.False(t, reg.Available("badtarget1"))
}

func TestRegistry_HostNamesIsACopy(t *testing.T) {
	reg := domain.DefaultRegistry(domain.HostLinux)
	names := reg.HostNames()
	names[0] = "mutated"

	assert.Equal(t, "linux-x64-shared", reg.HostNames()[0])
}

func TestRegistry_Without(t *testing.T) {
	reg := domain.DefaultRegistry(domain.HostDarwin)

	assert.Equal(t, []string{"osx-shared", "osx-static"}, reg.Without(domain.FamilyEmbeddedIDE))
}

func TestNewRegistry_CustomTargets(t *testing.T) {
	reg := domain.NewRegistry(domain.HostLinux,
		domain.Target{Name: "b", Hosts: []domain.Host{domain.HostLinux}},
		domain.Target{Name: "a", Hosts: []domain.Host{domain.HostLinux}},
		domain.Target{Name: "c", Hosts: []domain.Host{domain.HostDarwin}},
	)

	assert.Equal(t, []string{"a", "b"}, reg.HostNames())
	assert.Equal(t, domain.HostLinux, reg.Host())
}

func TestNormalizeNames(t *testing.T) {
	got := domain.NormalizeNames([]string{"osx-static", " osx-shared ", "", "osx-static", "badtarget1"})

	assert.Equal(t, []string{"badtarget1", "osx-shared", "osx-static"}, got)
}

func TestArch_Bits(t *testing.T) {
	assert.Equal(t, 64, domain.ArchX64.Bits())
	assert.Equal(t, 32, domain.ArchX86.Bits())
	assert.Equal(t, 32, domain.ArchARM.Bits())
}
