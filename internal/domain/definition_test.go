//go:build unit

// Copyright 2024 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"libvirt.org/go/libvirtxml"

	"github.com/alexandremahdhaoui/chmigrate/internal/domain"
)

func TestNewDefinition(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		def, err := domain.NewDefinition(domain.DefinitionConfig{Name: "vm0"})
		require.NoError(t, err)

		assert.Equal(t, "vm0", def.Name)
		assert.Equal(t, uint(2048), def.Memory.Value)
		assert.Equal(t, "MiB", def.Memory.Unit)
		assert.Equal(t, uint(2), def.VCPU.Value)
		_, err = uuid.Parse(def.UUID)
		assert.NoError(t, err)
		assert.Empty(t, domain.HostDevices(def))
	})

	t.Run("Devices", func(t *testing.T) {
		id := uuid.New()

		def, err := domain.NewDefinition(domain.DefinitionConfig{
			Name:        "vm0",
			UUID:        id,
			MemoryMB:    1024,
			VCPUs:       4,
			Kernel:      "/usr/share/cloud-hypervisor/hypervisor-fw",
			Disks:       []string{"/var/lib/vm0/root.raw", "/var/lib/vm0/data.raw"},
			TapNames:    []string{"tap0"},
			MACAddress:  "52:54:00:12:34:56",
			HostDevices: []string{"0000:01:00.0"},
		})
		require.NoError(t, err)

		doc, err := domain.FormatDefinition(def)
		require.NoError(t, err)

		// Parse XML to verify structure
		var parsed libvirtxml.Domain
		require.NoError(t, parsed.Unmarshal(doc))

		assert.Equal(t, id.String(), parsed.UUID)
		assert.Equal(t, uint(4), parsed.VCPU.Value)
		assert.Equal(t, "/usr/share/cloud-hypervisor/hypervisor-fw", parsed.OS.Kernel)

		require.Len(t, parsed.Devices.Disks, 2)
		assert.Equal(t, "vda", parsed.Devices.Disks[0].Target.Dev)
		assert.Equal(t, "vdb", parsed.Devices.Disks[1].Target.Dev)
		assert.Equal(t, "/var/lib/vm0/data.raw", parsed.Devices.Disks[1].Source.File.File)

		require.Len(t, parsed.Devices.Interfaces, 1)
		assert.Equal(t, "tap0", parsed.Devices.Interfaces[0].Target.Dev)
		assert.Equal(t, "52:54:00:12:34:56", parsed.Devices.Interfaces[0].MAC.Address)

		hostdevs := domain.HostDevices(&parsed)
		require.Len(t, hostdevs, 1)
		require.NotNil(t, hostdevs[0].SubsysPCI)
		addr := hostdevs[0].SubsysPCI.Source.Address
		assert.Equal(t, uint(0), *addr.Domain)
		assert.Equal(t, uint(1), *addr.Bus)
		assert.Equal(t, uint(0), *addr.Slot)
		assert.Equal(t, uint(0), *addr.Function)
	})

	t.Run("GeneratedMAC", func(t *testing.T) {
		def, err := domain.NewDefinition(domain.DefinitionConfig{Name: "vm0", TapNames: []string{"tap0", "tap1"}})
		require.NoError(t, err)

		require.Len(t, def.Devices.Interfaces, 2)
		for _, iface := range def.Devices.Interfaces {
			assert.True(t, strings.HasPrefix(iface.MAC.Address, "52:54:00:"),
				"MAC address should start with libvirt prefix 52:54:00")
		}
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := domain.NewDefinition(domain.DefinitionConfig{})
		assert.ErrorIs(t, err, domain.ErrInvalidDefinition)

		for _, addr := range []string{"01:00.0", "0000:01:00", "0000:zz:00.0", "0000:01:40.0"} {
			_, err := domain.NewDefinition(domain.DefinitionConfig{Name: "vm0", HostDevices: []string{addr}})
			assert.Error(t, err, addr)
		}
	})
}

func TestParseDefinition(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		def := newDef(t, "vm0")

		doc, err := domain.FormatDefinition(def)
		require.NoError(t, err)

		parsed, err := domain.ParseDefinition(doc)
		require.NoError(t, err)
		assert.Equal(t, def.Name, parsed.Name)
		assert.Equal(t, def.UUID, parsed.UUID)

		cp, err := domain.CopyDefinition(def)
		require.NoError(t, err)
		assert.NotSame(t, def, cp)
		assert.Equal(t, def.UUID, cp.UUID)
	})

	for name, doc := range map[string]string{
		"Empty":     "  ",
		"Malformed": "<domain><name>vm0",
		"NoName":    `<domain type="kvm"></domain>`,
		"BadUUID":   `<domain type="kvm"><name>vm0</name><uuid>nope</uuid></domain>`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := domain.ParseDefinition(doc)
			assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
		})
	}

	t.Run("FormatNil", func(t *testing.T) {
		_, err := domain.FormatDefinition(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	})
}
