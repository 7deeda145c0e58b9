/*
Copyright 2024 Alexandre Mahdhaoui

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package domain

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"libvirt.org/go/libvirtxml"
)

var (
	// ErrInvalidDefinition is returned when a domain definition document cannot be used.
	ErrInvalidDefinition = errors.New("invalid domain definition")

	errNoDefinition     = errors.New("no domain definition passed")
	errNameRequired     = errors.New("domain name is required")
	errInvalidUUID      = errors.New("invalid domain uuid")
	errInvalidPCIAddr   = errors.New("invalid PCI address")
	errMarshalDomainXML = errors.New("failed to marshal domain XML")
)

// ParseDefinition decodes a domain definition document.
func ParseDefinition(doc string) (*libvirtxml.Domain, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, errors.Join(errNoDefinition, ErrInvalidDefinition)
	}

	def := new(libvirtxml.Domain)
	if err := def.Unmarshal(doc); err != nil {
		return nil, errors.Join(err, ErrInvalidDefinition)
	}

	if def.Name == "" {
		return nil, errors.Join(errNameRequired, ErrInvalidDefinition)
	}

	if def.UUID != "" {
		if _, err := uuid.Parse(def.UUID); err != nil {
			return nil, errors.Join(fmt.Errorf("%w %q", errInvalidUUID, def.UUID), ErrInvalidDefinition)
		}
	}

	return def, nil
}

// FormatDefinition encodes def to a document.
func FormatDefinition(def *libvirtxml.Domain) (string, error) {
	if def == nil {
		return "", errors.Join(errNoDefinition, ErrInvalidDefinition)
	}

	b, err := def.Marshal()
	if err != nil {
		return "", errors.Join(err, errMarshalDomainXML)
	}

	return b, nil
}

// CopyDefinition returns a deep copy of def.
func CopyDefinition(def *libvirtxml.Domain) (*libvirtxml.Domain, error) {
	doc, err := FormatDefinition(def)
	if err != nil {
		return nil, err
	}
	return ParseDefinition(doc)
}

// HostDevices returns the devices of the host directly assigned to the domain.
func HostDevices(def *libvirtxml.Domain) []libvirtxml.DomainHostdev {
	if def == nil || def.Devices == nil {
		return nil
	}
	return def.Devices.Hostdevs
}

// definitionUUID returns the UUID of def, generating and storing one when it has none.
func definitionUUID(def *libvirtxml.Domain) (uuid.UUID, error) {
	if def.UUID == "" {
		id := uuid.New()
		def.UUID = id.String()
		return id, nil
	}

	id, err := uuid.Parse(def.UUID)
	if err != nil {
		return uuid.Nil, errors.Join(fmt.Errorf("%w %q", errInvalidUUID, def.UUID), ErrInvalidDefinition)
	}

	return id, nil
}

// DefinitionConfig describes a Cloud Hypervisor domain.
type DefinitionConfig struct {
	Name     string
	UUID     uuid.UUID
	MemoryMB uint
	VCPUs    uint
	// Kernel is the path of the direct-boot kernel (e.g. hypervisor-fw).
	Kernel  string
	Cmdline string
	Disks   []string
	// TapNames adds one ethernet interface per tap device.
	TapNames   []string
	MACAddress string // optional, generated if empty
	// HostDevices are PCI addresses ("0000:01:00.0") assigned to the domain.
	HostDevices []string
}

// NewDefinition builds a domain definition from cfg.
func NewDefinition(cfg DefinitionConfig) (*libvirtxml.Domain, error) {
	if cfg.Name == "" {
		return nil, errors.Join(errNameRequired, ErrInvalidDefinition)
	}

	id := cfg.UUID
	if id == uuid.Nil {
		id = uuid.New()
	}

	memory := cfg.MemoryMB
	if memory == 0 {
		memory = defaultMemoryMB
	}

	vcpus := cfg.VCPUs
	if vcpus == 0 {
		vcpus = defaultVCPUs
	}

	def := &libvirtxml.Domain{
		Type: "kvm",
		Name: cfg.Name,
		UUID: id.String(),
		Memory: &libvirtxml.DomainMemory{
			Value: memory,
			Unit:  "MiB",
		},
		VCPU: &libvirtxml.DomainVCPU{
			Value: vcpus,
		},
		OS: &libvirtxml.DomainOS{
			Type: &libvirtxml.DomainOSType{
				Type: "hvm",
			},
			Kernel:  cfg.Kernel,
			Cmdline: cfg.Cmdline,
		},
		Devices: &libvirtxml.DomainDeviceList{},
	}

	for i, path := range cfg.Disks {
		def.Devices.Disks = append(def.Devices.Disks, libvirtxml.DomainDisk{
			Device: "disk",
			Driver: &libvirtxml.DomainDiskDriver{Name: "qemu", Type: "raw"},
			Source: &libvirtxml.DomainDiskSource{
				File: &libvirtxml.DomainDiskSourceFile{File: path},
			},
			Target: &libvirtxml.DomainDiskTarget{
				Dev: fmt.Sprintf("vd%c", 'a'+i),
				Bus: "virtio",
			},
		})
	}

	for i, tap := range cfg.TapNames {
		mac := cfg.MACAddress
		if mac == "" || i > 0 {
			var err error
			if mac, err = generateRandomMAC(); err != nil {
				return nil, fmt.Errorf("generate MAC address: %w", err)
			}
		}
		def.Devices.Interfaces = append(def.Devices.Interfaces, buildEthernetInterface(tap, mac))
	}

	for _, addr := range cfg.HostDevices {
		hostdev, err := buildPCIHostdev(addr)
		if err != nil {
			return nil, err
		}
		def.Devices.Hostdevs = append(def.Devices.Hostdevs, hostdev)
	}

	return def, nil
}

const (
	defaultMemoryMB = 2048
	defaultVCPUs    = 2
)

// buildEthernetInterface creates a virtio interface backed by an existing tap device
func buildEthernetInterface(tap, macAddress string) libvirtxml.DomainInterface {
	return libvirtxml.DomainInterface{
		Source: &libvirtxml.DomainInterfaceSource{
			Ethernet: &libvirtxml.DomainInterfaceSourceEthernet{},
		},
		Target: &libvirtxml.DomainInterfaceTarget{
			Dev: tap,
		},
		Model: &libvirtxml.DomainInterfaceModel{
			Type: "virtio",
		},
		MAC: &libvirtxml.DomainInterfaceMAC{
			Address: macAddress,
		},
	}
}

// buildPCIHostdev parses "dddd:bb:ss.f" into a managed PCI passthrough device
func buildPCIHostdev(addr string) (libvirtxml.DomainHostdev, error) {
	var domainNr, bus, slot, function uint64

	parts := strings.Split(addr, ":")
	if len(parts) != 3 {
		return libvirtxml.DomainHostdev{}, fmt.Errorf("%w %q", errInvalidPCIAddr, addr)
	}

	slotFunc := strings.Split(parts[2], ".")
	if len(slotFunc) != 2 {
		return libvirtxml.DomainHostdev{}, fmt.Errorf("%w %q", errInvalidPCIAddr, addr)
	}

	var err error
	for _, f := range []struct {
		s    string
		bits int
		out  *uint64
	}{
		{parts[0], 16, &domainNr},
		{parts[1], 8, &bus},
		{slotFunc[0], 5, &slot},
		{slotFunc[1], 3, &function},
	} {
		if *f.out, err = strconv.ParseUint(f.s, 16, f.bits); err != nil {
			return libvirtxml.DomainHostdev{}, errors.Join(fmt.Errorf("%w %q", errInvalidPCIAddr, addr), err)
		}
	}

	return libvirtxml.DomainHostdev{
		Managed: "yes",
		SubsysPCI: &libvirtxml.DomainHostdevSubsysPCI{
			Source: &libvirtxml.DomainHostdevSubsysPCISource{
				Address: &libvirtxml.DomainAddressPCI{
					Domain:   uintPtr(uint(domainNr)),
					Bus:      uintPtr(uint(bus)),
					Slot:     uintPtr(uint(slot)),
					Function: uintPtr(uint(function)),
				},
			},
		},
	}, nil
}

// generateRandomMAC generates a random MAC address with libvirt's prefix (52:54:00)
func generateRandomMAC() (string, error) {
	buf := make([]byte, 3)
	_, err := rand.Read(buf)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("52:54:00:%02x:%02x:%02x", buf[0], buf[1], buf[2]), nil
}

// uintPtr is a helper to get pointer to uint
func uintPtr(v uint) *uint {
	return &v
}
