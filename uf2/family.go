package uf2

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// familyMap maps well-known board family names to their UF2 family IDs.
// IDs come from the community UF2 family registry.
var familyMap = map[string]uint32{
	"samd21":       0x68ED2B88,
	"samd51":       0x55114460,
	"saml21":       0x1851780A,
	"nrf52833":     0x621E937A,
	"nrf52840":     0xADA52840,
	"stm32f1":      0x5EE21072,
	"stm32f4":      0x57755A57,
	"stm32f7":      0x53B80F00,
	"esp32s2":      0xBFDD4EEE,
	"esp32s3":      0xC47E5767,
	"rp2040":       0xE48BFF56,
	"rp2350-arm-s": 0xE48BFF59,
	"mimxrt10xx":   0x4FB2D5BD,
}

// ParseFamily resolves a family argument to a family ID. The argument
// is either a known family name (case-insensitive, see FamilyNames) or
// a 32-bit number in any base accepted by strconv.ParseUint with base 0
// (e.g. "0xE48BFF56" or "3834642262").
func ParseFamily(s string) (uint32, error) {
	if id, ok := familyMap[strings.ToLower(s)]; ok {
		return id, nil
	}

	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown family %q: not a known name or 32-bit ID", s)
	}

	return uint32(id), nil
}

// FamilyNames returns the known family names in sorted order.
func FamilyNames() []string {
	names := make([]string, 0, len(familyMap))
	for name := range familyMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
