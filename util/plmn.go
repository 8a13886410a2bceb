package util

import (
	"encoding/hex"
	"fmt"

	"github.com/free5gc/openapi/models"
)

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func ValidatePlmnId(plmnId models.PlmnId) error {
	if len(plmnId.Mcc) != 3 || !isDigits(plmnId.Mcc) {
		return fmt.Errorf("invalid mcc %q: want 3 digits", plmnId.Mcc)
	}
	if (len(plmnId.Mnc) != 2 && len(plmnId.Mnc) != 3) || !isDigits(plmnId.Mnc) {
		return fmt.Errorf("invalid mnc %q: want 2 or 3 digits", plmnId.Mnc)
	}
	return nil
}

func ValidateSnssai(snssai models.Snssai) error {
	if snssai.Sst < 0 || snssai.Sst > 255 {
		return fmt.Errorf("invalid sst %d: want 0-255", snssai.Sst)
	}
	if snssai.Sd == "" {
		return nil
	}
	if len(snssai.Sd) != 6 {
		return fmt.Errorf("invalid sd %q: want 6 hex digits or empty", snssai.Sd)
	}
	if _, err := hex.DecodeString(snssai.Sd); err != nil {
		return fmt.Errorf("invalid sd %q: %w", snssai.Sd, err)
	}
	return nil
}
