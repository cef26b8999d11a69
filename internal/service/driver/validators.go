package driver

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidVehicleRegistration(registration string) bool {
	return strings.TrimSpace(registration) != ""
}

func isValidVehicleType(vehicleType entities.VehicleType) bool {
	switch vehicleType {
	case entities.VehicleBasic, entities.VehicleAdvanced, entities.VehicleCriticalCare:
		return true
	default:
		return false
	}
}
