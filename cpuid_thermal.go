package cpuid

// ThermalPowerManagementInformation decodes leaf 6. Only eax, ebx and ecx
// carry defined fields.
type ThermalPowerManagementInformation struct {
	eax uint32
	ebx uint32
	ecx uint32
}

func newThermalPowerManagementInformation(r LeafReader) ThermalPowerManagementInformation {
	a, b, c, _ := r(LeafThermalPowerManagement, 0)
	return ThermalPowerManagementInformation{eax: a, ebx: b, ecx: c}
}

func (t ThermalPowerManagementInformation) DigitalTemperatureSensor() bool { return bit(t.eax, 0) }
func (t ThermalPowerManagementInformation) IntelTurboBoost() bool          { return bit(t.eax, 1) }
func (t ThermalPowerManagementInformation) ARAT() bool                     { return bit(t.eax, 2) }

// 3 - reserved

func (t ThermalPowerManagementInformation) PLN() bool               { return bit(t.eax, 4) }
func (t ThermalPowerManagementInformation) ECMD() bool              { return bit(t.eax, 5) }
func (t ThermalPowerManagementInformation) PTM() bool               { return bit(t.eax, 6) }
func (t ThermalPowerManagementInformation) HWP() bool               { return bit(t.eax, 7) }
func (t ThermalPowerManagementInformation) HWPNotification() bool   { return bit(t.eax, 8) }
func (t ThermalPowerManagementInformation) HWPActivityWindow() bool { return bit(t.eax, 9) }
func (t ThermalPowerManagementInformation) HWPEnergyPerformancePreference() bool {
	return bit(t.eax, 10)
}

// 11-12 - reserved

func (t ThermalPowerManagementInformation) HDC() bool { return bit(t.eax, 13) }

// NumberOfInterruptThresholds returns the count of interrupt thresholds in
// the digital thermal sensor, ebx[0:3].
func (t ThermalPowerManagementInformation) NumberOfInterruptThresholds() uint32 {
	return bitsOf(t.ebx, 0, 3)
}

func (t ThermalPowerManagementInformation) HardwareCoordinationFeedback() bool {
	return bit(t.ecx, 0)
}

// 1-2 - reserved

func (t ThermalPowerManagementInformation) PerformanceEnergyBias() bool { return bit(t.ecx, 3) }
