package modemmanager

import (
	"github.com/danderson/cellnet/bus"
	"github.com/godbus/dbus/v5"
)

// ManagerProperties are the properties of the ModemManager root
// object.
type ManagerProperties struct {
	Version string
	Unknown map[string]any `dbus:"vardict"`
}

// ModemProperties are the properties of a modem.
type ModemProperties struct {
	// Sim is the path of the primary SIM card, or "/" if there is
	// none.
	Sim            dbus.ObjectPath
	SimSlots       []dbus.ObjectPath
	PrimarySimSlot uint32
	Bearers        []dbus.ObjectPath

	// SupportedCapabilities lists the combinations of capabilities
	// that the modem can be configured with.
	SupportedCapabilities       []ModemCapability
	CurrentCapabilities         ModemCapability
	MaxBearers                  uint32
	MaxActiveBearers            uint32
	MaxActiveMultiplexedBearers uint32

	Manufacturer                 string
	Model                        string
	Revision                     string
	CarrierConfiguration         string
	CarrierConfigurationRevision string
	HardwareRevision             string
	DeviceIdentifier             string
	Device                       string
	Drivers                      []string
	Plugin                       string
	PrimaryPort                  string
	Ports                        []Port
	EquipmentIdentifier          string

	UnlockRequired ModemLock
	// UnlockRetries is the number of unlock attempts left for each
	// kind of lock.
	UnlockRetries map[ModemLock]uint32

	State              ModemState
	StateFailedReason  ModemStateFailedReason
	AccessTechnologies ModemAccessTechnology
	SignalQuality      SignalQuality
	OwnNumbers         []string
	PowerState         ModemPowerState

	SupportedModes      []ModeCombination
	CurrentModes        ModeCombination
	SupportedBands      []ModemBand
	CurrentBands        []ModemBand
	SupportedIpFamilies BearerIpFamily

	// Unknown holds properties not covered by other fields.
	Unknown map[string]any `dbus:"vardict"`
}

// Port is a kernel device that a modem uses.
type Port struct {
	Name string
	Type ModemPortType
}

// SignalQuality is a modem's signal quality.
type SignalQuality struct {
	// Quality is the signal quality as a percentage.
	Quality uint32 `yaml:"quality"`
	// Recent is whether Quality was measured recently.
	Recent bool `yaml:"recent"`
}

// ModeCombination is a set of access modes that a modem can use
// together, and the preferred one among them.
type ModeCombination struct {
	Allowed   ModemMode
	Preferred ModemMode
}

// SimProperties are the properties of a SIM card.
type SimProperties struct {
	Active             bool
	SimIdentifier      string
	Imsi               string
	Eid                string
	OperatorIdentifier string
	OperatorName       string
	EmergencyNumbers   []string
	PreferredNetworks  []PreferredNetwork
	Gid1               []byte
	Gid2               []byte
	SimType            SimType
	EsimStatus         SimEsimStatus
	Removability       SimRemovability

	Unknown map[string]any `dbus:"vardict"`
}

// PreferredNetwork is an operator that a SIM card prefers to
// register with.
type PreferredNetwork struct {
	// OperatorID is the operator's "MCCMNC" code.
	OperatorID         string
	AccessTechnologies ModemAccessTechnology
}

// BearerProperties are the properties of a data bearer.
type BearerProperties struct {
	// Interface is the kernel network interface carrying the
	// bearer's traffic.
	Interface       string
	Connected       bool
	ConnectionError ConnectionError
	Suspended       bool
	Multiplexed     bool
	Ip4Config       map[string]any
	Ip6Config       map[string]any
	Stats           map[string]any

	ReloadStatsSupported bool
	IpTimeout            uint32
	BearerType           BearerType
	ProfileId            int32
	// Properties are the settings the bearer was created with.
	Properties map[string]any

	Unknown map[string]any `dbus:"vardict"`
}

// ConnectionError is the reason a bearer is not connected.
type ConnectionError struct {
	// Name is a bus error name, or empty if there was no error.
	Name    string
	Message string
}

// Modem3gppProperties are the properties of a modem's 3GPP interface.
type Modem3gppProperties struct {
	Imei                     string
	RegistrationState        Modem3gppRegistrationState
	OperatorCode             string
	OperatorName             string
	EnabledFacilityLocks     Modem3gppFacility
	SubscriptionState        Modem3gppSubscriptionState
	EpsUeModeOperation       Modem3gppEpsUeModeOperation
	Pco                      []PCO
	InitialEpsBearer         dbus.ObjectPath
	InitialEpsBearerSettings map[string]any
	PacketServiceState       Modem3gppPacketServiceState
	Nr5gRegistrationSettings map[string]any

	Unknown map[string]any `dbus:"vardict"`
}

// PCO is protocol configuration options data received from the
// network.
type PCO struct {
	SessionID uint32
	Complete  bool
	Data      []byte
}

// SignalProperties are the properties of a modem's extended signal
// interface. Each per-technology value is a dictionary of
// measurements, present once the modem has reported them.
type SignalProperties struct {
	Rate               uint32
	RssiThreshold      uint32
	ErrorRateThreshold bool
	Cdma               map[string]any
	Evdo               map[string]any
	Gsm                map[string]any
	Umts               map[string]any
	Lte                map[string]any
	Nr5g               map[string]any

	Unknown map[string]any `dbus:"vardict"`
}

// LocationProperties are the properties of a modem's location
// interface.
type LocationProperties struct {
	Capabilities            uint32
	SupportedAssistanceData uint32
	Enabled                 uint32
	SignalsLocation         bool
	// Location maps location sources to their last reported value.
	Location              map[uint32]any
	SuplServer            string
	AssistanceDataServers []string
	GpsRefreshRate        uint32

	Unknown map[string]any `dbus:"vardict"`
}

func decodeManager(props map[string]any) (ManagerProperties, error) {
	var ret ManagerProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func decodeModem(props map[string]any) (ModemProperties, error) {
	var ret ModemProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func decodeSim(props map[string]any) (SimProperties, error) {
	var ret SimProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func decodeBearer(props map[string]any) (BearerProperties, error) {
	var ret BearerProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func decodeModem3gpp(props map[string]any) (Modem3gppProperties, error) {
	var ret Modem3gppProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func decodeSignal(props map[string]any) (SignalProperties, error) {
	var ret SignalProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}

func decodeLocation(props map[string]any) (LocationProperties, error) {
	var ret LocationProperties
	err := bus.DecodeProperties(props, &ret)
	return ret, err
}
