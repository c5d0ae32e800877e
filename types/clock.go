package types

// ---- Clock service state (retained) ----

type ServiceState struct {
	Level  string `json:"level"`  // "idle", "ready", "error", "stopped"
	Status string `json:"status"` // short code
	Error  string `json:"error,omitempty"`
	TS     int64  `json:"ts_ns"`
}

// ---- Clock configuration (config/clock, clock/control/apply) ----

type DLLSetting struct {
	Enable bool  `json:"enable"`
	Stage  uint8 `json:"stage"` // output = (stage+1) * 24 MHz
	Div2   bool  `json:"div2,omitempty"`
}

type USBSetting struct {
	Sel string `json:"sel"` // "clk_sys" | "dll2"
	Div uint8  `json:"div"`
}

type TickSetting struct {
	Sel string `json:"sel"` // "rtc" | "hrc48" | "hxt48"
	Div uint8  `json:"div"`
}

// ClockOverlay is a partial clock request. Absent fields keep the value the
// hardware holds.
type ClockOverlay struct {
	HXT48 *bool        `json:"hxt48,omitempty"`
	HRC48 *bool        `json:"hrc48,omitempty"`
	DLL1  *DLLSetting  `json:"dll1,omitempty"`
	DLL2  *DLLSetting  `json:"dll2,omitempty"`
	Sys   *string      `json:"sys,omitempty"` // "hrc48" | "hxt48" | "dll1"
	HDiv  *uint8       `json:"hdiv,omitempty"`
	PDiv1 *uint8       `json:"pdiv1,omitempty"`
	PDiv2 *uint8       `json:"pdiv2,omitempty"`
	USB   *USBSetting  `json:"usb,omitempty"`
	Tick  *TickSetting `json:"tick,omitempty"`
	Peri  *string      `json:"peri,omitempty"` // "hrc48" | "hxt48"
}

// ---- Clock state (retained clock/state, read_now reply) ----

type ClockState struct {
	Mode  string            `json:"mode"` // "D0".."S1"
	Rail  string            `json:"rail"` // "ldo" | "buck"
	Freqs map[string]uint32 `json:"freqs_hz"`
	TS    int64             `json:"ts_ns"`
}

// ---- Peripheral gate control (clock/control/periph) ----

type PeriphRequest struct {
	Name   string `json:"name"`
	Enable bool   `json:"enable"`
}

// ---- Replies ----

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
