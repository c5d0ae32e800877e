package config

// Embedded per-board configuration, keyed by board name.

// DevKit boots the core at 240 MHz from DLL1 on the crystal.
const cfgDevKit = `{
  "clock": {
    "hxt48": true,
    "hrc48": false,
    "dll1": {"enable": true, "stage": 9},
    "sys": "dll1",
    "hdiv": 0,
    "pdiv1": 1,
    "pdiv2": 1,
    "usb": {"sel": "clk_sys", "div": 0},
    "tick": {"sel": "rtc", "div": 0},
    "peri": "hxt48"
  }
}`

// Host runs against the simulator at the 144 MHz boot default.
const cfgHost = `{
  "clock": {
    "hxt48": true,
    "hrc48": false,
    "dll1": {"enable": true, "stage": 5},
    "sys": "dll1",
    "hdiv": 0
  }
}`

var embeddedConfigs = map[string][]byte{
	"sf32lb52-devkit": []byte(cfgDevKit),
	"host":            []byte(cfgHost),
}
