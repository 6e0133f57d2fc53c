package dispatch

import (
	"fmt"
	"os"
)

// runHelp prints the top-level usage summary and returns nil. It never
// opens a transport, satisfying the "help is offline" guarantee: no
// invocation whose token stream begins or ends with "help" at object or
// verb level may attempt a transport open. Usage text goes to the error
// stream, matching the original tool's pr_err-based help output.
func runHelp() error {
	fmt.Fprint(os.Stderr, topUsageText)
	return nil
}

// runDeviceHelp prints usage text for the device object's verbs.
func runDeviceHelp() error {
	fmt.Fprint(os.Stderr, deviceUsageText)
	return nil
}

// runPinHelp prints usage text for the pin object's verbs.
func runPinHelp() error {
	fmt.Fprint(os.Stderr, pinUsageText)
	return nil
}

const topUsageText = `Usage: dpll [ OPTIONS ] OBJECT { COMMAND | help }
       dpll [ -j[son] ] [ -p[retty] ]
where  OBJECT := { device | pin | monitor }
       OPTIONS := { -V[ersion] | -j[son] | -p[retty] }
`

const deviceUsageText = `Usage: dpll device show [ id DEVICE_ID ]
       dpll device set id DEVICE_ID [ phase-offset-monitor BOOL ]
                                     [ phase-offset-avg-factor NUM ]
       dpll device id-get [ module-name NAME ] [ clock-id ID ] [ type TYPE ]
`

const pinUsageText = `Usage: dpll pin show [ id PIN_ID ] [ device DEVICE_ID ]
       dpll pin set id PIN_ID [ frequency FREQ ]
                               [ direction { input | output } ]
                               [ prio PRIO ]
                               [ state { connected | disconnected | selectable } ]
                               [ parent-device DEVICE_ID [ direction DIR ]
                                                          [ prio PRIO ]
                                                          [ state STATE ] ]
                               [ parent-pin PIN_ID [ state STATE ] ]
                               [ phase-adjust ADJUST ]
                               [ esync-frequency FREQ ]
                               [ reference-sync PIN_ID [ state STATE ] ]
       dpll pin id-get [ module-name NAME ] [ clock-id ID ]
                        [ board-label LABEL ] [ panel-label LABEL ]
                        [ package-label LABEL ] [ type TYPE ]
`
