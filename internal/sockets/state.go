package sockets

import (
	"strings"

	"github.com/pratik-anurag/netmon/internal/model"
)

// MIBState maps a MIB_TCP_STATE code (iphlpapi) to a state.
func MIBState(code uint32) model.State {
	switch code {
	case 1:
		return model.StateClosed
	case 2:
		return model.StateListening
	case 3:
		return model.StateSynSent
	case 4:
		return model.StateSynRcvd
	case 5:
		return model.StateEstablished
	case 6:
		return model.StateFinWait1
	case 7:
		return model.StateFinWait2
	case 8:
		return model.StateCloseWait
	case 9:
		return model.StateClosing
	case 10:
		return model.StateLastAck
	case 11:
		return model.StateTimeWait
	case 12:
		return model.StateDeleteTCB
	default:
		return model.StateUnknown
	}
}

// ProcState maps the st column of /proc/net/tcp (include/net/tcp_states.h).
func ProcState(code uint32) model.State {
	switch code {
	case 1:
		return model.StateEstablished
	case 2:
		return model.StateSynSent
	case 3, 12: // SYN_RECV, NEW_SYN_RECV
		return model.StateSynRcvd
	case 4:
		return model.StateFinWait1
	case 5:
		return model.StateFinWait2
	case 6:
		return model.StateTimeWait
	case 7:
		return model.StateClosed
	case 8:
		return model.StateCloseWait
	case 9:
		return model.StateLastAck
	case 10:
		return model.StateListening
	case 11:
		return model.StateClosing
	default:
		return model.StateUnknown
	}
}

// StatusState maps the status strings used by gopsutil and netstat.
func StatusState(status string) model.State {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "CLOSE", "CLOSED":
		return model.StateClosed
	case "LISTEN", "LISTENING":
		return model.StateListening
	case "SYN_SENT":
		return model.StateSynSent
	case "SYN_RECV", "SYN_RCVD", "SYN_RECEIVED":
		return model.StateSynRcvd
	case "ESTABLISHED", "ESTAB":
		return model.StateEstablished
	case "FIN_WAIT1", "FIN_WAIT_1":
		return model.StateFinWait1
	case "FIN_WAIT2", "FIN_WAIT_2":
		return model.StateFinWait2
	case "CLOSE_WAIT":
		return model.StateCloseWait
	case "CLOSING":
		return model.StateClosing
	case "LAST_ACK":
		return model.StateLastAck
	case "TIME_WAIT":
		return model.StateTimeWait
	case "DELETE_TCB":
		return model.StateDeleteTCB
	default:
		return model.StateUnknown
	}
}
