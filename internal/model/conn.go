package model

import "fmt"

type Proto string

const (
	ProtoTCP Proto = "TCP"
	ProtoUDP Proto = "UDP"
)

// State is a connection state as shown in the table and the log.
// UDP sockets have no connection state and are always StateListening.
type State string

const (
	StateClosed      State = "CLOSED"
	StateListening   State = "LISTENING"
	StateSynSent     State = "SYN_SENT"
	StateSynRcvd     State = "SYN_RCVD"
	StateEstablished State = "ESTABLISHED"
	StateFinWait1    State = "FIN_WAIT1"
	StateFinWait2    State = "FIN_WAIT2"
	StateCloseWait   State = "CLOSE_WAIT"
	StateClosing     State = "CLOSING"
	StateLastAck     State = "LAST_ACK"
	StateTimeWait    State = "TIME_WAIT"
	StateDeleteTCB   State = "DELETE_TCB"
	StateUnknown     State = "UNKNOWN"
)

const (
	// Unspecified is the remote address of connectionless sockets.
	Unspecified = "*"
	// UnknownOwner is the owner label when nothing better is known.
	UnknownOwner = "Unknown"
)

// Conn is one connection or bound socket observed in a snapshot.
type Conn struct {
	LocalIP    string `json:"local_ip"`
	LocalPort  int    `json:"local_port"`
	RemoteIP   string `json:"remote_ip"`
	RemotePort int    `json:"remote_port"`
	Proto      Proto  `json:"proto"`
	State      State  `json:"state"`
	Owner      string `json:"owner"`
	PID        uint32 `json:"pid,omitempty"`
}

func (c Conn) Local() string {
	return fmt.Sprintf("%s:%d", c.LocalIP, c.LocalPort)
}

func (c Conn) Remote() string {
	return fmt.Sprintf("%s:%d", c.RemoteIP, c.RemotePort)
}
