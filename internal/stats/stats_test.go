package stats

import (
	"math/rand"
	"testing"

	"github.com/pratik-anurag/netmon/internal/model"
)

func snapshot() []model.Conn {
	return []model.Conn{
		{LocalIP: "127.0.0.1", LocalPort: 5000, Proto: model.ProtoTCP, State: model.StateListening},
		{LocalIP: "10.0.2.15", LocalPort: 54178, Proto: model.ProtoTCP, State: model.StateEstablished},
		{LocalIP: "10.0.2.15", LocalPort: 54180, Proto: model.ProtoTCP, State: model.StateTimeWait},
		{LocalIP: "127.0.0.1", LocalPort: 40000, Proto: model.ProtoTCP, State: model.StateEstablished},
		{LocalIP: "0.0.0.0", LocalPort: 53, Proto: model.ProtoUDP, State: model.StateListening},
		{LocalIP: "0.0.0.0", LocalPort: 68, Proto: model.ProtoUDP, State: model.StateListening},
		{LocalIP: "10.0.2.15", LocalPort: 22, Proto: model.ProtoTCP, State: model.StateCloseWait},
	}
}

func TestCompute(t *testing.T) {
	got := Compute(snapshot())
	want := Summary{Total: 7, Active: 2, Listening: 3, Local: 2, Internet: 5, TCP: 5, UDP: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.Other() != 2 {
		t.Fatalf("expected 2 other-state records, got %d", got.Other())
	}
}

func TestComputeEmpty(t *testing.T) {
	if got := Compute(nil); got != (Summary{}) {
		t.Fatalf("expected all zero, got %+v", got)
	}
}

func TestComputePartitions(t *testing.T) {
	conns := snapshot()
	s := Compute(conns)
	if s.Local+s.Internet != s.Total {
		t.Fatalf("local+internet != total: %+v", s)
	}
	if s.TCP+s.UDP != s.Total {
		t.Fatalf("tcp+udp != total: %+v", s)
	}
	if s.Active+s.Listening+s.Other() != s.Total {
		t.Fatalf("states do not partition total: %+v", s)
	}
}

func TestComputeOrderIndependent(t *testing.T) {
	conns := snapshot()
	want := Compute(conns)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.Conn(nil), conns...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := Compute(shuffled); got != want {
			t.Fatalf("order changed totals: %+v vs %+v", got, want)
		}
	}
}
