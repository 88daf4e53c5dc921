package sasl

import "sort"

// DiagnosticSink receives a textual diagnostic message published by a
// Mechanism. level is the severity the mechanism assigned the message;
// subscribers only receive messages at or above the minLevel they
// registered with.
//
// Note:
//   Most SASL libraries don't expose anything like this; it exists so a
//   caller can route a mechanism's progress into whatever logger (log,
//   zap, zerolog...) its application already uses without this package
//   taking a logging dependency of its own.
type DiagnosticSink func(level int, message string)

// Unsubscribe cancels a diagnostics subscription. Calling it more than
// once is a no-op.
type Unsubscribe func()

type diagnosticsSubscription struct {
	id       uint64
	sink     DiagnosticSink
	minLevel int
}

// diagnosticsSender is a named publisher with a subscriber list, shared by
// every Mechanism implementation in this package.
type diagnosticsSender struct {
	name   string
	nextID uint64
	subs   map[uint64]diagnosticsSubscription
}

func newDiagnosticsSender(name string) *diagnosticsSender {
	return &diagnosticsSender{
		name: name,
		subs: make(map[uint64]diagnosticsSubscription),
	}
}

func (d *diagnosticsSender) SubscribeToDiagnostics(sink DiagnosticSink, minLevel int) Unsubscribe {
	if sink == nil {
		return func() {}
	}
	id := d.nextID
	d.nextID++
	d.subs[id] = diagnosticsSubscription{id: id, sink: sink, minLevel: minLevel}
	unsubscribed := false
	return func() {
		if unsubscribed {
			return
		}
		unsubscribed = true
		delete(d.subs, id)
	}
}

// send publishes message at the given level to every subscriber whose
// minLevel is satisfied. Delivery order is by subscription id so behavior
// is deterministic for tests.
func (d *diagnosticsSender) send(level int, message string) {
	if len(d.subs) == 0 {
		return
	}
	ids := make([]uint64, 0, len(d.subs))
	for id := range d.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		sub := d.subs[id]
		if level < sub.minLevel {
			continue
		}
		sub.sink(level, message)
	}
}
