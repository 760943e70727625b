// Package lifecycle drives a single instance from launch to a reachable
// endpoint across independent conversational turns.
//
// The flow is split in two steps. A Launcher submits exactly one create call
// and records the returned handle in a fresh Session. A Poller is then invoked
// once per status turn with the Session from the previous turn and returns a
// Report plus the Session for the next turn:
//
//	launch ─▶ Session{InstanceID}
//	poll   ─▶ pending ─▶ pending ─▶ running (claim floating IP once) ─▶ running
//
// The floating IP claim is edge-triggered: it runs on the first poll that
// observes the running state and never again for the same Session. Later
// polls only re-read the pool to find an address already attached to the
// instance.
//
// Sessions are plain values. Nothing is stored between calls, so the caller
// owns persistence and must serialize turns of the same Session. Claims from
// concurrent sessions in one process are serialized by a package-level mutex,
// and a claim lost to another process is retried on the next free address.
package lifecycle
